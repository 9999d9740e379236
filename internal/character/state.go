// Package character holds the locally known state of the logged-in character.
package character

import (
	"sort"
	"sync"

	"github.com/guttosm/kol-client/internal/domain/model"
)

// State is the in-memory character store. All methods are safe for concurrent use.
type State struct {
	mu           sync.RWMutex
	meat         int
	autosellMode model.AutosellMode
	inventory    map[int]model.ItemStack
}

// NewState creates an empty character using the given autosell mode.
func NewState(mode model.AutosellMode) *State {
	return &State{
		autosellMode: mode,
		inventory:    make(map[int]model.ItemStack),
	}
}

// AutosellMode returns the character's autosell page option.
func (s *State) AutosellMode() model.AutosellMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.autosellMode
}

// SetAutosellMode changes the autosell page option.
func (s *State) SetAutosellMode(mode model.AutosellMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autosellMode = mode
}

// Count returns how many of item are in inventory.
func (s *State) Count(item model.ItemStack) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inventory[item.ItemID].Count
}

// SetInventory replaces the inventory with items. Non-positive counts are dropped.
func (s *State) SetInventory(items []model.ItemStack) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inventory = make(map[int]model.ItemStack, len(items))
	for _, it := range items {
		if it.Count > 0 {
			s.inventory[it.ItemID] = it
		}
	}
}

// AddItem adjusts the count of item by item.Count, which may be negative.
func (s *State) AddItem(item model.ItemStack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.inventory[item.ItemID]
	if !ok {
		current = item.WithCount(0)
	}
	current.Count += item.Count
	if current.Count <= 0 {
		delete(s.inventory, item.ItemID)
		return
	}
	s.inventory[item.ItemID] = current
}

// RemoveItems subtracts every stack in items from inventory.
func (s *State) RemoveItems(items []model.ItemStack) {
	for _, it := range items {
		s.AddItem(it.WithCount(-it.Count))
	}
}

// Inventory returns the inventory sorted by item id.
func (s *State) Inventory() []model.ItemStack {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ItemStack, 0, len(s.inventory))
	for _, it := range s.inventory {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out
}

// Meat returns the character's meat on hand.
func (s *State) Meat() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meat
}

// AddMeat credits (or debits, when negative) meat.
func (s *State) AddMeat(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meat += amount
}

// SetMeat replaces the meat on hand.
func (s *State) SetMeat(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meat = amount
}

// Snapshot is a consistent copy of the character state.
type Snapshot struct {
	Meat         int                `json:"meat"`
	AutosellMode model.AutosellMode `json:"autosell_mode"`
	Inventory    []model.ItemStack  `json:"inventory"`
}

// Snapshot returns a consistent copy of the state.
func (s *State) Snapshot() Snapshot {
	inv := s.Inventory()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Meat: s.meat, AutosellMode: s.autosellMode, Inventory: inv}
}
