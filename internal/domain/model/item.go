// Package model defines the core domain entities for the game client.
package model

import "strconv"

// ItemStack identifies a game item and a count of it.
//
// @Description An item and how many of it are involved in an operation
type ItemStack struct {
	// ItemID is the game's numeric item identifier
	ItemID int `json:"item_id" bson:"item_id" example:"1234"`
	// Name is the display name, informational only
	Name string `json:"name,omitempty" bson:"name,omitempty" example:"dense meat stack"`
	// Count is the held count for this stack
	Count int `json:"count" bson:"count" example:"3"`
} // @name ItemStack

// NewItemStack creates an ItemStack without a display name.
func NewItemStack(itemID, count int) ItemStack {
	return ItemStack{ItemID: itemID, Count: count}
}

// Equal reports whether both stacks refer to the same item. Counts are ignored.
func (s ItemStack) Equal(other ItemStack) bool {
	return s.ItemID == other.ItemID
}

// WithCount returns a copy of the stack holding count items.
func (s ItemStack) WithCount(count int) ItemStack {
	s.Count = count
	return s
}

// IDString returns the item identifier in its wire form.
func (s ItemStack) IDString() string {
	return strconv.Itoa(s.ItemID)
}

// String implements fmt.Stringer.
func (s ItemStack) String() string {
	name := s.Name
	if name == "" {
		name = "item " + s.IDString()
	}
	return name + " (" + strconv.Itoa(s.Count) + ")"
}

// IndexOf returns the position of the first stack equal to item, or -1.
func IndexOf(stacks []ItemStack, item ItemStack) int {
	for i, s := range stacks {
		if s.Equal(item) {
			return i
		}
	}
	return -1
}
