// Package dto defines the control API's request and response bodies.
package dto

import (
	"github.com/guttosm/kol-client/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidItems is returned when an item list is empty or holds a bad entry.
	ErrInvalidItems = &ValidationError{Field: "items", Message: "at least one item with a positive count is required"}
	// ErrInvalidTerms is returned for a negative price or limit.
	ErrInvalidTerms = &ValidationError{Field: "items", Message: "price and limit must not be negative"}
	// ErrInvalidMeat is returned for a negative meat amount.
	ErrInvalidMeat = &ValidationError{Field: "meat", Message: "must not be negative"}
	// ErrInvalidAutosellMode is returned for an unknown autosell mode.
	ErrInvalidAutosellMode = &ValidationError{Field: "autosell_mode", Message: "must be compact or detailed"}
)

// ItemRequest names an item and a count.
// @Description An item and a count
type ItemRequest struct {
	ItemID int    `json:"item_id" binding:"required" example:"1234"`
	Name   string `json:"name,omitempty" example:"dense meat stack"`
	Count  int    `json:"count" binding:"required" example:"3"`
} // @name ItemRequest

func (r ItemRequest) valid() bool {
	return r.ItemID > 0 && r.Count > 0
}

// Stack converts the request to a domain item stack.
func (r ItemRequest) Stack() model.ItemStack {
	return model.ItemStack{ItemID: r.ItemID, Name: r.Name, Count: r.Count}
}

// AutosellRequest sells items to the NPC buyer.
// @Description Items to autosell
// @Example {"items": [{"item_id": 1234, "count": 3}]}
type AutosellRequest struct {
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
} // @name AutosellRequest

// Validate checks that every item has an id and a positive count.
func (r *AutosellRequest) Validate() error {
	return validateItems(r.Items)
}

// Stacks returns the domain item stacks.
func (r *AutosellRequest) Stacks() []model.ItemStack {
	return stacks(r.Items)
}

// MallItemRequest is an item to list with its price and per-buyer limit.
// A zero price or limit leaves the field blank on the store form.
type MallItemRequest struct {
	ItemRequest
	Price int `json:"price" example:"1000"`
	Limit int `json:"limit" example:"0"`
} // @name MallItemRequest

// MallRequest lists items in the player's store.
// @Description Items to place in the mall store
// @Example {"items": [{"item_id": 1234, "count": 3, "price": 100, "limit": 0}]}
type MallRequest struct {
	Items []MallItemRequest `json:"items" binding:"required,min=1,dive"`
	// DefaultPricing ignores prices and limits and lists at the store's maximum price.
	DefaultPricing bool `json:"default_pricing,omitempty"`
} // @name MallRequest

// Validate checks items and terms.
func (r *MallRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrInvalidItems
	}
	for _, it := range r.Items {
		if !it.valid() {
			return ErrInvalidItems
		}
		if it.Price < 0 || it.Limit < 0 {
			return ErrInvalidTerms
		}
	}
	return nil
}

// Stacks returns the domain item stacks.
func (r *MallRequest) Stacks() []model.ItemStack {
	out := make([]model.ItemStack, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Stack()
	}
	return out
}

// Terms returns listing terms aligned with Stacks, or empty terms when
// DefaultPricing is set.
func (r *MallRequest) Terms() model.ListingTerms {
	if r.DefaultPricing {
		return model.ListingTerms{}
	}
	terms := model.ListingTerms{
		Prices: make([]int, len(r.Items)),
		Limits: make([]int, len(r.Items)),
	}
	for i, it := range r.Items {
		terms.Prices[i] = it.Price
		terms.Limits[i] = it.Limit
	}
	return terms
}

// UpdateInventoryRequest replaces the locally known inventory.
// @Description Inventory and meat as reported by the game
type UpdateInventoryRequest struct {
	Items []ItemRequest `json:"items"`
	Meat  *int          `json:"meat,omitempty" example:"1500"`
} // @name UpdateInventoryRequest

// Validate checks items and meat.
func (r *UpdateInventoryRequest) Validate() error {
	for _, it := range r.Items {
		if !it.valid() {
			return ErrInvalidItems
		}
	}
	if r.Meat != nil && *r.Meat < 0 {
		return ErrInvalidMeat
	}
	return nil
}

// Stacks returns the domain item stacks.
func (r *UpdateInventoryRequest) Stacks() []model.ItemStack {
	return stacks(r.Items)
}

// AutosellModeRequest changes the autosell page option.
type AutosellModeRequest struct {
	Mode string `json:"autosell_mode" binding:"required" example:"detailed"`
} // @name AutosellModeRequest

// Validate checks the mode name.
func (r *AutosellModeRequest) Validate() error {
	if _, err := model.ParseAutosellMode(r.Mode); err != nil {
		return ErrInvalidAutosellMode
	}
	return nil
}

// ComposeRequest sets the message text.
type ComposeRequest struct {
	Recipient string `json:"recipient" example:"Jick"`
	Body      string `json:"body" example:"Enjoy the meat!"`
} // @name ComposeRequest

// AttachRequest attaches an item to the message.
type AttachRequest struct {
	ItemRequest
} // @name AttachRequest

// Validate checks the attachment.
func (r *AttachRequest) Validate() error {
	if !r.valid() {
		return ErrInvalidItems
	}
	return nil
}

func validateItems(items []ItemRequest) error {
	if len(items) == 0 {
		return ErrInvalidItems
	}
	for _, it := range items {
		if !it.valid() {
			return ErrInvalidItems
		}
	}
	return nil
}

func stacks(items []ItemRequest) []model.ItemStack {
	out := make([]model.ItemStack, len(items))
	for i, it := range items {
		out[i] = it.Stack()
	}
	return out
}

// SnapshotQuery pages through stored store snapshots.
type SnapshotQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100" example:"10"`
}

// LimitOrDefault returns Limit, or 10 when unset.
func (q SnapshotQuery) LimitOrDefault() int {
	if q.Limit == 0 {
		return 10
	}
	return q.Limit
}
