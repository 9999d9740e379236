package model

import "errors"

// SaleMode selects how items are sold.
type SaleMode int

const (
	// DirectSell sells immediately to the NPC buyer at the autosell price.
	DirectSell SaleMode = iota + 1
	// MarketListing posts items in the player's mall store.
	MarketListing
)

// String returns the metrics/log label of the mode.
func (m SaleMode) String() string {
	switch m {
	case DirectSell:
		return "autosell"
	case MarketListing:
		return "automall"
	default:
		return "unknown"
	}
}

// AutosellMode mirrors the character option that picks the autosell page layout.
type AutosellMode string

const (
	// AutosellCompact is the multi-select page that cannot express partial quantities.
	AutosellCompact AutosellMode = "compact"
	// AutosellDetailed is the per-item page that accepts quantities and sell modes.
	AutosellDetailed AutosellMode = "detailed"
)

// ErrUnknownAutosellMode is returned when parsing an unrecognised mode.
var ErrUnknownAutosellMode = errors.New("unknown autosell mode")

// ParseAutosellMode converts the option value to an AutosellMode.
func ParseAutosellMode(s string) (AutosellMode, error) {
	switch AutosellMode(s) {
	case AutosellCompact, AutosellDetailed:
		return AutosellMode(s), nil
	default:
		return AutosellCompact, ErrUnknownAutosellMode
	}
}

// ListingTerms holds per-item mall prices and limits aligned with an item list.
// A zero price means "use the default price", a zero limit means "unlimited".
// Empty terms mean no explicit pricing at all.
type ListingTerms struct {
	Prices []int
	Limits []int
}

// Empty reports whether no explicit pricing was given.
func (t ListingTerms) Empty() bool {
	return len(t.Prices) == 0
}

// Len returns the number of priced positions.
func (t ListingTerms) Len() int {
	return len(t.Prices)
}

// At returns the price and limit stored at position i.
func (t ListingTerms) At(i int) (price, limit int) {
	return t.Prices[i], t.Limits[i]
}

// Valid reports whether the terms can be used with n items.
func (t ListingTerms) Valid(n int) bool {
	if len(t.Prices) != len(t.Limits) {
		return false
	}
	return t.Empty() || len(t.Prices) == n
}
