package request

import "math"

// Unbounded is the capacity of a batch that may take the whole remaining list.
const Unbounded = math.MaxInt

// mallCapacity is the number of item slots on the store management form.
const mallCapacity = 11

// SellState tracks how a direct sell batch has to be phrased for the server.
type SellState int

const (
	// StateCompact cannot express partial quantities.
	StateCompact SellState = iota
	// StateDetailed accepts per-item quantities.
	StateDetailed
	// StateAllButOne uses the server's "all but one" shortcut (mode=2).
	StateAllButOne
	// StateQuantity fell back from StateAllButOne to explicit quantities (mode=3).
	StateQuantity
)

// String returns the state label used in logs and metrics.
func (s SellState) String() string {
	switch s {
	case StateCompact:
		return "compact"
	case StateDetailed:
		return "detailed"
	case StateAllButOne:
		return "all_but_one"
	case StateQuantity:
		return "quantity"
	default:
		return "unknown"
	}
}

// ModeField returns the value of the form's mode field, or "" when none is sent.
func (s SellState) ModeField() string {
	switch s {
	case StateAllButOne:
		return "2"
	case StateQuantity:
		return "3"
	default:
		return ""
	}
}

// Plan is the outcome of a capacity computation.
type Plan struct {
	Capacity int
	State    SellState
}

// planDirectSell scans items against inventory and decides how many of them fit
// in one autosell request.
//
// Transitions:
//
//	compact:     mismatch -> capacity 1
//	detailed:    first item at inventory-1 -> all-but-one; other mismatch -> capacity 1
//	all-but-one: mismatch not at inventory-1 -> quantity, capacity 1
//
// Once all-but-one is entered the batch is a single item; the rest of the scan
// only decides whether the shortcut survives.
func planDirectSell(items []itemCount, detailed bool) Plan {
	state := StateCompact
	if detailed {
		state = StateDetailed
	}

	for i, it := range items {
		mismatch := it.held != it.inventory

		switch state {
		case StateCompact:
			if mismatch {
				return Plan{Capacity: 1, State: state}
			}
		case StateDetailed:
			if !mismatch {
				continue
			}
			if i == 0 && it.held == it.inventory-1 {
				state = StateAllButOne
				continue
			}
			return Plan{Capacity: 1, State: state}
		case StateAllButOne:
			if mismatch && it.held != it.inventory-1 {
				return Plan{Capacity: 1, State: StateQuantity}
			}
		}
	}

	if state == StateAllButOne {
		return Plan{Capacity: 1, State: state}
	}
	return Plan{Capacity: Unbounded, State: state}
}

// itemCount pairs an attachment's held count with the inventory count.
type itemCount struct {
	held      int
	inventory int
}
