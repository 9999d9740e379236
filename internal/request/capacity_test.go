//go:build !integration

package request

import (
	"testing"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDirectSell(t *testing.T) {
	tests := []struct {
		name     string
		items    []itemCount
		detailed bool
		expected Plan
	}{
		{
			name:     "compact all match sells everything",
			items:    []itemCount{{3, 3}, {1, 1}, {7, 7}},
			expected: Plan{Capacity: Unbounded, State: StateCompact},
		},
		{
			name:     "detailed all match sells everything",
			items:    []itemCount{{3, 3}, {1, 1}},
			detailed: true,
			expected: Plan{Capacity: Unbounded, State: StateDetailed},
		},
		{
			name:     "compact mismatch at the end forces single item",
			items:    []itemCount{{3, 3}, {1, 1}, {2, 7}},
			expected: Plan{Capacity: 1, State: StateCompact},
		},
		{
			name:     "compact mismatch by one still forces single item",
			items:    []itemCount{{2, 3}},
			expected: Plan{Capacity: 1, State: StateCompact},
		},
		{
			name:     "detailed first item all but one",
			items:    []itemCount{{4, 5}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateAllButOne},
		},
		{
			name:     "detailed all but one keeps shortcut for following all-but-one items",
			items:    []itemCount{{4, 5}, {1, 2}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateAllButOne},
		},
		{
			name:     "detailed all but one downgraded by later larger mismatch",
			items:    []itemCount{{4, 5}, {1, 9}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateQuantity},
		},
		{
			name:     "detailed all but one survives later full count",
			items:    []itemCount{{4, 5}, {2, 2}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateAllButOne},
		},
		{
			name:     "detailed all but one downgraded after a full count",
			items:    []itemCount{{4, 5}, {2, 2}, {1, 3}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateQuantity},
		},
		{
			name:     "detailed mismatch by one after the first item is plain quantity",
			items:    []itemCount{{2, 2}, {4, 5}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateDetailed},
		},
		{
			name:     "detailed first item mismatch by more than one",
			items:    []itemCount{{1, 5}, {2, 2}},
			detailed: true,
			expected: Plan{Capacity: 1, State: StateDetailed},
		},
		{
			name:     "empty list",
			items:    nil,
			expected: Plan{Capacity: Unbounded, State: StateCompact},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, planDirectSell(tt.items, tt.detailed))
		})
	}
}

func TestSellState_ModeField(t *testing.T) {
	assert.Equal(t, "", StateCompact.ModeField())
	assert.Equal(t, "", StateDetailed.ModeField())
	assert.Equal(t, "2", StateAllButOne.ModeField())
	assert.Equal(t, "3", StateQuantity.ModeField())
	assert.Equal(t, "all_but_one", StateAllButOne.String())
	assert.Equal(t, "unknown", SellState(42).String())
}

func TestSellRequest_CapacityAllMatchCoversList(t *testing.T) {
	for _, mode := range []model.AutosellMode{model.AutosellCompact, model.AutosellDetailed} {
		t.Run(string(mode), func(t *testing.T) {
			items := []model.ItemStack{stack(1, 2), stack(2, 5), stack(3, 1), stack(4, 40)}
			c := newCharacter(mode, items...)

			req, err := NewSellRequest(newDeps(newFakeTransport(""), c), items, model.DirectSell, model.ListingTerms{})
			require.NoError(t, err)

			assert.GreaterOrEqual(t, req.Capacity(), len(items))
		})
	}
}

func TestSellRequest_MallCapacityIsFixed(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ItemStack
	}{
		{name: "matching counts", items: []model.ItemStack{stack(1, 1)}},
		{name: "mismatched counts", items: []model.ItemStack{stack(1, 1), stack(2, 99)}},
		{name: "items not in inventory", items: []model.ItemStack{stack(77, 3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCharacter(model.AutosellCompact, stack(1, 5), stack(2, 2))
			req, err := NewSellRequest(newDeps(newFakeTransport(""), c), tt.items, model.MarketListing, model.ListingTerms{})
			require.NoError(t, err)

			assert.Equal(t, 11, req.Capacity())
		})
	}
}

func TestSellRequest_CapacityFollowsInventory(t *testing.T) {
	c := newCharacter(model.AutosellCompact, stack(1, 3))
	req, err := NewAutosell(newDeps(newFakeTransport(""), c), stack(1, 3))
	require.NoError(t, err)

	assert.Equal(t, Unbounded, req.Capacity())

	c.AddItem(stack(1, 1))
	assert.Equal(t, 1, req.Capacity())
}
