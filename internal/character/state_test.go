//go:build !integration

package character

import (
	"sync"
	"testing"

	"github.com/guttosm/kol-client/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestState_Inventory(t *testing.T) {
	s := NewState(model.AutosellCompact)
	s.SetInventory([]model.ItemStack{
		{ItemID: 5, Name: "b", Count: 3},
		{ItemID: 2, Name: "a", Count: 1},
		{ItemID: 9, Count: 0},
	})

	assert.Equal(t, 3, s.Count(model.NewItemStack(5, 99)))
	assert.Equal(t, 0, s.Count(model.NewItemStack(9, 1)))
	assert.Equal(t, []model.ItemStack{{ItemID: 2, Name: "a", Count: 1}, {ItemID: 5, Name: "b", Count: 3}}, s.Inventory())
}

func TestState_AddAndRemoveItems(t *testing.T) {
	s := NewState(model.AutosellCompact)

	s.AddItem(model.NewItemStack(1, 4))
	s.AddItem(model.NewItemStack(1, 2))
	assert.Equal(t, 6, s.Count(model.NewItemStack(1, 0)))

	s.RemoveItems([]model.ItemStack{model.NewItemStack(1, 5)})
	assert.Equal(t, 1, s.Count(model.NewItemStack(1, 0)))

	s.RemoveItems([]model.ItemStack{model.NewItemStack(1, 3)})
	assert.Equal(t, 0, s.Count(model.NewItemStack(1, 0)))
	assert.Empty(t, s.Inventory())
}

func TestState_Meat(t *testing.T) {
	s := NewState(model.AutosellCompact)

	s.AddMeat(1234)
	s.AddMeat(-34)

	assert.Equal(t, 1200, s.Meat())

	s.SetMeat(50)
	assert.Equal(t, 50, s.Meat())
}

func TestState_AutosellMode(t *testing.T) {
	s := NewState(model.AutosellCompact)
	s.SetAutosellMode(model.AutosellDetailed)

	assert.Equal(t, model.AutosellDetailed, s.AutosellMode())
	assert.Equal(t, model.AutosellDetailed, s.Snapshot().AutosellMode)
}

func TestState_ConcurrentMeat(t *testing.T) {
	s := NewState(model.AutosellCompact)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddMeat(10)
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, s.Meat())
}
