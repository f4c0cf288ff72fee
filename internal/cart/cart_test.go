package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(modelID int64, size string, price float64) Item {
	return Item{
		ModelID:   modelID,
		ModelName: "Air Runner",
		BrandName: "Acme",
		Color:     "black",
		Size:      size,
		Price:     price,
		SKU:       "SKU-1",
	}
}

func TestAdd_MergesSameModelAndSize(t *testing.T) {
	state := Empty()
	for i := 0; i < 3; i++ {
		state = state.Add(testItem(5, "9", 50))
	}

	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 3, state.TotalItems)
	assert.Equal(t, 150.0, state.TotalAmount)
}

func TestAdd_IgnoresSuppliedQuantity(t *testing.T) {
	item := testItem(5, "9", 50)
	item.Quantity = 7

	state := Empty().Add(item)

	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestAdd_DifferentSizesAreSeparateLines(t *testing.T) {
	state := Empty().
		Add(testItem(5, "9", 50)).
		Add(testItem(5, "10", 50))

	require.Len(t, state.Items, 2)
	assert.Equal(t, "9", state.Items[0].Size)
	assert.Equal(t, "10", state.Items[1].Size)
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	state := Empty().
		Add(testItem(1, "9", 10)).
		Add(testItem(2, "9", 20)).
		Add(testItem(1, "9", 10)). // merge, no reorder
		Add(testItem(3, "9", 30))

	require.Len(t, state.Items, 3)
	assert.Equal(t, int64(1), state.Items[0].ModelID)
	assert.Equal(t, int64(2), state.Items[1].ModelID)
	assert.Equal(t, int64(3), state.Items[2].ModelID)
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	before := Empty().Add(testItem(1, "9", 10))
	_ = before.Add(testItem(1, "9", 10))

	require.Len(t, before.Items, 1)
	assert.Equal(t, 1, before.Items[0].Quantity)
}

func TestRemove_AbsentItemIsNoOp(t *testing.T) {
	state := Empty().Add(testItem(1, "9", 10))
	after := state.Remove(99, "12")

	assert.Equal(t, state, after)
}

func TestUpdateQuantity_ZeroRemovesItem(t *testing.T) {
	state := Empty().
		Add(testItem(1, "9", 10)).
		Add(testItem(2, "8", 20))

	viaZero := state.UpdateQuantity(1, "9", 0)
	viaRemove := state.Remove(1, "9")

	assert.Equal(t, viaRemove, viaZero)
}

func TestUpdateQuantity_NegativeRemovesItem(t *testing.T) {
	state := Empty().Add(testItem(1, "9", 10))
	after := state.UpdateQuantity(1, "9", -3)

	assert.Empty(t, after.Items)
	assert.Equal(t, 0, after.TotalItems)
	assert.Equal(t, 0.0, after.TotalAmount)
}

func TestUpdateQuantity_ReplacesNotIncrements(t *testing.T) {
	state := Empty().Add(testItem(1, "9", 10)).Add(testItem(1, "9", 10))
	after := state.UpdateQuantity(1, "9", 5)

	require.Len(t, after.Items, 1)
	assert.Equal(t, 5, after.Items[0].Quantity)
	assert.Equal(t, 50.0, after.TotalAmount)
}

func TestClear_IsIdempotent(t *testing.T) {
	state := Empty().Add(testItem(1, "9", 10))

	once := state.Clear()
	twice := once.Clear()

	assert.Equal(t, Empty(), once)
	assert.Equal(t, Empty(), twice)
}

func TestQuantity_ReturnsZeroWhenAbsent(t *testing.T) {
	state := Empty().Add(testItem(1, "9", 10))

	assert.Equal(t, 1, state.Quantity(1, "9"))
	assert.Equal(t, 0, state.Quantity(1, "10"))
	assert.Equal(t, 0, state.Quantity(2, "9"))
}

// Totals must always equal the fold of the item list, whatever the sequence
// of transitions.
func TestTotals_AreDerivedFromItems(t *testing.T) {
	state := Empty().
		Add(testItem(1, "10", 100)).
		Add(testItem(2, "9", 25)).
		Add(testItem(1, "10", 100)).
		UpdateQuantity(2, "9", 4).
		Remove(1, "10").
		Add(testItem(3, "8", 10))

	wantItems, wantAmount := 0, 0.0
	for _, it := range state.Items {
		wantItems += it.Quantity
		wantAmount += it.Price * float64(it.Quantity)
	}
	assert.Equal(t, wantItems, state.TotalItems)
	assert.Equal(t, wantAmount, state.TotalAmount)
}

func TestCartScenario(t *testing.T) {
	state := Empty()

	state = state.Add(testItem(1, "10", 100))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.Items[0].Quantity)
	assert.Equal(t, 100.0, state.TotalAmount)

	state = state.Add(testItem(1, "10", 100))
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 200.0, state.TotalAmount)

	state = state.UpdateQuantity(1, "10", 5)
	assert.Equal(t, 500.0, state.TotalAmount)

	state = state.Remove(1, "10")
	assert.Empty(t, state.Items)
	assert.Equal(t, 0.0, state.TotalAmount)
}
