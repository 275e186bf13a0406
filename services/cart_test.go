package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(id, restID uint, price float64) CartEntry {
	return CartEntry{MenuItemID: id, Name: "item", UnitPrice: price, RestaurantID: restID}
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(2, 10, 6.00))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, 3, c.TotalItems())
	assert.InDelta(t, 27.98, c.TotalPrice(), 0.001)
}

func TestCartCrossRestaurantAddParksConflict(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(7, 20, 5.25))

	// Cart untouched until the conflict is resolved.
	require.Len(t, c.Lines, 1)
	assert.Equal(t, uint(10), c.Lines[0].RestaurantID)
	require.NotNil(t, c.Conflict)
	assert.Equal(t, uint(20), c.Conflict.PendingItem.RestaurantID)
	assert.Equal(t, uint(10), c.Conflict.CurrentRestaurantID)
}

func TestCartResolveConflictCancel(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(7, 20, 5.25))

	c.ResolveConflict(false)

	assert.Nil(t, c.Conflict)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, uint(1), c.Lines[0].MenuItemID)
}

func TestCartResolveConflictAccept(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(7, 20, 5.25))

	c.ResolveConflict(true)

	assert.Nil(t, c.Conflict)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, uint(7), c.Lines[0].MenuItemID)
	assert.Equal(t, uint(20), c.Lines[0].RestaurantID)
	assert.Equal(t, 1, c.Lines[0].Quantity)
}

func TestCartResolveWithoutConflictIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.ResolveConflict(true)
	require.Len(t, c.Lines, 1)
}

func TestCartDecrementRemovesAtZero(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(1, 10, 10.99))

	c.DecrementItem(1, 10)
	require.Len(t, c.Lines, 1)
	assert.Equal(t, 1, c.Lines[0].Quantity)

	c.DecrementItem(1, 10)
	assert.Empty(t, c.Lines)

	// absent line: no-op
	c.DecrementItem(1, 10)
	assert.Empty(t, c.Lines)
}

func TestCartRemoveIgnoresQuantity(t *testing.T) {
	var c Cart
	for i := 0; i < 5; i++ {
		c.AddItem(entry(1, 10, 10.99))
	}
	c.RemoveItem(1, 10)
	assert.Empty(t, c.Lines)
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem(entry(1, 10, 10.99))
	c.AddItem(entry(2, 10, 6.00))
	c.Clear()
	assert.Empty(t, c.Lines)
	assert.Equal(t, 0, c.TotalItems())
	assert.Zero(t, c.TotalPrice())
}

func TestCartStoreIsolatesUsers(t *testing.T) {
	s := NewCartStore()
	s.With(1, func(c *Cart) { c.AddItem(entry(1, 10, 10.99)) })
	s.With(2, func(c *Cart) { c.AddItem(entry(2, 20, 5.25)) })

	c1 := s.Snapshot(1)
	c2 := s.Snapshot(2)
	require.Len(t, c1.Lines, 1)
	require.Len(t, c2.Lines, 1)
	assert.Equal(t, uint(10), c1.Lines[0].RestaurantID)
	assert.Equal(t, uint(20), c2.Lines[0].RestaurantID)

	s.Drop(1)
	assert.Empty(t, s.Snapshot(1).Lines)
	assert.Len(t, s.Snapshot(2).Lines, 1)
}
