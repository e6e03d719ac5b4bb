package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(t *testing.T, name, price string) *MenuItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	return NewMenuItem(name, p, "", "breakfast", true)
}

func TestCartAddItemAccumulatesQuantity(t *testing.T) {
	cart := NewCart()
	idly := menuItem(t, "Idly", "15.00")

	cart.AddItem(idly, 2)
	cart.AddItem(idly, 3)

	require.Len(t, cart.Lines, 1)
	line := cart.Lines[idly.ID.String()]
	assert.Equal(t, 5, line.Quantity)
	assert.Equal(t, "75.00", cart.Total().StringFixed(2))
	assert.Equal(t, 5, cart.Count())
}

func TestCartAddItemSnapshotsPriceOnFirstAdd(t *testing.T) {
	cart := NewCart()
	dosai := menuItem(t, "Dosai", "40.00")

	cart.AddItem(dosai, 1)
	// A later menu price change must not affect the existing line.
	dosai.Price = decimal.NewFromInt(99)
	cart.AddItem(dosai, 1)

	line := cart.Lines[dosai.ID.String()]
	assert.Equal(t, "40.00", line.UnitPrice.StringFixed(2))
	assert.Equal(t, "80.00", cart.Total().StringFixed(2))
}

func TestCartSetQuantity(t *testing.T) {
	cart := NewCart()
	vada := menuItem(t, "Vada", "20.00")
	cart.AddItem(vada, 2)

	require.True(t, cart.SetQuantity(vada.ID, 4))
	assert.Equal(t, 4, cart.Lines[vada.ID.String()].Quantity)

	// Zero or negative removes the line.
	require.True(t, cart.SetQuantity(vada.ID, 0))
	assert.True(t, cart.IsEmpty())

	assert.False(t, cart.SetQuantity(vada.ID, 1))
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart()
	poori := menuItem(t, "Poori", "30.00")
	cart.AddItem(poori, 1)

	require.True(t, cart.RemoveLine(poori.ID))
	assert.False(t, cart.RemoveLine(poori.ID))
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "0.00", cart.Total().StringFixed(2))
}

func TestOrderItemSubtotal(t *testing.T) {
	idly := menuItem(t, "Idly", "15.00")
	item := NewOrderItem(idly.ID, idly.Name, 3, idly.Price)

	assert.Equal(t, "45.00", item.Subtotal().StringFixed(2))
}

func TestNewOrderAssignsItemOwnership(t *testing.T) {
	idly := menuItem(t, "Idly", "15.00")
	items := []*OrderItem{NewOrderItem(idly.ID, idly.Name, 2, idly.Price)}
	order := NewOrder("ORD-20240101-DEADBEEF", decimal.NewFromInt(30), items)

	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, order.ID, items[0].OrderID)
	assert.Equal(t, 2, order.TotalItems())
}
