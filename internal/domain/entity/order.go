package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order represents a bill created from a cart. TotalAmount always equals the
// sum of its item subtotals; unit prices are captured at order time so the
// bill stays stable when menu prices change later.
type Order struct {
	ID          uuid.UUID
	OrderNumber string
	TotalAmount decimal.Decimal
	Status      OrderStatus
	Items       []*OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrder creates a new pending Order entity with the given items.
func NewOrder(orderNumber string, totalAmount decimal.Decimal, items []*OrderItem) *Order {
	now := time.Now().UTC()

	order := &Order{
		ID:          uuid.New(),
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
		Status:      OrderStatusPending,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, item := range items {
		item.OrderID = order.ID
	}
	return order
}

// TotalItems returns the total number of units across all order items.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// OrderItem represents one line of an order. It is owned by its Order and
// references the menu item it was created from.
type OrderItem struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	MenuItemID   uuid.UUID
	MenuItemName string
	Quantity     int
	UnitPrice    decimal.Decimal
}

// NewOrderItem creates a new OrderItem entity.
func NewOrderItem(menuItemID uuid.UUID, menuItemName string, quantity int, unitPrice decimal.Decimal) *OrderItem {
	return &OrderItem{
		ID:           uuid.New(),
		MenuItemID:   menuItemID,
		MenuItemName: menuItemName,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
	}
}

// Subtotal returns quantity times the captured unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
