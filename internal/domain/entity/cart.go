package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one selected menu item in a cart. UnitPrice is a snapshot taken
// when the item was first added.
type CartLine struct {
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
}

// Subtotal returns quantity times the snapshot unit price.
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the transient per-session selection a cashier builds before
// creating an order. It is owned by a single session and never persisted to
// the entity store.
type Cart struct {
	Lines map[string]*CartLine `json:"lines"`
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{
		Lines: make(map[string]*CartLine),
	}
}

// AddItem adds quantity units of the given menu item, snapshotting its
// current price on first add.
func (c *Cart) AddItem(item *MenuItem, quantity int) {
	key := item.ID.String()
	if line, ok := c.Lines[key]; ok {
		line.Quantity += quantity
		return
	}
	c.Lines[key] = &CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   quantity,
	}
}

// SetQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line entirely. Returns false if the line does not exist.
func (c *Cart) SetQuantity(menuItemID uuid.UUID, quantity int) bool {
	key := menuItemID.String()
	if _, ok := c.Lines[key]; !ok {
		return false
	}
	if quantity <= 0 {
		delete(c.Lines, key)
		return true
	}
	c.Lines[key].Quantity = quantity
	return true
}

// RemoveLine removes a line. Returns false if the line does not exist.
func (c *Cart) RemoveLine(menuItemID uuid.UUID) bool {
	key := menuItemID.String()
	if _, ok := c.Lines[key]; !ok {
		return false
	}
	delete(c.Lines, key)
	return true
}

// Count returns the total number of units in the cart.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Total returns the exact decimal sum of all line subtotals.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
