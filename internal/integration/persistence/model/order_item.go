package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
)

// OrderItemModel represents the order_items table in the database.
type OrderItemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	// Relationships (not loaded by default, use Preload)
	MenuItem *MenuItemModel `gorm:"foreignKey:MenuItemID;references:ID"`
}

// TableName returns the table name for the OrderItemModel.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToEntity converts an OrderItemModel to a domain OrderItem entity. The menu
// item name snapshot is filled in when the MenuItem relation is preloaded.
func (m *OrderItemModel) ToEntity() *entity.OrderItem {
	item := &entity.OrderItem{
		ID:         m.ID,
		OrderID:    m.OrderID,
		MenuItemID: m.MenuItemID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
	}
	if m.MenuItem != nil {
		item.MenuItemName = m.MenuItem.Name
	}
	return item
}

// OrderItemFromEntity converts a domain OrderItem entity to an OrderItemModel.
func OrderItemFromEntity(item *entity.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:         item.ID,
		OrderID:    item.OrderID,
		MenuItemID: item.MenuItemID,
		Quantity:   item.Quantity,
		UnitPrice:  item.UnitPrice,
	}
}
