package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
)

// OrderModel represents the orders table in the database.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderNumber string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the OrderModel.
func (OrderModel) TableName() string {
	return "orders"
}

// ToEntity converts an OrderModel to a domain Order entity.
func (m *OrderModel) ToEntity() *entity.Order {
	items := make([]*entity.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, m.Items[i].ToEntity())
	}

	return &entity.Order{
		ID:          m.ID,
		OrderNumber: m.OrderNumber,
		TotalAmount: m.TotalAmount,
		Status:      entity.OrderStatus(m.Status),
		Items:       items,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// OrderFromEntity converts a domain Order entity to an OrderModel.
func OrderFromEntity(order *entity.Order) *OrderModel {
	items := make([]OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, *OrderItemFromEntity(item))
	}

	return &OrderModel{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
