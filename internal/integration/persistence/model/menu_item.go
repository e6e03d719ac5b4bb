// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
)

// MenuItemModel represents the menu_items table in the database.
type MenuItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null;index"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"type:varchar(50);index"`
	IsAvailable bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MenuItemModel.
func (MenuItemModel) TableName() string {
	return "menu_items"
}

// ToEntity converts a MenuItemModel to a domain MenuItem entity.
func (m *MenuItemModel) ToEntity() *entity.MenuItem {
	return &entity.MenuItem{
		ID:          m.ID,
		Name:        m.Name,
		Price:       m.Price,
		Description: m.Description,
		Category:    m.Category,
		IsAvailable: m.IsAvailable,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MenuItemFromEntity converts a domain MenuItem entity to a MenuItemModel.
func MenuItemFromEntity(item *entity.MenuItem) *MenuItemModel {
	return &MenuItemModel{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price,
		Description: item.Description,
		Category:    item.Category,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
