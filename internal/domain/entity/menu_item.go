// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a single item on the restaurant menu.
type MenuItem struct {
	ID          uuid.UUID
	Name        string
	Price       decimal.Decimal
	Description string
	Category    string
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewMenuItem creates a new MenuItem entity.
func NewMenuItem(name string, price decimal.Decimal, description, category string, isAvailable bool) *MenuItem {
	now := time.Now().UTC()

	return &MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Description: description,
		Category:    category,
		IsAvailable: isAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
