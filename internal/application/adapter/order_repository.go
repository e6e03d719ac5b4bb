package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/domain/entity"
)

// OrderRepository defines the interface for order persistence operations.
type OrderRepository interface {
	// CreateWithItems persists an order and all of its items atomically.
	// If any item insert fails the whole operation is rolled back.
	CreateWithItems(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// Update updates an existing order in the database.
	Update(ctx context.Context, order *entity.Order) error

	// ExistsByOrderNumber checks whether an order with the given number exists.
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
}
