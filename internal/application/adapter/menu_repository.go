// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/domain/entity"
)

// MenuRepository defines the interface for menu item persistence operations.
type MenuRepository interface {
	// Create creates a new menu item in the database.
	Create(ctx context.Context, item *entity.MenuItem) error

	// FindByID retrieves a menu item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)

	// FindByIDs retrieves menu items for the given IDs.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error)

	// FindAll retrieves menu items ordered by name, optionally limited to
	// available items.
	FindAll(ctx context.Context, availableOnly bool) ([]*entity.MenuItem, error)

	// Update updates an existing menu item in the database.
	Update(ctx context.Context, item *entity.MenuItem) error

	// Delete removes a menu item from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountOrderItems counts the historical order items referencing a menu item.
	CountOrderItems(ctx context.Context, menuItemID uuid.UUID) (int64, error)
}
