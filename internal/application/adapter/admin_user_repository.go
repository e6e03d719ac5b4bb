package adapter

import (
	"context"

	"github.com/restobill/backend/internal/domain/entity"
)

// AdminUserRepository defines the interface for admin account persistence.
type AdminUserRepository interface {
	// Create creates a new admin user in the database.
	Create(ctx context.Context, user *entity.AdminUser) error

	// FindByUsername retrieves an admin user by username.
	FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error)

	// Count returns the number of admin users.
	Count(ctx context.Context) (int64, error)
}
