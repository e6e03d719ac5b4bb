package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser represents a back-office administrator account.
type AdminUser struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdminUser creates a new AdminUser entity with an already-hashed password.
func NewAdminUser(username, passwordHash string) *AdminUser {
	now := time.Now().UTC()

	return &AdminUser{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
