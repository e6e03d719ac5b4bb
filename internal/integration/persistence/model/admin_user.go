package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/domain/entity"
)

// AdminUserModel represents the admin_users table in the database.
type AdminUserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the AdminUserModel.
func (AdminUserModel) TableName() string {
	return "admin_users"
}

// ToEntity converts an AdminUserModel to a domain AdminUser entity.
func (m *AdminUserModel) ToEntity() *entity.AdminUser {
	return &entity.AdminUser{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AdminUserFromEntity converts a domain AdminUser entity to an AdminUserModel.
func AdminUserFromEntity(user *entity.AdminUser) *AdminUserModel {
	return &AdminUserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
