package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/persistence/model"
)

// adminUserRepository implements the adapter.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository creates a new admin user repository instance.
func NewAdminUserRepository(db *gorm.DB) adapter.AdminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

// Create creates a new admin user in the database.
func (r *adminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	adminUserModel := model.AdminUserFromEntity(user)
	result := r.db.WithContext(ctx).Create(adminUserModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUsername retrieves an admin user by username.
func (r *adminUserRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminUser, error) {
	var adminUserModel model.AdminUserModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&adminUserModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAdminNotFound
		}
		return nil, result.Error
	}
	return adminUserModel.ToEntity(), nil
}

// Count returns the number of admin users.
func (r *adminUserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.AdminUserModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
