// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/persistence/model"
)

// menuRepository implements the adapter.MenuRepository interface.
type menuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository instance.
func NewMenuRepository(db *gorm.DB) adapter.MenuRepository {
	return &menuRepository{
		db: db,
	}
}

// Create creates a new menu item in the database.
func (r *menuRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	menuItemModel := model.MenuItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(menuItemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a menu item by its ID.
func (r *menuRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var menuItemModel model.MenuItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&menuItemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMenuItemNotFound
		}
		return nil, result.Error
	}
	return menuItemModel.ToEntity(), nil
}

// FindByIDs retrieves menu items for the given IDs.
func (r *menuRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var menuItemModels []model.MenuItemModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&menuItemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.MenuItem, 0, len(menuItemModels))
	for i := range menuItemModels {
		items = append(items, menuItemModels[i].ToEntity())
	}
	return items, nil
}

// FindAll retrieves menu items ordered by name.
func (r *menuRepository) FindAll(ctx context.Context, availableOnly bool) ([]*entity.MenuItem, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var menuItemModels []model.MenuItemModel
	result := query.Find(&menuItemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.MenuItem, 0, len(menuItemModels))
	for i := range menuItemModels {
		items = append(items, menuItemModels[i].ToEntity())
	}
	return items, nil
}

// Update updates an existing menu item in the database.
func (r *menuRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	menuItemModel := model.MenuItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(menuItemModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMenuItemNotFound
	}
	return nil
}

// Delete removes a menu item from the database.
func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MenuItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMenuItemNotFound
	}
	return nil
}

// CountOrderItems counts the historical order items referencing a menu item.
func (r *menuRepository) CountOrderItems(ctx context.Context, menuItemID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("menu_item_id = ?", menuItemID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
