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

// orderRepository implements the adapter.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository instance.
func NewOrderRepository(db *gorm.DB) adapter.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateWithItems persists an order and all of its items in one transaction.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderModel := model.OrderFromEntity(order)
		items := orderModel.Items
		orderModel.Items = nil

		if err := tx.Create(orderModel).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves an order with its items by ID.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderModel model.OrderModel
	result := r.db.WithContext(ctx).
		Preload("Items.MenuItem").
		Where("id = ?", id).
		First(&orderModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrOrderNotFound
		}
		return nil, result.Error
	}
	return orderModel.ToEntity(), nil
}

// Update updates an existing order in the database.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":     string(order.Status),
			"updated_at": order.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrOrderNotFound
	}
	return nil
}

// ExistsByOrderNumber checks whether an order with the given number exists.
func (r *orderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("order_number = ?", orderNumber).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
