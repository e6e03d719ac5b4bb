package order

import (
	"context"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// GetOrderInput represents the input for retrieving an order.
type GetOrderInput struct {
	OrderID uuid.UUID
}

// GetOrderOutput represents the retrieved order with its items.
type GetOrderOutput struct {
	Order *entity.Order
}

// GetOrderUseCase retrieves an order and its items for the bill view.
type GetOrderUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewGetOrderUseCase creates a new GetOrderUseCase instance.
func NewGetOrderUseCase(orderRepo adapter.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute retrieves the order.
func (uc *GetOrderUseCase) Execute(ctx context.Context, input GetOrderInput) (*GetOrderOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	return &GetOrderOutput{Order: order}, nil
}
