package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// MarkPaidInput represents the input for marking an order as paid.
type MarkPaidInput struct {
	OrderID uuid.UUID
}

// MarkPaidOutput represents the output of marking an order as paid.
type MarkPaidOutput struct {
	Order *entity.Order
}

// MarkPaidUseCase transitions a pending order to paid. Paid and cancelled are
// terminal: calling this on a non-pending order returns the order unchanged.
type MarkPaidUseCase struct {
	orderRepo adapter.OrderRepository
}

// NewMarkPaidUseCase creates a new MarkPaidUseCase instance.
func NewMarkPaidUseCase(orderRepo adapter.OrderRepository) *MarkPaidUseCase {
	return &MarkPaidUseCase{
		orderRepo: orderRepo,
	}
}

// Execute performs the status transition.
func (uc *MarkPaidUseCase) Execute(ctx context.Context, input MarkPaidInput) (*MarkPaidOutput, error) {
	order, err := uc.orderRepo.FindByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.Status != entity.OrderStatusPending {
		return &MarkPaidOutput{Order: order}, nil
	}

	order.Status = entity.OrderStatusPaid
	order.UpdatedAt = time.Now().UTC()

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to mark order as paid: %w", err)
	}

	return &MarkPaidOutput{Order: order}, nil
}
