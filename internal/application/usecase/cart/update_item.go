package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// UpdateItemInput represents the input for updating a cart line quantity.
// A quantity of zero or less removes the line.
type UpdateItemInput struct {
	SessionID  uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
}

// UpdateItemOutput represents the cart state after the update.
type UpdateItemOutput struct {
	CartCount int
	Total     decimal.Decimal
}

// UpdateItemUseCase updates the quantity of an existing cart line.
type UpdateItemUseCase struct {
	cartStore adapter.CartStore
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(cartStore adapter.CartStore) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		cartStore: cartStore,
	}
}

// Execute performs the quantity update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	cart, err := uc.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if !cart.SetQuantity(input.MenuItemID, input.Quantity) {
		return nil, domainerror.NewCartError(
			domainerror.ErrCodeCartItemNotFound,
			"item not found in cart",
			domainerror.ErrCartItemNotFound,
		)
	}

	if err := uc.cartStore.Save(ctx, input.SessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return &UpdateItemOutput{
		CartCount: cart.Count(),
		Total:     cart.Total(),
	}, nil
}
