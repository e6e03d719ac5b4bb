package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// RemoveItemInput represents the input for removing a cart line.
type RemoveItemInput struct {
	SessionID  uuid.UUID
	MenuItemID uuid.UUID
}

// RemoveItemOutput represents the cart state after the removal.
type RemoveItemOutput struct {
	CartCount int
	Total     decimal.Decimal
}

// RemoveItemUseCase removes a line from the session cart.
type RemoveItemUseCase struct {
	cartStore adapter.CartStore
}

// NewRemoveItemUseCase creates a new RemoveItemUseCase instance.
func NewRemoveItemUseCase(cartStore adapter.CartStore) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		cartStore: cartStore,
	}
}

// Execute performs the removal.
func (uc *RemoveItemUseCase) Execute(ctx context.Context, input RemoveItemInput) (*RemoveItemOutput, error) {
	cart, err := uc.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if !cart.RemoveLine(input.MenuItemID) {
		return nil, domainerror.NewCartError(
			domainerror.ErrCodeCartItemNotFound,
			"item not found in cart",
			domainerror.ErrCartItemNotFound,
		)
	}

	if err := uc.cartStore.Save(ctx, input.SessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return &RemoveItemOutput{
		CartCount: cart.Count(),
		Total:     cart.Total(),
	}, nil
}
