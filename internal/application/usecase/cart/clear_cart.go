package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
)

// ClearCartInput represents the input for clearing the session cart.
type ClearCartInput struct {
	SessionID uuid.UUID
}

// ClearCartUseCase empties the session cart.
type ClearCartUseCase struct {
	cartStore adapter.CartStore
}

// NewClearCartUseCase creates a new ClearCartUseCase instance.
func NewClearCartUseCase(cartStore adapter.CartStore) *ClearCartUseCase {
	return &ClearCartUseCase{
		cartStore: cartStore,
	}
}

// Execute clears the cart. Clearing a missing cart is not an error.
func (uc *ClearCartUseCase) Execute(ctx context.Context, input ClearCartInput) error {
	if err := uc.cartStore.Clear(ctx, input.SessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
