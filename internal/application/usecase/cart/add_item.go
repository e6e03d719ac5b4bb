// Package cart contains session-cart use cases. Every operation loads the
// caller's cart from the store, mutates it, and writes it back; the cart is
// explicit state, never ambient.
package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// AddItemInput represents the input for adding a menu item to the cart.
type AddItemInput struct {
	SessionID  uuid.UUID
	MenuItemID uuid.UUID
	// Quantity defaults to 1 when zero.
	Quantity int
}

// AddItemOutput represents the cart state after the addition.
type AddItemOutput struct {
	ItemName  string
	CartCount int
	Total     decimal.Decimal
}

// AddItemUseCase adds a menu item to the session cart, snapshotting the
// current menu price on first add.
type AddItemUseCase struct {
	menuRepo  adapter.MenuRepository
	cartStore adapter.CartStore
}

// NewAddItemUseCase creates a new AddItemUseCase instance.
func NewAddItemUseCase(menuRepo adapter.MenuRepository, cartStore adapter.CartStore) *AddItemUseCase {
	return &AddItemUseCase{
		menuRepo:  menuRepo,
		cartStore: cartStore,
	}
}

// Execute performs the addition.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, domainerror.NewCartError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be at least 1",
			domainerror.ErrInvalidQuantity,
		)
	}

	item, err := uc.menuRepo.FindByID(ctx, input.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemUnavailable,
			fmt.Sprintf("%s is not available", item.Name),
			domainerror.ErrMenuItemUnavailable,
		)
	}

	cart, err := uc.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart.AddItem(item, quantity)

	if err := uc.cartStore.Save(ctx, input.SessionID, cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}

	return &AddItemOutput{
		ItemName:  item.Name,
		CartCount: cart.Count(),
		Total:     cart.Total(),
	}, nil
}
