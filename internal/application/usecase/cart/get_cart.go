package cart

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// GetCartInput represents the input for reading the session cart.
type GetCartInput struct {
	SessionID uuid.UUID
}

// GetCartOutput represents the current cart contents.
type GetCartOutput struct {
	Lines     []*entity.CartLine
	CartCount int
	Total     decimal.Decimal
}

// GetCartUseCase reads the session cart.
type GetCartUseCase struct {
	cartStore adapter.CartStore
}

// NewGetCartUseCase creates a new GetCartUseCase instance.
func NewGetCartUseCase(cartStore adapter.CartStore) *GetCartUseCase {
	return &GetCartUseCase{
		cartStore: cartStore,
	}
}

// Execute returns the cart lines sorted by item name for stable display.
func (uc *GetCartUseCase) Execute(ctx context.Context, input GetCartInput) (*GetCartOutput, error) {
	cart, err := uc.cartStore.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	lines := make([]*entity.CartLine, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Name < lines[j].Name
	})

	return &GetCartOutput{
		Lines:     lines,
		CartCount: cart.Count(),
		Total:     cart.Total(),
	}, nil
}
