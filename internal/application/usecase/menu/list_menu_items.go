package menu

import (
	"context"
	"fmt"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// ListMenuItemsInput represents the input for listing menu items.
type ListMenuItemsInput struct {
	AvailableOnly bool
}

// ListMenuItemsOutput represents the output of listing menu items.
type ListMenuItemsOutput struct {
	MenuItems []*entity.MenuItem
}

// ListMenuItemsUseCase handles listing menu items.
type ListMenuItemsUseCase struct {
	menuRepo adapter.MenuRepository
}

// NewListMenuItemsUseCase creates a new ListMenuItemsUseCase instance.
func NewListMenuItemsUseCase(menuRepo adapter.MenuRepository) *ListMenuItemsUseCase {
	return &ListMenuItemsUseCase{
		menuRepo: menuRepo,
	}
}

// Execute retrieves menu items ordered by name.
func (uc *ListMenuItemsUseCase) Execute(ctx context.Context, input ListMenuItemsInput) (*ListMenuItemsOutput, error) {
	items, err := uc.menuRepo.FindAll(ctx, input.AvailableOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	return &ListMenuItemsOutput{MenuItems: items}, nil
}
