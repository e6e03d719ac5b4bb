// Package menu contains menu-management use cases.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for menu item names.
const MaxNameLength = 100

// CreateMenuItemInput represents the input for menu item creation.
type CreateMenuItemInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Category    string
	IsAvailable bool
}

// CreateMenuItemOutput represents the output of menu item creation.
type CreateMenuItemOutput struct {
	MenuItem *entity.MenuItem
}

// CreateMenuItemUseCase handles menu item creation logic.
type CreateMenuItemUseCase struct {
	menuRepo adapter.MenuRepository
}

// NewCreateMenuItemUseCase creates a new CreateMenuItemUseCase instance.
func NewCreateMenuItemUseCase(menuRepo adapter.MenuRepository) *CreateMenuItemUseCase {
	return &CreateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute performs the menu item creation.
func (uc *CreateMenuItemUseCase) Execute(ctx context.Context, input CreateMenuItemInput) (*CreateMenuItemOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemNameRequired,
			"menu item name is required",
			domainerror.ErrMenuItemNameRequired,
		)
	}
	if len(name) > MaxNameLength {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemNameRequired,
			fmt.Sprintf("menu item name must not exceed %d characters", MaxNameLength),
			domainerror.ErrMenuItemNameRequired,
		)
	}
	if input.Price.IsNegative() {
		return nil, domainerror.NewMenuError(
			domainerror.ErrCodeInvalidMenuItemPrice,
			"menu item price must not be negative",
			domainerror.ErrInvalidMenuItemPrice,
		)
	}

	item := entity.NewMenuItem(name, input.Price, input.Description, input.Category, input.IsAvailable)
	if err := uc.menuRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	return &CreateMenuItemOutput{MenuItem: item}, nil
}
