package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// UpdateMenuItemInput represents the input for menu item update.
// Nil fields are left unchanged.
type UpdateMenuItemInput struct {
	ID          uuid.UUID
	Name        *string
	Price       *decimal.Decimal
	Description *string
	Category    *string
	IsAvailable *bool
}

// UpdateMenuItemOutput represents the output of menu item update.
type UpdateMenuItemOutput struct {
	MenuItem *entity.MenuItem
}

// UpdateMenuItemUseCase handles menu item update logic.
type UpdateMenuItemUseCase struct {
	menuRepo adapter.MenuRepository
}

// NewUpdateMenuItemUseCase creates a new UpdateMenuItemUseCase instance.
func NewUpdateMenuItemUseCase(menuRepo adapter.MenuRepository) *UpdateMenuItemUseCase {
	return &UpdateMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute performs the menu item update.
func (uc *UpdateMenuItemUseCase) Execute(ctx context.Context, input UpdateMenuItemInput) (*UpdateMenuItemOutput, error) {
	item, err := uc.menuRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" || len(name) > MaxNameLength {
			return nil, domainerror.NewMenuError(
				domainerror.ErrCodeMenuItemNameRequired,
				"menu item name is required",
				domainerror.ErrMenuItemNameRequired,
			)
		}
		item.Name = name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, domainerror.NewMenuError(
				domainerror.ErrCodeInvalidMenuItemPrice,
				"menu item price must not be negative",
				domainerror.ErrInvalidMenuItemPrice,
			)
		}
		item.Price = *input.Price
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	item.UpdatedAt = time.Now().UTC()

	if err := uc.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	return &UpdateMenuItemOutput{MenuItem: item}, nil
}
