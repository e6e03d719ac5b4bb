package menu

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// DeleteMenuItemInput represents the input for menu item deletion.
type DeleteMenuItemInput struct {
	ID uuid.UUID
}

// DeleteMenuItemUseCase handles menu item deletion logic. Deletion is refused
// while historical order items still reference the menu item, so old bills
// keep their item names and prices.
type DeleteMenuItemUseCase struct {
	menuRepo adapter.MenuRepository
}

// NewDeleteMenuItemUseCase creates a new DeleteMenuItemUseCase instance.
func NewDeleteMenuItemUseCase(menuRepo adapter.MenuRepository) *DeleteMenuItemUseCase {
	return &DeleteMenuItemUseCase{
		menuRepo: menuRepo,
	}
}

// Execute performs the menu item deletion.
func (uc *DeleteMenuItemUseCase) Execute(ctx context.Context, input DeleteMenuItemInput) error {
	if _, err := uc.menuRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	referenced, err := uc.menuRepo.CountOrderItems(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count order items for menu item: %w", err)
	}
	if referenced > 0 {
		return domainerror.NewMenuError(
			domainerror.ErrCodeMenuItemInUse,
			"menu item is referenced by existing orders; mark it unavailable instead",
			domainerror.ErrMenuItemInUse,
		)
	}

	if err := uc.menuRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
