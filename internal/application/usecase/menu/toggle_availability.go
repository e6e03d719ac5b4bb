package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// ToggleAvailabilityInput represents the input for toggling availability.
type ToggleAvailabilityInput struct {
	ID uuid.UUID
}

// ToggleAvailabilityOutput represents the output of toggling availability.
type ToggleAvailabilityOutput struct {
	MenuItem *entity.MenuItem
}

// ToggleAvailabilityUseCase flips a menu item's availability flag.
type ToggleAvailabilityUseCase struct {
	menuRepo adapter.MenuRepository
}

// NewToggleAvailabilityUseCase creates a new ToggleAvailabilityUseCase instance.
func NewToggleAvailabilityUseCase(menuRepo adapter.MenuRepository) *ToggleAvailabilityUseCase {
	return &ToggleAvailabilityUseCase{
		menuRepo: menuRepo,
	}
}

// Execute flips the availability flag.
func (uc *ToggleAvailabilityUseCase) Execute(ctx context.Context, input ToggleAvailabilityInput) (*ToggleAvailabilityOutput, error) {
	item, err := uc.menuRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	item.IsAvailable = !item.IsAvailable
	item.UpdatedAt = time.Now().UTC()

	if err := uc.menuRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to toggle menu item availability: %w", err)
	}

	return &ToggleAvailabilityOutput{MenuItem: item}, nil
}
