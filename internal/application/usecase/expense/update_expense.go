package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update.
// Nil fields are left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Date        *time.Time
	Description *string
	Amount      *decimal.Decimal
	Category    *entity.ExpenseCategory
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if err := validateExpense(expense.Description, expense.Amount, expense.Category); err != nil {
		return nil, err
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}
