// Package expense contains expense-tracking use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 200

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    entity.ExpenseCategory
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpense(input.Description, input.Amount, input.Category); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(input.Date, strings.TrimSpace(input.Description), input.Amount, input.Category)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: expense}, nil
}

func validateExpense(description string, amount decimal.Decimal, category entity.ExpenseCategory) error {
	description = strings.TrimSpace(description)
	if description == "" || len(description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			fmt.Sprintf("expense description is required and must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must not be negative",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if !entity.IsValidExpenseCategory(category) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			fmt.Sprintf("unknown expense category %q", category),
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	return nil
}
