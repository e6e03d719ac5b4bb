package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *entity.ExpenseCategory
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing expenses with optional filters.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves expenses and their decimal total.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Category:  input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{Expenses: expenses, Total: total}, nil
}
