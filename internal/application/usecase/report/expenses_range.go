package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// ExpensesRangeInput represents the input for the expenses report.
// StartDate and EndDate are inclusive calendar dates.
type ExpensesRangeInput struct {
	StartDate time.Time
	EndDate   time.Time
	Scope     Scope
}

// ExpensesRangeOutput represents the expenses report.
type ExpensesRangeOutput struct {
	StartDate     time.Time
	EndDate       time.Time
	TotalExpenses decimal.Decimal
	Expenses      []*entity.Expense
}

// ExpensesRangeUseCase sums expenses dated within an inclusive range.
type ExpensesRangeUseCase struct {
	reportRepo Repository
}

// NewExpensesRangeUseCase creates a new ExpensesRangeUseCase instance.
func NewExpensesRangeUseCase(reportRepo Repository) *ExpensesRangeUseCase {
	return &ExpensesRangeUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the expenses report.
func (uc *ExpensesRangeUseCase) Execute(ctx context.Context, input ExpensesRangeInput) (*ExpensesRangeOutput, error) {
	start := dayStart(input.StartDate)
	end := dayStart(input.EndDate)
	if end.Before(start) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	expenses, err := uc.reportRepo.ExpensesBetween(ctx, start, end, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ExpensesRangeOutput{
		StartDate:     start,
		EndDate:       end,
		TotalExpenses: total,
		Expenses:      expenses,
	}, nil
}
