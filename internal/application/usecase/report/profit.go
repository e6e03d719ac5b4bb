package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Profit returns sales minus expenses as an exact decimal. The result is
// negative whenever expenses exceed sales.
func Profit(sales, expenses decimal.Decimal) decimal.Decimal {
	return sales.Sub(expenses)
}

// ProfitReportInput represents the input for the profit report.
// StartDate and EndDate are inclusive calendar dates.
type ProfitReportInput struct {
	StartDate time.Time
	EndDate   time.Time
	Scope     Scope
}

// ProfitReportOutput represents the profit report.
type ProfitReportOutput struct {
	StartDate     time.Time
	EndDate       time.Time
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal
	Profit        decimal.Decimal
}

// ProfitReportUseCase derives profit from sales and expenses over one range.
// Profit is never stored, always recomputed.
type ProfitReportUseCase struct {
	salesUseCase    *SalesRangeUseCase
	expensesUseCase *ExpensesRangeUseCase
}

// NewProfitReportUseCase creates a new ProfitReportUseCase instance.
func NewProfitReportUseCase(salesUseCase *SalesRangeUseCase, expensesUseCase *ExpensesRangeUseCase) *ProfitReportUseCase {
	return &ProfitReportUseCase{
		salesUseCase:    salesUseCase,
		expensesUseCase: expensesUseCase,
	}
}

// Execute computes sales, expenses and their difference for the range.
func (uc *ProfitReportUseCase) Execute(ctx context.Context, input ProfitReportInput) (*ProfitReportOutput, error) {
	sales, err := uc.salesUseCase.Execute(ctx, SalesRangeInput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Scope:     input.Scope,
	})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expensesUseCase.Execute(ctx, ExpensesRangeInput{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Scope:     input.Scope,
	})
	if err != nil {
		return nil, err
	}

	return &ProfitReportOutput{
		StartDate:     sales.StartDate,
		EndDate:       sales.EndDate,
		TotalSales:    sales.TotalSales,
		TotalExpenses: expenses.TotalExpenses,
		Profit:        Profit(sales.TotalSales, expenses.TotalExpenses),
	}, nil
}
