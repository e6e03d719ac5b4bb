package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SummaryInput represents the input for the dashboard summary. Now overrides
// the reference instant; zero means the current time.
type SummaryInput struct {
	Now   time.Time
	Scope Scope
}

// SummaryOutput bundles today's sales with month-to-date figures.
type SummaryOutput struct {
	Date          time.Time
	TodaySales    decimal.Decimal
	TodayOrders   int
	MonthSales    decimal.Decimal
	MonthOrders   int
	MonthExpenses decimal.Decimal
	MonthProfit   decimal.Decimal
}

// SummaryUseCase composes the daily and monthly aggregations into the
// dashboard summary shown on the back-office landing page.
type SummaryUseCase struct {
	dailyUseCase    *DailySalesUseCase
	monthlyUseCase  *MonthlySalesUseCase
	expensesUseCase *ExpensesRangeUseCase
}

// NewSummaryUseCase creates a new SummaryUseCase instance.
func NewSummaryUseCase(
	dailyUseCase *DailySalesUseCase,
	monthlyUseCase *MonthlySalesUseCase,
	expensesUseCase *ExpensesRangeUseCase,
) *SummaryUseCase {
	return &SummaryUseCase{
		dailyUseCase:    dailyUseCase,
		monthlyUseCase:  monthlyUseCase,
		expensesUseCase: expensesUseCase,
	}
}

// Execute computes today's totals plus month-to-date sales, expenses and
// profit.
func (uc *SummaryUseCase) Execute(ctx context.Context, input SummaryInput) (*SummaryOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	today := dayStart(now)

	daily, err := uc.dailyUseCase.Execute(ctx, DailySalesInput{Date: today, Scope: input.Scope})
	if err != nil {
		return nil, err
	}

	monthly, err := uc.monthlyUseCase.Execute(ctx, MonthlySalesInput{
		Year:  today.Year(),
		Month: int(today.Month()),
		Scope: input.Scope,
	})
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	expenses, err := uc.expensesUseCase.Execute(ctx, ExpensesRangeInput{
		StartDate: monthStart,
		EndDate:   today,
		Scope:     input.Scope,
	})
	if err != nil {
		return nil, err
	}

	return &SummaryOutput{
		Date:          today,
		TodaySales:    daily.TotalSales,
		TodayOrders:   daily.TotalOrders,
		MonthSales:    monthly.TotalSales,
		MonthOrders:   monthly.TotalOrders,
		MonthExpenses: expenses.TotalExpenses,
		MonthProfit:   Profit(monthly.TotalSales, expenses.TotalExpenses),
	}, nil
}
