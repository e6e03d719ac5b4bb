package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
)

// DailySalesInput represents the input for the daily sales report.
type DailySalesInput struct {
	Date  time.Time
	Scope Scope
}

// DailySalesOutput represents the daily sales report.
type DailySalesOutput struct {
	Date        time.Time
	TotalSales  decimal.Decimal
	TotalOrders int
	Orders      []*entity.Order
}

// DailySalesUseCase sums paid orders for one calendar day.
type DailySalesUseCase struct {
	reportRepo Repository
}

// NewDailySalesUseCase creates a new DailySalesUseCase instance.
func NewDailySalesUseCase(reportRepo Repository) *DailySalesUseCase {
	return &DailySalesUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the report for the day containing input.Date.
func (uc *DailySalesUseCase) Execute(ctx context.Context, input DailySalesInput) (*DailySalesOutput, error) {
	start := dayStart(input.Date)
	end := start.AddDate(0, 0, 1)

	orders, err := uc.reportRepo.PaidOrdersBetween(ctx, start, end, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}

	return &DailySalesOutput{
		Date:        start,
		TotalSales:  sumOrderTotals(orders),
		TotalOrders: len(orders),
		Orders:      orders,
	}, nil
}
