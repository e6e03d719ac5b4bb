package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/restobill/backend/internal/domain/error"
)

// SalesRangeInput represents the input for the date-range sales report.
// StartDate and EndDate are inclusive calendar dates.
type SalesRangeInput struct {
	StartDate time.Time
	EndDate   time.Time
	Scope     Scope
}

// SalesRangeOutput represents the date-range sales report with an item-level
// breakdown ordered by quantity descending, name ascending.
type SalesRangeOutput struct {
	StartDate     time.Time
	EndDate       time.Time
	TotalSales    decimal.Decimal
	TotalOrders   int
	ItemBreakdown []ItemSales
}

// SalesRangeUseCase aggregates paid orders over an arbitrary date range.
type SalesRangeUseCase struct {
	reportRepo Repository
}

// NewSalesRangeUseCase creates a new SalesRangeUseCase instance.
func NewSalesRangeUseCase(reportRepo Repository) *SalesRangeUseCase {
	return &SalesRangeUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes totals and the item breakdown for the inclusive range.
func (uc *SalesRangeUseCase) Execute(ctx context.Context, input SalesRangeInput) (*SalesRangeOutput, error) {
	start := dayStart(input.StartDate)
	end := dayStart(input.EndDate)
	if end.Before(start) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	// Inclusive end date becomes a half-open timestamp window.
	windowEnd := end.AddDate(0, 0, 1)

	orders, err := uc.reportRepo.PaidOrdersBetween(ctx, start, windowEnd, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales range: %w", err)
	}

	breakdown, err := uc.reportRepo.ItemSalesBetween(ctx, start, windowEnd, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get item breakdown: %w", err)
	}

	return &SalesRangeOutput{
		StartDate:     start,
		EndDate:       end,
		TotalSales:    sumOrderTotals(orders),
		TotalOrders:   len(orders),
		ItemBreakdown: breakdown,
	}, nil
}
