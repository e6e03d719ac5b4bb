package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
)

// MonthlySalesInput represents the input for the monthly sales report.
type MonthlySalesInput struct {
	Year  int
	Month int
	Scope Scope
}

// MonthlySalesOutput represents the monthly sales report.
type MonthlySalesOutput struct {
	Year        int
	Month       int
	TotalSales  decimal.Decimal
	TotalOrders int
	Orders      []*entity.Order
}

// MonthlySalesUseCase sums paid orders for one calendar month.
type MonthlySalesUseCase struct {
	reportRepo Repository
}

// NewMonthlySalesUseCase creates a new MonthlySalesUseCase instance.
func NewMonthlySalesUseCase(reportRepo Repository) *MonthlySalesUseCase {
	return &MonthlySalesUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the report for the given calendar month.
func (uc *MonthlySalesUseCase) Execute(ctx context.Context, input MonthlySalesInput) (*MonthlySalesOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}

	start := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	orders, err := uc.reportRepo.PaidOrdersBetween(ctx, start, end, input.Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly sales: %w", err)
	}

	return &MonthlySalesOutput{
		Year:        input.Year,
		Month:       input.Month,
		TotalSales:  sumOrderTotals(orders),
		TotalOrders: len(orders),
		Orders:      orders,
	}, nil
}
