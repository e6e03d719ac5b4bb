package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/restobill/backend/internal/domain/error"
)

// TopItemsInput selects a trailing window of whole days or whole months.
// Exactly one of Days or Months must be positive. Until overrides the
// reference instant for the window end; zero means now.
type TopItemsInput struct {
	Days   int
	Months int
	Limit  int
	Until  time.Time
	Scope  Scope
}

// TopItemsOutput represents the top selling items report.
type TopItemsOutput struct {
	StartDate time.Time
	EndDate   time.Time
	Items     []ItemSales
}

// TopItemsUseCase ranks menu items by quantity sold over a trailing window.
type TopItemsUseCase struct {
	reportRepo Repository
}

// NewTopItemsUseCase creates a new TopItemsUseCase instance.
func NewTopItemsUseCase(reportRepo Repository) *TopItemsUseCase {
	return &TopItemsUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the ranking for the requested window.
func (uc *TopItemsUseCase) Execute(ctx context.Context, input TopItemsInput) (*TopItemsOutput, error) {
	if (input.Days > 0) == (input.Months > 0) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidWindow,
			"exactly one of days or months must be provided",
			domainerror.ErrInvalidWindow,
		)
	}

	until := input.Until
	if until.IsZero() {
		until = time.Now().UTC()
	}

	// The window ends after today, so today's paid orders count.
	end := dayStart(until).AddDate(0, 0, 1)
	var start time.Time
	var items []ItemSales
	var err error
	if input.Days > 0 {
		start = end.AddDate(0, 0, -input.Days)
		items, err = uc.reportRepo.ItemSalesBetween(ctx, start, end, input.Scope)
		if err != nil {
			return nil, fmt.Errorf("failed to get top items: %w", err)
		}
	} else {
		start = end.AddDate(0, -input.Months, 0)
		// Month windows are scanned one month at a time and the
		// per-month rankings merged into one.
		batches := make([][]ItemSales, 0, input.Months)
		for windowStart := start; windowStart.Before(end); {
			windowEnd := windowStart.AddDate(0, 1, 0)
			if windowEnd.After(end) {
				windowEnd = end
			}
			batch, err := uc.reportRepo.ItemSalesBetween(ctx, windowStart, windowEnd, input.Scope)
			if err != nil {
				return nil, fmt.Errorf("failed to get top items: %w", err)
			}
			batches = append(batches, batch)
			windowStart = windowEnd
		}
		items = MergeItemSales(batches...)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	if len(items) > limit {
		items = items[:limit]
	}

	return &TopItemsOutput{
		StartDate: start,
		EndDate:   end.AddDate(0, 0, -1),
		Items:     items,
	}, nil
}

// MergeItemSales accumulates per-item rows from several windows into one
// ranking, re-sorted by quantity descending then name ascending.
func MergeItemSales(batches ...[]ItemSales) []ItemSales {
	totals := make(map[string]*ItemSales)
	for _, batch := range batches {
		for _, row := range batch {
			acc, ok := totals[row.Name]
			if !ok {
				acc = &ItemSales{Name: row.Name, Revenue: decimal.Zero}
				totals[row.Name] = acc
			}
			acc.Quantity += row.Quantity
			acc.Revenue = acc.Revenue.Add(row.Revenue)
		}
	}

	merged := make([]ItemSales, 0, len(totals))
	for _, acc := range totals {
		merged = append(merged, *acc)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Quantity != merged[j].Quantity {
			return merged[i].Quantity > merged[j].Quantity
		}
		return merged[i].Name < merged[j].Name
	})
	return merged
}
