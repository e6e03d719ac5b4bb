// Package report contains the sales/expense aggregation and reporting use
// cases. All monetary arithmetic stays in decimal.Decimal until a document is
// rendered; every query is a pure read and safe to run concurrently.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/restobill/backend/internal/domain/entity"
)

// Scope is the cross-cutting visibility predicate threaded through every
// aggregation query. A non-nil Floor restricts results to records created at
// or after that instant; a zero Scope sees everything.
type Scope struct {
	Floor *time.Time
}

// ItemSales is one row of an item-level sales breakdown: a menu item name
// with the summed quantity and revenue across the queried window.
type ItemSales struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// Repository defines the read-side queries the aggregation engine needs.
type Repository interface {
	// PaidOrdersBetween returns paid orders created in [start, end),
	// oldest first, restricted by the scope floor.
	PaidOrdersBetween(ctx context.Context, start, end time.Time, scope Scope) ([]*entity.Order, error)

	// ItemSalesBetween returns per-menu-item quantity and revenue sums over
	// order items of paid orders created in [start, end), ordered by
	// quantity descending then name ascending.
	ItemSalesBetween(ctx context.Context, start, end time.Time, scope Scope) ([]ItemSales, error)

	// ExpensesBetween returns expenses dated in [start, end] inclusive,
	// restricted by the scope floor on their creation timestamp.
	ExpensesBetween(ctx context.Context, start, end time.Time, scope Scope) ([]*entity.Expense, error)
}

// sumOrderTotals adds order totals as exact decimals.
func sumOrderTotals(orders []*entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalAmount)
	}
	return total
}

// dayStart truncates a timestamp to midnight UTC.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
