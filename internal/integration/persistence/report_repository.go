package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/restobill/backend/internal/application/usecase/report"
	"github.com/restobill/backend/internal/domain/entity"
	"github.com/restobill/backend/internal/integration/persistence/model"
)

// reportRepository implements the report.Repository read-side queries.
// Only paid orders contribute to sales figures; pending and cancelled
// orders are invisible to every aggregation.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{
		db: db,
	}
}

// PaidOrdersBetween returns paid orders created in [start, end), oldest first.
func (r *reportRepository) PaidOrdersBetween(ctx context.Context, start, end time.Time, scope report.Scope) ([]*entity.Order, error) {
	query := r.db.WithContext(ctx).
		Where("status = ?", string(entity.OrderStatusPaid)).
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at ASC")
	query = applyScope(query, "created_at", scope)

	var orderModels []model.OrderModel
	result := query.Find(&orderModels)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, orderModels[i].ToEntity())
	}
	return orders, nil
}

// itemSalesRow is the scan target for the item breakdown query.
type itemSalesRow struct {
	Name     string
	Quantity int64
	Revenue  decimal.Decimal
}

// ItemSalesBetween sums quantity and revenue per menu item over order items
// of paid orders created in [start, end).
func (r *reportRepository) ItemSalesBetween(ctx context.Context, start, end time.Time, scope report.Scope) ([]report.ItemSales, error) {
	query := r.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Select("menu_items.name AS name, SUM(order_items.quantity) AS quantity, SUM(order_items.quantity * order_items.unit_price) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.status = ?", string(entity.OrderStatusPaid)).
		Where("orders.created_at >= ? AND orders.created_at < ?", start, end).
		Group("menu_items.name").
		Order("quantity DESC, menu_items.name ASC")
	query = applyScope(query, "orders.created_at", scope)

	var rows []itemSalesRow
	result := query.Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]report.ItemSales, 0, len(rows))
	for _, row := range rows {
		items = append(items, report.ItemSales{
			Name:     row.Name,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}
	return items, nil
}

// ExpensesBetween returns expenses dated in [start, end] inclusive, oldest
// first.
func (r *reportRepository) ExpensesBetween(ctx context.Context, start, end time.Time, scope report.Scope) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, created_at ASC")
	query = applyScope(query, "created_at", scope)

	var expenseModels []model.ExpenseModel
	result := query.Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, expenseModels[i].ToEntity())
	}
	return expenses, nil
}

// applyScope narrows a query to records created at or after the scope floor.
func applyScope(query *gorm.DB, column string, scope report.Scope) *gorm.DB {
	if scope.Floor != nil {
		query = query.Where(column+" >= ?", *scope.Floor)
	}
	return query
}
