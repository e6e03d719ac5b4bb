package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/application/usecase/report"
	"github.com/restobill/backend/internal/domain/entity"
	domainerror "github.com/restobill/backend/internal/domain/error"
	"github.com/restobill/backend/internal/integration/persistence/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.MenuItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ExpenseModel{},
		&model.AdminUserModel{},
	))

	return db
}

func mustDecimal(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	require.NoError(t, err)
	return d
}

func seedMenuItem(t *testing.T, db *gorm.DB, name, price string, available bool) *entity.MenuItem {
	t.Helper()
	item := entity.NewMenuItem(name, mustDecimal(t, price), "", "breakfast", available)
	require.NoError(t, NewMenuRepository(db).Create(context.Background(), item))
	return item
}

func seedPaidOrder(t *testing.T, db *gorm.DB, number string, createdAt time.Time, lines map[*entity.MenuItem]int) *entity.Order {
	t.Helper()

	items := make([]*entity.OrderItem, 0, len(lines))
	total := decimal.Zero
	for menuItem, quantity := range lines {
		orderItem := entity.NewOrderItem(menuItem.ID, menuItem.Name, quantity, menuItem.Price)
		items = append(items, orderItem)
		total = total.Add(orderItem.Subtotal())
	}

	order := entity.NewOrder(number, total, items)
	order.Status = entity.OrderStatusPaid
	order.CreatedAt = createdAt
	order.UpdatedAt = createdAt
	require.NoError(t, NewOrderRepository(db).CreateWithItems(context.Background(), order))
	return order
}

func TestMenuRepositoryCRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	seedMenuItem(t, db, "Vada", "20.00", false)
	seedMenuItem(t, db, "Dosai", "40.00", true)

	found, err := repo.FindByID(ctx, idly.ID)
	require.NoError(t, err)
	assert.Equal(t, "Idly", found.Name)
	assert.Equal(t, "15.00", found.Price.StringFixed(2))

	all, err := repo.FindAll(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Ordered by name.
	assert.Equal(t, "Dosai", all[0].Name)
	assert.Equal(t, "Idly", all[1].Name)
	assert.Equal(t, "Vada", all[2].Name)

	available, err := repo.FindAll(ctx, true)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	found.Price = mustDecimal(t, "18.00")
	require.NoError(t, repo.Update(ctx, found))
	reloaded, err := repo.FindByID(ctx, idly.ID)
	require.NoError(t, err)
	assert.Equal(t, "18.00", reloaded.Price.StringFixed(2))

	require.NoError(t, repo.Delete(ctx, idly.ID))
	_, err = repo.FindByID(ctx, idly.ID)
	assert.True(t, errors.Is(err, domainerror.ErrMenuItemNotFound))

	err = repo.Delete(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerror.ErrMenuItemNotFound))
}

func TestMenuRepositoryFindByIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	vada := seedMenuItem(t, db, "Vada", "20.00", true)

	found, err := repo.FindByIDs(ctx, []uuid.UUID{idly.ID, vada.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	none, err := repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMenuRepositoryCountOrderItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	vada := seedMenuItem(t, db, "Vada", "20.00", true)
	seedPaidOrder(t, db, "ORD-20240309-AAAAAAAA", time.Now().UTC(), map[*entity.MenuItem]int{idly: 2})

	referenced, err := repo.CountOrderItems(ctx, idly.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), referenced)

	unreferenced, err := repo.CountOrderItems(ctx, vada.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unreferenced)
}

func TestOrderRepositoryCreateWithItemsAndReload(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	vada := seedMenuItem(t, db, "Vada", "20.00", true)
	order := seedPaidOrder(t, db, "ORD-20240309-BBBBBBBB", time.Now().UTC(), map[*entity.MenuItem]int{
		idly: 2,
		vada: 2,
	})

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	assert.Equal(t, "ORD-20240309-BBBBBBBB", reloaded.OrderNumber)
	assert.Equal(t, "70.00", reloaded.TotalAmount.StringFixed(2))
	require.Len(t, reloaded.Items, 2)
	// The preloaded relation fills in item names for the bill.
	names := map[string]bool{}
	for _, item := range reloaded.Items {
		names[item.MenuItemName] = true
	}
	assert.True(t, names["Idly"])
	assert.True(t, names["Vada"])
}

func TestOrderRepositoryExistsByOrderNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	seedPaidOrder(t, db, "ORD-20240309-CCCCCCCC", time.Now().UTC(), map[*entity.MenuItem]int{idly: 1})

	exists, err := repo.ExistsByOrderNumber(ctx, "ORD-20240309-CCCCCCCC")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByOrderNumber(ctx, "ORD-20240309-DDDDDDDD")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	order := seedPaidOrder(t, db, "ORD-20240309-EEEEEEEE", time.Now().UTC(), map[*entity.MenuItem]int{idly: 1})

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, order))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, reloaded.Status)

	missing := entity.NewOrder("ORD-20240309-FFFFFFFF", decimal.Zero, nil)
	err = repo.Update(ctx, missing)
	assert.True(t, errors.Is(err, domainerror.ErrOrderNotFound))
}

func TestExpenseRepositoryFilter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	march1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march5 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	march9 := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, entity.NewExpense(march1, "gas", mustDecimal(t, "30.00"), entity.ExpenseCategoryUtilities)))
	require.NoError(t, repo.Create(ctx, entity.NewExpense(march5, "vegetables", mustDecimal(t, "50.00"), entity.ExpenseCategoryIngredients)))
	require.NoError(t, repo.Create(ctx, entity.NewExpense(march9, "repair", mustDecimal(t, "100.00"), entity.ExpenseCategoryEquipment)))

	inRange, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{
		StartDate: &march1,
		EndDate:   &march5,
	})
	require.NoError(t, err)
	require.Len(t, inRange, 2)
	// Newest first.
	assert.Equal(t, "vegetables", inRange[0].Description)
	assert.Equal(t, "gas", inRange[1].Description)

	category := entity.ExpenseCategoryEquipment
	byCategory, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{Category: &category})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "repair", byCategory[0].Description)
}

func TestExpenseRepositoryUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	expense := entity.NewExpense(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "gas", mustDecimal(t, "30.00"), entity.ExpenseCategoryUtilities)
	require.NoError(t, repo.Create(ctx, expense))

	expense.Amount = mustDecimal(t, "35.00")
	require.NoError(t, repo.Update(ctx, expense))

	reloaded, err := repo.FindByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, "35.00", reloaded.Amount.StringFixed(2))

	require.NoError(t, repo.Delete(ctx, expense.ID))
	err = repo.Delete(ctx, expense.ID)
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
}

func TestAdminUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminUserRepository(db)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(ctx, entity.NewAdminUser("admin", "hash")))

	admin, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "hash", admin.PasswordHash)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, domainerror.ErrAdminNotFound))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestReportRepositoryPaidOrdersOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	idly := seedMenuItem(t, db, "Idly", "15.00", true)

	seedPaidOrder(t, db, "ORD-20240309-A0000001", day.Add(9*time.Hour), map[*entity.MenuItem]int{idly: 4})

	// A pending order in the same window must not count.
	pendingItems := []*entity.OrderItem{entity.NewOrderItem(idly.ID, idly.Name, 2, idly.Price)}
	pending := entity.NewOrder("ORD-20240309-A0000002", mustDecimal(t, "30.00"), pendingItems)
	pending.CreatedAt = day.Add(10 * time.Hour)
	require.NoError(t, NewOrderRepository(db).CreateWithItems(ctx, pending))

	orders, err := repo.PaidOrdersBetween(ctx, day, day.AddDate(0, 0, 1), report.Scope{})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-20240309-A0000001", orders[0].OrderNumber)
	assert.Equal(t, "60.00", orders[0].TotalAmount.StringFixed(2))
}

func TestReportRepositoryItemSalesBreakdown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	idly := seedMenuItem(t, db, "Idly", "15.00", true)
	vada := seedMenuItem(t, db, "Vada", "20.00", true)
	dosai := seedMenuItem(t, db, "Dosai", "40.00", true)

	seedPaidOrder(t, db, "ORD-20240309-B0000001", day.Add(8*time.Hour), map[*entity.MenuItem]int{idly: 3, vada: 1})
	seedPaidOrder(t, db, "ORD-20240309-B0000002", day.Add(12*time.Hour), map[*entity.MenuItem]int{idly: 2, dosai: 1})

	items, err := repo.ItemSalesBetween(ctx, day, day.AddDate(0, 0, 1), report.Scope{})
	require.NoError(t, err)

	require.Len(t, items, 3)
	// Quantity descending, then name ascending for the tie.
	assert.Equal(t, "Idly", items[0].Name)
	assert.Equal(t, int64(5), items[0].Quantity)
	assert.Equal(t, "75.00", items[0].Revenue.StringFixed(2))
	assert.Equal(t, "Dosai", items[1].Name)
	assert.Equal(t, "Vada", items[2].Name)
}

func TestReportRepositoryScopeFloor(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	idly := seedMenuItem(t, db, "Idly", "15.00", true)

	seedPaidOrder(t, db, "ORD-20240309-C0000001", day.Add(8*time.Hour), map[*entity.MenuItem]int{idly: 1})
	seedPaidOrder(t, db, "ORD-20240309-C0000002", day.Add(14*time.Hour), map[*entity.MenuItem]int{idly: 1})

	floor := day.Add(12 * time.Hour)
	orders, err := repo.PaidOrdersBetween(ctx, day, day.AddDate(0, 0, 1), report.Scope{Floor: &floor})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-20240309-C0000002", orders[0].OrderNumber)
}

func TestReportRepositoryExpensesBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	expenseRepo := NewExpenseRepository(db)
	ctx := context.Background()

	march1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	march5 := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	march6 := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	require.NoError(t, expenseRepo.Create(ctx, entity.NewExpense(march1, "gas", mustDecimal(t, "30.00"), entity.ExpenseCategoryUtilities)))
	require.NoError(t, expenseRepo.Create(ctx, entity.NewExpense(march5, "vegetables", mustDecimal(t, "50.00"), entity.ExpenseCategoryIngredients)))
	require.NoError(t, expenseRepo.Create(ctx, entity.NewExpense(march6, "repair", mustDecimal(t, "100.00"), entity.ExpenseCategoryEquipment)))

	expenses, err := repo.ExpensesBetween(ctx, march1, march5, report.Scope{})
	require.NoError(t, err)

	require.Len(t, expenses, 2)
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	assert.Equal(t, "80.00", total.StringFixed(2))
}
