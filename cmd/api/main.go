// Package main is the entry point for the restaurant billing API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/restobill/backend/config"
	"github.com/restobill/backend/internal/application/adapter"
	"github.com/restobill/backend/internal/application/usecase/auth"
	"github.com/restobill/backend/internal/application/usecase/cart"
	"github.com/restobill/backend/internal/application/usecase/expense"
	"github.com/restobill/backend/internal/application/usecase/menu"
	"github.com/restobill/backend/internal/application/usecase/order"
	"github.com/restobill/backend/internal/application/usecase/report"
	"github.com/restobill/backend/internal/domain/entity"
	"github.com/restobill/backend/internal/infra/db"
	"github.com/restobill/backend/internal/infra/server/router"
	"github.com/restobill/backend/internal/integration/adapters"
	"github.com/restobill/backend/internal/integration/cache"
	"github.com/restobill/backend/internal/integration/entrypoint/controller"
	"github.com/restobill/backend/internal/integration/entrypoint/middleware"
	"github.com/restobill/backend/internal/integration/persistence"
	"github.com/restobill/backend/internal/integration/persistence/model"
	"github.com/restobill/backend/internal/integration/render"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting restobill API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.MenuItemModel{},
		&model.OrderModel{},
		&model.OrderItemModel{},
		&model.ExpenseModel{},
		&model.AdminUserModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient, err := cache.NewRedisClient(cfg.Redis.URL)
	if err != nil {
		slog.Error("Redis connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}()

	// Repositories and stores
	menuRepo := persistence.NewMenuRepository(database.DB())
	orderRepo := persistence.NewOrderRepository(database.DB())
	expenseRepo := persistence.NewExpenseRepository(database.DB())
	adminRepo := persistence.NewAdminUserRepository(database.DB())
	reportRepo := persistence.NewReportRepository(database.DB())
	cartStore := cache.NewCartStore(redisClient, cfg.Cart.TTL)
	exportCache := cache.NewReportCache(redisClient)

	// Integration services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	qrService := adapters.NewQRService()

	if err := seedAdminUser(adminRepo, passwordService, cfg.Admin); err != nil {
		slog.Error("Failed to seed admin user", "error", err)
		os.Exit(1)
	}

	// Use cases
	loginUseCase := auth.NewLoginAdminUseCase(adminRepo, passwordService, tokenService)

	createMenuItem := menu.NewCreateMenuItemUseCase(menuRepo)
	listMenuItems := menu.NewListMenuItemsUseCase(menuRepo)
	updateMenuItem := menu.NewUpdateMenuItemUseCase(menuRepo)
	deleteMenuItem := menu.NewDeleteMenuItemUseCase(menuRepo)
	toggleAvailability := menu.NewToggleAvailabilityUseCase(menuRepo)

	addCartItem := cart.NewAddItemUseCase(menuRepo, cartStore)
	updateCartItem := cart.NewUpdateItemUseCase(cartStore)
	removeCartItem := cart.NewRemoveItemUseCase(cartStore)
	getCart := cart.NewGetCartUseCase(cartStore)
	clearCart := cart.NewClearCartUseCase(cartStore)

	createOrder := order.NewCreateOrderUseCase(orderRepo, menuRepo, cartStore)
	markPaid := order.NewMarkPaidUseCase(orderRepo)
	getOrder := order.NewGetOrderUseCase(orderRepo)

	createExpense := expense.NewCreateExpenseUseCase(expenseRepo)
	listExpenses := expense.NewListExpensesUseCase(expenseRepo)
	updateExpense := expense.NewUpdateExpenseUseCase(expenseRepo)
	deleteExpense := expense.NewDeleteExpenseUseCase(expenseRepo)

	dailySales := report.NewDailySalesUseCase(reportRepo)
	monthlySales := report.NewMonthlySalesUseCase(reportRepo)
	salesRange := report.NewSalesRangeUseCase(reportRepo)
	expensesRange := report.NewExpensesRangeUseCase(reportRepo)
	profitReport := report.NewProfitReportUseCase(salesRange, expensesRange)
	topItems := report.NewTopItemsUseCase(reportRepo)
	summary := report.NewSummaryUseCase(dailySales, monthlySales, expensesRange)

	// Controllers
	healthController := controller.NewHealthController(
		database.HealthCheck,
		func() bool { return redisClient.Ping(context.Background()).Err() == nil },
	)
	authController := controller.NewAuthController(loginUseCase)
	menuController := controller.NewMenuController(
		createMenuItem, listMenuItems, updateMenuItem, deleteMenuItem, toggleAvailability,
	)
	cartController := controller.NewCartController(
		addCartItem, updateCartItem, removeCartItem, getCart, clearCart,
	)
	orderController := controller.NewOrderController(createOrder, markPaid, getOrder, qrService)
	expenseController := controller.NewExpenseController(
		createExpense, listExpenses, updateExpense, deleteExpense,
	)
	reportController := controller.NewReportController(
		dailySales, monthlySales, salesRange, expensesRange, profitReport, topItems, summary,
		map[string]adapter.DocumentRenderer{
			"pdf":  render.NewPDFRenderer(),
			"xlsx": render.NewExcelRenderer(),
		},
		exportCache,
		cfg.ReportCache.TTL,
	)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	sessionMiddleware := middleware.NewSessionMiddleware(cfg.Server.Environment == "production")

	appRouter := router.NewRouter(
		healthController,
		authController,
		menuController,
		cartController,
		orderController,
		expenseController,
		reportController,
		loginRateLimiter,
		authMiddleware,
		sessionMiddleware,
	)
	engine := appRouter.Setup(cfg.Server.Environment)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}
	slog.Info("Server exited")
}

// seedAdminUser creates the bootstrap admin account when no admin exists yet.
func seedAdminUser(adminRepo adapter.AdminUserRepository, passwordService adapter.PasswordService, cfg config.AdminConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := adminRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := passwordService.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := adminRepo.Create(ctx, entity.NewAdminUser(cfg.Username, hash)); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("Seeded bootstrap admin user", "username", cfg.Username)
	return nil
}
