// Package main seeds the database with a starter menu and the bootstrap
// admin account. Safe to run repeatedly: existing items are left alone.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/restobill/backend/config"
	"github.com/restobill/backend/internal/domain/entity"
	"github.com/restobill/backend/internal/infra/db"
	"github.com/restobill/backend/internal/integration/adapters"
	"github.com/restobill/backend/internal/integration/persistence"
	"github.com/restobill/backend/internal/integration/persistence/model"
)

type seedItem struct {
	name     string
	price    string
	category string
}

var starterMenu = []seedItem{
	{"Idly", "15.00", "breakfast"},
	{"Vada", "20.00", "breakfast"},
	{"Poori", "30.00", "breakfast"},
	{"Dosai", "40.00", "breakfast"},
}

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	menuRepo := persistence.NewMenuRepository(database.DB())
	existing, err := menuRepo.FindAll(ctx, false)
	if err != nil {
		slog.Error("Failed to list menu items", "error", err)
		os.Exit(1)
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[item.Name] = true
	}

	for _, seed := range starterMenu {
		if known[seed.name] {
			continue
		}
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			slog.Error("Invalid seed price", "item", seed.name, "error", err)
			os.Exit(1)
		}
		item := entity.NewMenuItem(seed.name, price, "", seed.category, true)
		if err := menuRepo.Create(ctx, item); err != nil {
			slog.Error("Failed to seed menu item", "item", seed.name, "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded menu item", "name", seed.name, "price", seed.price)
	}

	adminRepo := persistence.NewAdminUserRepository(database.DB())
	count, err := adminRepo.Count(ctx)
	if err != nil {
		slog.Error("Failed to count admin users", "error", err)
		os.Exit(1)
	}
	if count == 0 {
		passwordService := adapters.NewPasswordService()
		hash, err := passwordService.HashPassword(cfg.Admin.Password)
		if err != nil {
			slog.Error("Failed to hash admin password", "error", err)
			os.Exit(1)
		}
		if err := adminRepo.Create(ctx, entity.NewAdminUser(cfg.Admin.Username, hash)); err != nil {
			slog.Error("Failed to create admin user", "error", err)
			os.Exit(1)
		}
		slog.Info("Seeded admin user", "username", cfg.Admin.Username)
	}

	slog.Info("Seeding complete")
}
