// Package main is the entry point for the FINDASH dashboard core.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/PoseidonKRL/FINDASH/config"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/report"
	"github.com/PoseidonKRL/FINDASH/internal/infra/db"
	"github.com/PoseidonKRL/FINDASH/internal/infra/dependency"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	cfg := config.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting FINDASH",
		"environment", cfg.App.Environment,
		"storage_path", cfg.Storage.Path,
	)

	database, err := db.NewSQLiteConnection(&cfg.Storage)
	if err != nil {
		slog.Error("Failed to open local storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close local storage", "error", err)
		}
	}()

	if err := database.AutoMigrate(&model.EntryModel{}); err != nil {
		slog.Error("Failed to run storage migration", "error", err)
		os.Exit(1)
	}

	injector := dependency.NewInjector(cfg, database.DB(), logger)

	ctx := context.Background()
	injector.Store.Load(ctx)

	now := time.Now().UTC()
	summary, err := injector.MonthlySummary.Execute(ctx, report.MonthlySummaryInput{
		Year:  now.Year(),
		Month: now.Month(),
	})
	if err != nil {
		slog.Error("Failed to compute monthly summary", "error", err)
		os.Exit(1)
	}

	balance, err := injector.TotalBalance.Execute(ctx)
	if err != nil {
		slog.Error("Failed to compute total balance", "error", err)
		os.Exit(1)
	}

	slog.Info("FINDASH ready",
		"theme", injector.Store.Theme(),
		"transactions", len(injector.Store.Transactions()),
		"categories", len(injector.Store.Categories()),
		"goals", len(injector.Store.Goals()),
		"month_income", summary.Income.String(),
		"month_expense", summary.Expense.String(),
		"month_net", summary.Net.String(),
		"total_balance", balance.Balance.String(),
	)
}
