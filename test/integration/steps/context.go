// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"io"
	"log/slog"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/config"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/goal"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/report"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/transaction"
	"github.com/PoseidonKRL/FINDASH/internal/infra/dependency"
	"github.com/PoseidonKRL/FINDASH/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	db       *mock.Db
	injector *dependency.Injector

	// References captured while building scenario state
	categoryIDs map[string]uuid.UUID
	lastTxID    uuid.UUID
	lastGoalID  uuid.UUID

	// Results of the "when" step
	lastErr     error
	lastCreated *transaction.CreateTransactionOutput
	lastGoals   *goal.ListGoalsOutput
	lastSummary *report.MonthlySummaryOutput
	lastBalance *report.TotalBalanceOutput
	lastTrend   *report.TrendSeriesOutput
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db, err := mock.NewDb()
		if err != nil {
			return ctx, err
		}

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		injector := dependency.NewInjector(config.Load(), db.DbConn, logger)

		tc := &TestContext{
			db:          db,
			injector:    injector,
			categoryIDs: make(map[string]uuid.UUID),
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if tc := GetTestContext(ctx); tc != nil && tc.db != nil {
			_ = tc.db.Close()
		}
		return ctx, err
	})

	registerStoreSteps(ctx)
	registerTransactionSteps(ctx)
	registerGoalSteps(ctx)
	registerReportSteps(ctx)
}

// rebuildInjector wires a fresh dependency graph over the scenario's
// database, dropping all in-memory state.
func rebuildInjector(tc *TestContext) *dependency.Injector {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return dependency.NewInjector(config.Load(), tc.db.DbConn, logger)
}
