package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence"
)

func registerStoreSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^an empty store$`, anEmptyStore)
	ctx.Step(`^a store loaded with no saved state$`, aStoreWithNoSavedState)
	ctx.Step(`^the store is reloaded as if the app restarted$`, theStoreIsReloaded)
	ctx.Step(`^the store holds (\d+) transactions?$`, theStoreHoldsTransactions)
	ctx.Step(`^the store holds (\d+) categories$`, theStoreHoldsCategories)
	ctx.Step(`^the store holds (\d+) goals?$`, theStoreHoldsGoals)
	ctx.Step(`^the selected theme is "([^"]*)"$`, theSelectedThemeIs)
}

// anEmptyStore primes storage with empty collections before hydrating, so
// the seed fallback does not fire.
func anEmptyStore(ctx context.Context) error {
	tc := GetTestContext(ctx)
	db := tc.db.DbConn

	if err := persistence.NewTransactionRepository(db).Save(ctx, nil); err != nil {
		return err
	}
	if err := persistence.NewCategoryRepository(db).Save(ctx, nil); err != nil {
		return err
	}
	if err := persistence.NewGoalRepository(db).Save(ctx, nil); err != nil {
		return err
	}

	tc.injector.Store.Load(ctx)
	return nil
}

// aStoreWithNoSavedState hydrates against a blank database, which installs
// the seed data.
func aStoreWithNoSavedState(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.injector.Store.Load(ctx)
	return nil
}

// theStoreIsReloaded rebuilds the store over the same database and hydrates
// it again, simulating an app restart.
func theStoreIsReloaded(ctx context.Context) error {
	tc := GetTestContext(ctx)
	tc.injector = rebuildInjector(tc)
	tc.injector.Store.Load(ctx)
	return nil
}

func theStoreHoldsTransactions(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if got := len(tc.injector.Store.Transactions()); got != count {
		return fmt.Errorf("expected %d transactions, got %d", count, got)
	}
	return nil
}

func theStoreHoldsCategories(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if got := len(tc.injector.Store.Categories()); got != count {
		return fmt.Errorf("expected %d categories, got %d", count, got)
	}
	return nil
}

func theStoreHoldsGoals(ctx context.Context, count int) error {
	tc := GetTestContext(ctx)
	if got := len(tc.injector.Store.Goals()); got != count {
		return fmt.Errorf("expected %d goals, got %d", count, got)
	}
	return nil
}

func theSelectedThemeIs(ctx context.Context, theme string) error {
	tc := GetTestContext(ctx)
	if got := string(tc.injector.Store.Theme()); got != theme {
		return fmt.Errorf("expected theme %q, got %q", theme, got)
	}
	return nil
}
