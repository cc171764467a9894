package report

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/memory"
)

func newEmptyStore(t *testing.T) *store.Store {
	t.Helper()

	ctx := context.Background()
	transactionRepo := memory.NewTransactionRepository()
	categoryRepo := memory.NewCategoryRepository()
	goalRepo := memory.NewGoalRepository()
	preferenceRepo := memory.NewPreferenceRepository()

	for _, err := range []error{
		transactionRepo.Save(ctx, nil),
		categoryRepo.Save(ctx, nil),
		goalRepo.Save(ctx, nil),
		preferenceRepo.SaveTheme(ctx, entity.DefaultTheme),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	entityStore := store.NewStore(transactionRepo, categoryRepo, goalRepo, preferenceRepo, logger)
	entityStore.Load(ctx)
	return entityStore
}

func addTransaction(t *testing.T, s *store.Store, transactionType entity.TransactionType, amount int64, date time.Time) {
	t.Helper()
	s.AddTransaction(context.Background(), entity.NewTransaction(
		uuid.New(),
		transactionType,
		decimal.NewFromInt(amount),
		faker.Word(),
		date,
		"",
		nil,
		nil,
	))
}

func TestMonthlySummary(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	uc := NewMonthlySummaryUseCase(entityStore)

	september := func(day int) time.Time {
		return time.Date(2026, time.September, day, 0, 0, 0, 0, time.UTC)
	}

	addTransaction(t, entityStore, entity.TransactionTypeIncome, 3200, september(1))
	addTransaction(t, entityStore, entity.TransactionTypeExpense, 450, september(2))
	addTransaction(t, entityStore, entity.TransactionTypeExpense, 550, september(5))
	addTransaction(t, entityStore, entity.TransactionTypeIncome, 500, september(15))

	output, err := uc.Execute(ctx, MonthlySummaryInput{Year: 2026, Month: time.September})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Income.Equal(decimal.NewFromInt(3700)) {
		t.Errorf("expected income 3700, got %s", output.Income)
	}
	if !output.Expense.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected expense 1000, got %s", output.Expense)
	}
	if !output.Net.Equal(decimal.NewFromInt(2700)) {
		t.Errorf("expected net 2700, got %s", output.Net)
	}

	t.Run("out-of-month transactions change nothing", func(t *testing.T) {
		addTransaction(t, entityStore, entity.TransactionTypeExpense, 9999,
			time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC))
		addTransaction(t, entityStore, entity.TransactionTypeIncome, 8888,
			time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC))

		again, err := uc.Execute(ctx, MonthlySummaryInput{Year: 2026, Month: time.September})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !again.Income.Equal(output.Income) || !again.Expense.Equal(output.Expense) {
			t.Error("out-of-month transactions must not change the monthly summary")
		}
	})
}

func TestTotalBalance(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	uc := NewTotalBalanceUseCase(entityStore)

	// Random transactions across random months; the balance must equal the
	// signed sum regardless of date.
	rng := rand.New(rand.NewSource(42))
	expected := decimal.Zero
	for i := 0; i < 50; i++ {
		amount := int64(rng.Intn(900) + 100)
		date := time.Date(2024+rng.Intn(3), time.Month(rng.Intn(12)+1), rng.Intn(28)+1, 0, 0, 0, 0, time.UTC)

		transactionType := entity.TransactionTypeIncome
		signed := decimal.NewFromInt(amount)
		if rng.Intn(2) == 0 {
			transactionType = entity.TransactionTypeExpense
			signed = signed.Neg()
		}

		addTransaction(t, entityStore, transactionType, amount, date)
		expected = expected.Add(signed)
	}

	output, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.Balance.Equal(expected) {
		t.Errorf("expected balance %s, got %s", expected, output.Balance)
	}

	// Recomputing without mutations yields the same value.
	again, err := uc.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Balance.Equal(output.Balance) {
		t.Error("total balance must be stable across recomputations")
	}
}

func TestTrendSeries(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	uc := NewTrendSeriesUseCase(entityStore)

	reference := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)

	addTransaction(t, entityStore, entity.TransactionTypeIncome, 3200, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))
	addTransaction(t, entityStore, entity.TransactionTypeExpense, 550, time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC))
	addTransaction(t, entityStore, entity.TransactionTypeExpense, 300, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC))
	// Outside the trailing window.
	addTransaction(t, entityStore, entity.TransactionTypeIncome, 7777, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))

	output, err := uc.Execute(ctx, TrendSeriesInput{Reference: reference})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(output.Points) != DefaultTrendMonths {
		t.Fatalf("expected %d points, got %d", DefaultTrendMonths, len(output.Points))
	}

	first := output.Points[0]
	last := output.Points[len(output.Points)-1]
	if first.Month != time.April || first.Year != 2026 {
		t.Errorf("expected the series to start at Abr 2026, got %s %d", first.Month, first.Year)
	}
	if last.Month != time.September || last.Year != 2026 {
		t.Errorf("expected the series to end at Set 2026, got %s %d", last.Month, last.Year)
	}

	if first.Label != "Abr 2026" {
		t.Errorf("expected label 'Abr 2026', got %q", first.Label)
	}
	if last.Label != "Set 2026" {
		t.Errorf("expected label 'Set 2026', got %q", last.Label)
	}

	if !last.Income.Equal(decimal.NewFromInt(3200)) {
		t.Errorf("expected September income 3200, got %s", last.Income)
	}
	if !last.Expense.Equal(decimal.NewFromInt(550)) {
		t.Errorf("expected September expense 550, got %s", last.Expense)
	}

	july := output.Points[3]
	if !july.Expense.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected July expense 300, got %s", july.Expense)
	}

	// Months without transactions are zero-filled, and the February income
	// outside the window appears nowhere.
	totalIncome := decimal.Zero
	for _, point := range output.Points {
		totalIncome = totalIncome.Add(point.Income)
	}
	if !totalIncome.Equal(decimal.NewFromInt(3200)) {
		t.Errorf("expected window income 3200, got %s", totalIncome)
	}

	may := output.Points[1]
	if !may.Income.IsZero() || !may.Expense.IsZero() {
		t.Error("expected empty months to be zero-filled")
	}

	t.Run("custom window length", func(t *testing.T) {
		output, err := uc.Execute(ctx, TrendSeriesInput{Reference: reference, Months: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(output.Points))
		}
		if output.Points[0].Label != "Jul 2026" {
			t.Errorf("expected 'Jul 2026' first, got %q", output.Points[0].Label)
		}
	})

	t.Run("year boundary labels", func(t *testing.T) {
		boundaryStore := newEmptyStore(t)
		boundaryUC := NewTrendSeriesUseCase(boundaryStore)

		output, err := boundaryUC.Execute(ctx, TrendSeriesInput{
			Reference: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Points[0].Label != "Set 2025" {
			t.Errorf("expected 'Set 2025' first, got %q", output.Points[0].Label)
		}
		if output.Points[5].Label != "Fev 2026" {
			t.Errorf("expected 'Fev 2026' last, got %q", output.Points[5].Label)
		}
	})
}
