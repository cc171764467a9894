package goal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
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

func TestCreateGoal(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	uc := NewCreateGoalUseCase(entityStore)

	t.Run("creates a goal", func(t *testing.T) {
		output, err := uc.Execute(ctx, CreateGoalInput{
			Name:          "Viagem de Férias",
			Description:   "Economizar para dezembro",
			TargetAmount:  5000,
			CurrentAmount: 1200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != "Viagem de Férias" {
			t.Errorf("unexpected name %q", output.Goal.Name)
		}
	})

	tests := []struct {
		name     string
		input    CreateGoalInput
		expected error
	}{
		{
			name:     "empty name",
			input:    CreateGoalInput{Name: " ", TargetAmount: 100},
			expected: domainerror.ErrMissingGoalName,
		},
		{
			name:     "zero target",
			input:    CreateGoalInput{Name: "x", TargetAmount: 0},
			expected: domainerror.ErrInvalidTargetAmount,
		},
		{
			name:     "negative current",
			input:    CreateGoalInput{Name: "x", TargetAmount: 100, CurrentAmount: -1},
			expected: domainerror.ErrInvalidCurrentAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestUpdateGoal(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	createUC := NewCreateGoalUseCase(entityStore)
	updateUC := NewUpdateGoalUseCase(entityStore)

	created, err := createUC.Execute(ctx, CreateGoalInput{
		Name:         "Reduzir gastos",
		TargetAmount: 1500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("updates in place", func(t *testing.T) {
		output, err := updateUC.Execute(ctx, UpdateGoalInput{
			ID:            created.Goal.ID,
			Name:          "Reduzir gastos",
			TargetAmount:  1500,
			CurrentAmount: 1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.CurrentAmount != 1000 {
			t.Errorf("expected current 1000, got %v", output.Goal.CurrentAmount)
		}
		if output.Goal.ID != created.Goal.ID {
			t.Error("update must keep the goal id")
		}
	})

	t.Run("absent id changes nothing", func(t *testing.T) {
		_, err := updateUC.Execute(ctx, UpdateGoalInput{
			ID:           uuid.New(),
			Name:         "x",
			TargetAmount: 100,
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Fatalf("expected ErrGoalNotFound, got %v", err)
		}
		if len(entityStore.Goals()) != 1 {
			t.Error("failed update must not change the collection")
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	createUC := NewCreateGoalUseCase(entityStore)
	deleteUC := NewDeleteGoalUseCase(entityStore)

	created, err := createUC.Execute(ctx, CreateGoalInput{Name: "x", TargetAmount: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := deleteUC.Execute(ctx, DeleteGoalInput{ID: created.Goal.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entityStore.Goals()) != 0 {
		t.Error("expected the goal to be removed")
	}

	// Deleting again is a no-op.
	if err := deleteUC.Execute(ctx, DeleteGoalInput{ID: created.Goal.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListGoalsProgress(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	createUC := NewCreateGoalUseCase(entityStore)
	listUC := NewListGoalsUseCase(entityStore)

	if _, err := createUC.Execute(ctx, CreateGoalInput{
		Name:          "Overfunded",
		TargetAmount:  1000,
		CurrentAmount: 1200,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := listUC.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(output.Goals))
	}

	got := output.Goals[0]
	if got.Progress != 120 {
		t.Errorf("expected raw progress 120, got %v", got.Progress)
	}
	if got.BarWidth != 100 {
		t.Errorf("expected bar width 100, got %v", got.BarWidth)
	}
}
