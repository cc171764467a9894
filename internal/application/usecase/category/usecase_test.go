package category

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

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

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	uc := NewCreateCategoryUseCase(entityStore)

	t.Run("creates with known icon", func(t *testing.T) {
		output, err := uc.Execute(ctx, CreateCategoryInput{
			Name: "Mercado",
			Icon: "ShoppingCartIcon",
			Type: entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Icon != entity.IconShoppingCart {
			t.Errorf("expected ShoppingCartIcon, got %q", output.Category.Icon)
		}
	})

	t.Run("unknown icon normalizes to default", func(t *testing.T) {
		output, err := uc.Execute(ctx, CreateCategoryInput{
			Name: "Outros",
			Icon: "NoSuchIcon",
			Type: entity.CategoryTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Category.Icon != entity.DefaultCategoryIcon {
			t.Errorf("expected default icon, got %q", output.Category.Icon)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			Name: "   ",
			Icon: "WalletIcon",
			Type: entity.CategoryTypeExpense,
		})
		if !errors.Is(err, domainerror.ErrMissingCategoryName) {
			t.Errorf("expected ErrMissingCategoryName, got %v", err)
		}
	})

	t.Run("invalid type is rejected", func(t *testing.T) {
		_, err := uc.Execute(ctx, CreateCategoryInput{
			Name: "Outros",
			Icon: "WalletIcon",
			Type: "transfer",
		})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Errorf("expected ErrInvalidCategoryType, got %v", err)
		}
	})
}

func TestListCategories(t *testing.T) {
	ctx := context.Background()
	entityStore := newEmptyStore(t)
	createUC := NewCreateCategoryUseCase(entityStore)
	listUC := NewListCategoriesUseCase(entityStore)

	seed := []CreateCategoryInput{
		{Name: "Salário", Icon: "BriefcaseIcon", Type: entity.CategoryTypeIncome},
		{Name: "Mercado", Icon: "ShoppingCartIcon", Type: entity.CategoryTypeExpense},
		{Name: "Contas", Icon: "CreditCardIcon", Type: entity.CategoryTypeExpense},
	}
	for _, input := range seed {
		if _, err := createUC.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("lists all in insertion order", func(t *testing.T) {
		output, err := listUC.Execute(ctx, ListCategoriesInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(output.Categories))
		}
		if output.Categories[0].Name != "Salário" {
			t.Errorf("expected insertion order, got %q first", output.Categories[0].Name)
		}
	})

	t.Run("filters by transaction type", func(t *testing.T) {
		expense := entity.TransactionTypeExpense
		output, err := listUC.Execute(ctx, ListCategoriesInput{ForType: &expense})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Categories) != 2 {
			t.Fatalf("expected 2 expense categories, got %d", len(output.Categories))
		}
		for _, category := range output.Categories {
			if category.Type != entity.CategoryTypeExpense {
				t.Errorf("expected expense category, got %q", category.Type)
			}
		}
	})
}
