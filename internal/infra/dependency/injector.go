// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/FINDASH/config"
	"github.com/PoseidonKRL/FINDASH/internal/application/store"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/category"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/goal"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/report"
	"github.com/PoseidonKRL/FINDASH/internal/application/usecase/transaction"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Store  *store.Store

	CreateTransaction    *transaction.CreateTransactionUseCase
	UpdateTransaction    *transaction.UpdateTransactionUseCase
	DeleteTransaction    *transaction.DeleteTransactionUseCase
	DuplicateTransaction *transaction.DuplicateTransactionUseCase
	ListTransactions     *transaction.ListTransactionsUseCase

	CreateCategory *category.CreateCategoryUseCase
	ListCategories *category.ListCategoriesUseCase

	CreateGoal *goal.CreateGoalUseCase
	UpdateGoal *goal.UpdateGoalUseCase
	DeleteGoal *goal.DeleteGoalUseCase
	ListGoals  *goal.ListGoalsUseCase

	MonthlySummary *report.MonthlySummaryUseCase
	TotalBalance   *report.TotalBalanceUseCase
	TrendSeries    *report.TrendSeriesUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	preferenceRepo := persistence.NewPreferenceRepository(db)

	// Create the entity store
	entityStore := store.NewStore(transactionRepo, categoryRepo, goalRepo, preferenceRepo, logger)

	return &Injector{
		Config: cfg,
		DB:     db,
		Store:  entityStore,

		CreateTransaction:    transaction.NewCreateTransactionUseCase(entityStore),
		UpdateTransaction:    transaction.NewUpdateTransactionUseCase(entityStore),
		DeleteTransaction:    transaction.NewDeleteTransactionUseCase(entityStore),
		DuplicateTransaction: transaction.NewDuplicateTransactionUseCase(entityStore),
		ListTransactions:     transaction.NewListTransactionsUseCase(entityStore),

		CreateCategory: category.NewCreateCategoryUseCase(entityStore),
		ListCategories: category.NewListCategoriesUseCase(entityStore),

		CreateGoal: goal.NewCreateGoalUseCase(entityStore),
		UpdateGoal: goal.NewUpdateGoalUseCase(entityStore),
		DeleteGoal: goal.NewDeleteGoalUseCase(entityStore),
		ListGoals:  goal.NewListGoalsUseCase(entityStore),

		MonthlySummary: report.NewMonthlySummaryUseCase(entityStore),
		TotalBalance:   report.NewTotalBalanceUseCase(entityStore),
		TrendSeries:    report.NewTrendSeriesUseCase(entityStore),
	}
}
