// Package store holds the application's entity collections in memory and is
// the single source of truth for reads and mutations. Every mutation persists
// the affected collection; persistence failures are logged and swallowed so
// the in-memory state stays authoritative.
package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/PoseidonKRL/FINDASH/internal/application/adapter"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// Store is the in-memory entity store backed by per-collection repositories.
type Store struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	goalRepo        adapter.GoalRepository
	preferenceRepo  adapter.PreferenceRepository
	logger          *slog.Logger

	transactions []*entity.Transaction
	categories   []*entity.Category
	goals        []*entity.Goal
	theme        entity.Theme
}

// NewStore creates a Store. Call Load before using it.
func NewStore(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	goalRepo adapter.GoalRepository,
	preferenceRepo adapter.PreferenceRepository,
	logger *slog.Logger,
) *Store {
	return &Store{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		goalRepo:        goalRepo,
		preferenceRepo:  preferenceRepo,
		logger:          logger,
		theme:           entity.DefaultTheme,
	}
}

// Load hydrates every collection from storage. A collection whose saved state
// is absent or cannot be decoded falls back to seed data, which is then
// persisted so the next start finds it. Load never fails.
func (s *Store) Load(ctx context.Context) {
	seed := newSeedData(time.Now().UTC())

	transactions, err := s.transactionRepo.Load(ctx)
	if err != nil {
		s.logStorageFallback("transactions", err)
		transactions = seed.Transactions
		s.persistTransactions(ctx, transactions)
	}
	s.transactions = transactions

	categories, err := s.categoryRepo.Load(ctx)
	if err != nil {
		s.logStorageFallback("categories", err)
		categories = seed.Categories
		s.persistCategories(ctx, categories)
	}
	s.categories = categories

	goals, err := s.goalRepo.Load(ctx)
	if err != nil {
		s.logStorageFallback("goals", err)
		goals = seed.Goals
		s.persistGoals(ctx, goals)
	}
	s.goals = goals

	theme, err := s.preferenceRepo.LoadTheme(ctx)
	if err != nil {
		s.logStorageFallback("theme", err)
		theme = entity.DefaultTheme
	}
	s.theme = theme
}

func (s *Store) logStorageFallback(collection string, err error) {
	if errors.Is(err, domainerror.ErrNoSavedState) {
		s.logger.Info("no saved state, seeding defaults", "collection", collection)
		return
	}
	s.logger.Warn("failed to load saved state, falling back to defaults",
		"collection", collection,
		"error", err,
	)
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []*entity.Transaction {
	out := make([]*entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []*entity.Category {
	out := make([]*entity.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []*entity.Goal {
	out := make([]*entity.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Theme returns the selected theme.
func (s *Store) Theme() entity.Theme {
	return s.theme
}

// SetTheme selects a theme and persists the preference.
func (s *Store) SetTheme(ctx context.Context, theme entity.Theme) {
	s.theme = theme
	if err := s.preferenceRepo.SaveTheme(ctx, theme); err != nil {
		s.logger.Warn("failed to persist theme", "error", err)
	}
}

// FindTransaction returns the transaction with the given id, or
// domainerror.ErrTransactionNotFound.
func (s *Store) FindTransaction(id uuid.UUID) (*entity.Transaction, error) {
	for _, transaction := range s.transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

// FindCategory returns the category with the given id. Dangling references
// are tolerated: the second return value reports whether it was found.
func (s *Store) FindCategory(id uuid.UUID) (*entity.Category, bool) {
	for _, category := range s.categories {
		if category.ID == id {
			return category, true
		}
	}
	return nil, false
}

// FindGoal returns the goal with the given id, or domainerror.ErrGoalNotFound.
func (s *Store) FindGoal(id uuid.UUID) (*entity.Goal, error) {
	for _, goal := range s.goals {
		if goal.ID == id {
			return goal, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

// AddTransaction prepends the transaction and persists the collection.
func (s *Store) AddTransaction(ctx context.Context, transaction *entity.Transaction) {
	s.transactions = append([]*entity.Transaction{transaction}, s.transactions...)
	s.persistTransactions(ctx, s.transactions)
}

// UpdateTransaction replaces the transaction with the same id. When the id is
// not present the collection is left unchanged and
// domainerror.ErrTransactionNotFound is returned.
func (s *Store) UpdateTransaction(ctx context.Context, transaction *entity.Transaction) error {
	for i, existing := range s.transactions {
		if existing.ID == transaction.ID {
			s.transactions[i] = transaction
			s.persistTransactions(ctx, s.transactions)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent id is a no-op.
func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) {
	filtered := make([]*entity.Transaction, 0, len(s.transactions))
	removed := false
	for _, transaction := range s.transactions {
		if transaction.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, transaction)
	}
	if !removed {
		return
	}
	s.transactions = filtered
	s.persistTransactions(ctx, s.transactions)
}

// AddCategory appends the category and persists the collection. Categories
// are append-only: there is no update or delete.
func (s *Store) AddCategory(ctx context.Context, category *entity.Category) {
	s.categories = append(s.categories, category)
	s.persistCategories(ctx, s.categories)
}

// AddGoal appends the goal and persists the collection.
func (s *Store) AddGoal(ctx context.Context, goal *entity.Goal) {
	s.goals = append(s.goals, goal)
	s.persistGoals(ctx, s.goals)
}

// UpdateGoal replaces the goal with the same id. When the id is not present
// the collection is left unchanged and domainerror.ErrGoalNotFound is
// returned.
func (s *Store) UpdateGoal(ctx context.Context, goal *entity.Goal) error {
	for i, existing := range s.goals {
		if existing.ID == goal.ID {
			s.goals[i] = goal
			s.persistGoals(ctx, s.goals)
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

// DeleteGoal removes the goal with the given id. Deleting an absent id is a
// no-op.
func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) {
	filtered := make([]*entity.Goal, 0, len(s.goals))
	removed := false
	for _, goal := range s.goals {
		if goal.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, goal)
	}
	if !removed {
		return
	}
	s.goals = filtered
	s.persistGoals(ctx, s.goals)
}

func (s *Store) persistTransactions(ctx context.Context, transactions []*entity.Transaction) {
	if err := s.transactionRepo.Save(ctx, transactions); err != nil {
		s.logger.Warn("failed to persist transactions", "error", err)
	}
}

func (s *Store) persistCategories(ctx context.Context, categories []*entity.Category) {
	if err := s.categoryRepo.Save(ctx, categories); err != nil {
		s.logger.Warn("failed to persist categories", "error", err)
	}
}

func (s *Store) persistGoals(ctx context.Context, goals []*entity.Goal) {
	if err := s.goalRepo.Save(ctx, goals); err != nil {
		s.logger.Warn("failed to persist goals", "error", err)
	}
}
