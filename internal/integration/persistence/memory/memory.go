// Package memory provides in-memory repository implementations used by unit
// tests and as a fallback storage backend.
package memory

import (
	"context"
	"sync"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// TransactionRepository is an in-memory adapter.TransactionRepository.
type TransactionRepository struct {
	mu     sync.RWMutex
	stored []*entity.Transaction
	saved  bool

	// SaveErr, when set, is returned from Save. Tests use it to exercise
	// the best-effort persistence path.
	SaveErr error
	// LoadErr, when set, is returned from Load.
	LoadErr error
}

// NewTransactionRepository creates an empty in-memory transaction repository.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

// Load returns the stored collection, or domainerror.ErrNoSavedState when
// Save has never been called.
func (r *TransactionRepository) Load(_ context.Context) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if !r.saved {
		return nil, domainerror.ErrNoSavedState
	}

	out := make([]*entity.Transaction, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

// Save replaces the stored collection.
func (r *TransactionRepository) Save(_ context.Context, transactions []*entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.stored = make([]*entity.Transaction, len(transactions))
	copy(r.stored, transactions)
	r.saved = true
	return nil
}

// CategoryRepository is an in-memory adapter.CategoryRepository.
type CategoryRepository struct {
	mu     sync.RWMutex
	stored []*entity.Category
	saved  bool

	SaveErr error
	LoadErr error
}

// NewCategoryRepository creates an empty in-memory category repository.
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

// Load returns the stored collection, or domainerror.ErrNoSavedState when
// Save has never been called.
func (r *CategoryRepository) Load(_ context.Context) ([]*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if !r.saved {
		return nil, domainerror.ErrNoSavedState
	}

	out := make([]*entity.Category, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

// Save replaces the stored collection.
func (r *CategoryRepository) Save(_ context.Context, categories []*entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.stored = make([]*entity.Category, len(categories))
	copy(r.stored, categories)
	r.saved = true
	return nil
}

// GoalRepository is an in-memory adapter.GoalRepository.
type GoalRepository struct {
	mu     sync.RWMutex
	stored []*entity.Goal
	saved  bool

	SaveErr error
	LoadErr error
}

// NewGoalRepository creates an empty in-memory goal repository.
func NewGoalRepository() *GoalRepository {
	return &GoalRepository{}
}

// Load returns the stored collection, or domainerror.ErrNoSavedState when
// Save has never been called.
func (r *GoalRepository) Load(_ context.Context) ([]*entity.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	if !r.saved {
		return nil, domainerror.ErrNoSavedState
	}

	out := make([]*entity.Goal, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

// Save replaces the stored collection.
func (r *GoalRepository) Save(_ context.Context, goals []*entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.stored = make([]*entity.Goal, len(goals))
	copy(r.stored, goals)
	r.saved = true
	return nil
}

// PreferenceRepository is an in-memory adapter.PreferenceRepository.
type PreferenceRepository struct {
	mu    sync.RWMutex
	theme entity.Theme
	saved bool

	SaveErr error
	LoadErr error
}

// NewPreferenceRepository creates an empty in-memory preference repository.
func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{}
}

// LoadTheme returns the stored theme, or domainerror.ErrNoSavedState when
// SaveTheme has never been called.
func (r *PreferenceRepository) LoadTheme(_ context.Context) (entity.Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.LoadErr != nil {
		return entity.DefaultTheme, r.LoadErr
	}
	if !r.saved {
		return entity.DefaultTheme, domainerror.ErrNoSavedState
	}
	return r.theme, nil
}

// SaveTheme replaces the stored theme.
func (r *PreferenceRepository) SaveTheme(_ context.Context, theme entity.Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.SaveErr != nil {
		return r.SaveErr
	}

	r.theme = theme
	r.saved = true
	return nil
}
