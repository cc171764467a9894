// Package persistence implements repository interfaces over the local
// key-value storage (one SQLite-backed entries table, JSON documents).
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/model"
)

// Storage keys. Each collection is persisted independently under its own key.
const (
	KeyTransactions = "findash_transactions"
	KeyCategories   = "findash_categories"
	KeyGoals        = "findash_goals"
	KeyTheme        = "findash_theme"
)

// entryStore provides raw access to the entries table.
type entryStore struct {
	db *gorm.DB
}

// read returns the stored value for key, or domainerror.ErrNoSavedState when
// no entry exists.
func (s entryStore) read(ctx context.Context, key string) (string, error) {
	var entry model.EntryModel
	result := s.db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", domainerror.ErrNoSavedState
		}
		return "", result.Error
	}
	return entry.Value, nil
}

// write upserts the value for key.
func (s entryStore) write(ctx context.Context, key, value string) error {
	entry := model.EntryModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry)
	return result.Error
}
