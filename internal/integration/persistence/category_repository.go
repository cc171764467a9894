package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/FINDASH/internal/application/adapter"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
	"github.com/PoseidonKRL/FINDASH/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	entries entryStore
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		entries: entryStore{db: db},
	}
}

// Load reads the persisted category collection.
func (r *categoryRepository) Load(ctx context.Context) ([]*entity.Category, error) {
	value, err := r.entries.read(ctx, KeyCategories)
	if err != nil {
		return nil, err
	}

	var records []*model.CategoryRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("%w: categories: %v", domainerror.ErrCorruptSavedState, err)
	}

	categories := make([]*entity.Category, len(records))
	for i, record := range records {
		categories[i] = record.ToEntity()
	}
	return categories, nil
}

// Save persists the full category collection.
func (r *categoryRepository) Save(ctx context.Context, categories []*entity.Category) error {
	records := make([]*model.CategoryRecord, len(categories))
	for i, category := range categories {
		records[i] = model.CategoryFromEntity(category)
	}

	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	return r.entries.write(ctx, KeyCategories, string(value))
}
