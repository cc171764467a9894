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

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	entries entryStore
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		entries: entryStore{db: db},
	}
}

// Load reads the persisted goal collection.
func (r *goalRepository) Load(ctx context.Context) ([]*entity.Goal, error) {
	value, err := r.entries.read(ctx, KeyGoals)
	if err != nil {
		return nil, err
	}

	var records []*model.GoalRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("%w: goals: %v", domainerror.ErrCorruptSavedState, err)
	}

	goals := make([]*entity.Goal, len(records))
	for i, record := range records {
		goals[i] = record.ToEntity()
	}
	return goals, nil
}

// Save persists the full goal collection.
func (r *goalRepository) Save(ctx context.Context, goals []*entity.Goal) error {
	records := make([]*model.GoalRecord, len(goals))
	for i, goal := range goals {
		records[i] = model.GoalFromEntity(goal)
	}

	value, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode goals: %w", err)
	}
	return r.entries.write(ctx, KeyGoals, string(value))
}
