package adapter

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// GoalRepository defines the persistence port for the goal collection.
type GoalRepository interface {
	// Load reads the persisted goal collection. It returns
	// domainerror.ErrNoSavedState when nothing has been persisted yet and
	// wraps domainerror.ErrCorruptSavedState when the data cannot be decoded.
	Load(ctx context.Context) ([]*entity.Goal, error)

	// Save persists the full goal collection, replacing any previous state.
	Save(ctx context.Context, goals []*entity.Goal) error
}
