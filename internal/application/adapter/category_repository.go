package adapter

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// CategoryRepository defines the persistence port for the category collection.
type CategoryRepository interface {
	// Load reads the persisted category collection. It returns
	// domainerror.ErrNoSavedState when nothing has been persisted yet and
	// wraps domainerror.ErrCorruptSavedState when the data cannot be decoded.
	Load(ctx context.Context) ([]*entity.Category, error)

	// Save persists the full category collection, replacing any previous state.
	Save(ctx context.Context, categories []*entity.Category) error
}
