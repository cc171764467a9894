package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PoseidonKRL/FINDASH/internal/application/adapter"
	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
	domainerror "github.com/PoseidonKRL/FINDASH/internal/domain/error"
)

// preferenceRepository implements the adapter.PreferenceRepository interface.
type preferenceRepository struct {
	entries entryStore
}

// NewPreferenceRepository creates a new preference repository instance.
func NewPreferenceRepository(db *gorm.DB) adapter.PreferenceRepository {
	return &preferenceRepository{
		entries: entryStore{db: db},
	}
}

// LoadTheme reads the persisted theme preference. Unknown stored values are
// rejected as corrupt so the caller falls back to the default theme.
func (r *preferenceRepository) LoadTheme(ctx context.Context) (entity.Theme, error) {
	value, err := r.entries.read(ctx, KeyTheme)
	if err != nil {
		return entity.DefaultTheme, err
	}

	theme, err := entity.ParseTheme(value)
	if err != nil {
		return entity.DefaultTheme, fmt.Errorf("%w: theme: %v", domainerror.ErrCorruptSavedState, err)
	}
	return theme, nil
}

// SaveTheme persists the theme preference.
func (r *preferenceRepository) SaveTheme(ctx context.Context, theme entity.Theme) error {
	return r.entries.write(ctx, KeyTheme, string(theme))
}
