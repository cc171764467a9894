package adapter

import (
	"context"

	"github.com/PoseidonKRL/FINDASH/internal/domain/entity"
)

// PreferenceRepository defines the persistence port for user preferences.
// Currently that is the selected visual theme.
type PreferenceRepository interface {
	// LoadTheme reads the persisted theme preference. It returns
	// domainerror.ErrNoSavedState when no preference has been stored.
	LoadTheme(ctx context.Context) (entity.Theme, error)

	// SaveTheme persists the theme preference.
	SaveTheme(ctx context.Context, theme entity.Theme) error
}
