package entity

import "fmt"

// Theme identifies one of the visual themes. The set is closed and the
// persisted preference is validated at load time; unknown values fall back
// to DefaultTheme.
type Theme string

const (
	ThemeDark      Theme = "dark"
	ThemeNeon      Theme = "neon"
	ThemeMinimal   Theme = "minimal"
	ThemeBrutalist Theme = "brutalist"
	ThemeGlass     Theme = "glass"
	ThemeCyberpunk Theme = "cyberpunk"
)

// DefaultTheme is used when no preference is stored or the stored value is
// not a known theme.
const DefaultTheme = ThemeDark

var knownThemes = map[Theme]struct{}{
	ThemeDark:      {},
	ThemeNeon:      {},
	ThemeMinimal:   {},
	ThemeBrutalist: {},
	ThemeGlass:     {},
	ThemeCyberpunk: {},
}

// Valid reports whether the theme is a member of the closed theme set.
func (t Theme) Valid() bool {
	_, ok := knownThemes[t]
	return ok
}

// ParseTheme validates a stored theme identifier.
func ParseTheme(value string) (Theme, error) {
	theme := Theme(value)
	if !theme.Valid() {
		return DefaultTheme, fmt.Errorf("unknown theme %q", value)
	}
	return theme, nil
}
