package entity

import "testing"

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expected  Theme
		expectErr bool
	}{
		{name: "dark", value: "dark", expected: ThemeDark},
		{name: "neon", value: "neon", expected: ThemeNeon},
		{name: "minimal", value: "minimal", expected: ThemeMinimal},
		{name: "brutalist", value: "brutalist", expected: ThemeBrutalist},
		{name: "glass", value: "glass", expected: ThemeGlass},
		{name: "cyberpunk", value: "cyberpunk", expected: ThemeCyberpunk},
		{name: "unknown falls back to default", value: "solarized", expected: DefaultTheme, expectErr: true},
		{name: "empty falls back to default", value: "", expected: DefaultTheme, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ParseTheme(tt.value)
			if tt.expectErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if theme != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, theme)
			}
		})
	}
}
