package entity

import "testing"

func TestParseCategoryIcon(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected CategoryIcon
	}{
		{name: "known icon", key: "BriefcaseIcon", expected: IconBriefcase},
		{name: "another known icon", key: "ShoppingCartIcon", expected: IconShoppingCart},
		{name: "unknown icon normalizes to default", key: "RocketIcon", expected: DefaultCategoryIcon},
		{name: "empty key normalizes to default", key: "", expected: DefaultCategoryIcon},
		{name: "case matters", key: "briefcaseicon", expected: DefaultCategoryIcon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCategoryIcon(tt.key); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
