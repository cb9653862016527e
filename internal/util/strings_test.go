package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinOrDefault(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{name: "nil slice returns default", items: nil, want: "(unbound)"},
		{name: "empty slice returns default", items: []string{}, want: "(unbound)"},
		{name: "single item returns item", items: []string{"q"}, want: "q"},
		{name: "multiple items joined with comma", items: []string{"q", "ctrl+c"}, want: "q, ctrl+c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinOrDefault(tt.items, "(unbound)"))
		})
	}
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "cores", Pluralize(0, "core", "cores"))
	assert.Equal(t, "core", Pluralize(1, "core", "cores"))
	assert.Equal(t, "cores", Pluralize(8, "core", "cores"))
	assert.Equal(t, "issues", Pluralize(-1, "issue", "issues"))
}
