package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/testutil"
)

func TestThemeCommand(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{name: "file preferences", backend: "file"},
		{name: "sqlite preferences", backend: "database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnvWithOptions(t, testWordList, testutil.ConfigOptions{PreferencesBackend: tt.backend})

			steps := []struct {
				args []string
				want string
			}{
				{args: []string{"theme", "show"}, want: "light\n"},
				{args: []string{"theme", "toggle"}, want: "dark\n"},
				{args: []string{"theme", "show"}, want: "dark\n"},
				{args: []string{"theme", "toggle"}, want: "light\n"},
			}
			for _, step := range steps {
				got, err := env.run(t, "", step.args...)
				require.NoError(t, err)
				assert.Equal(t, step.want, got)
			}
		})
	}
}
