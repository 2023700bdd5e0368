package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/navigation"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		line    string
		want    input
		wantErr error
	}{
		{line: "\n", want: input{command: navigation.Command{Intent: navigation.IntentAdvance}}},
		{line: "n", want: input{command: navigation.Command{Intent: navigation.IntentAdvance}}},
		{line: "NEXT", want: input{command: navigation.Command{Intent: navigation.IntentAdvance}}},
		{line: "p", want: input{command: navigation.Command{Intent: navigation.IntentRetreat}}},
		{line: "r", want: input{command: navigation.Command{Intent: navigation.IntentRandomJump}}},
		{line: "/Hello\n", want: input{command: navigation.Command{Intent: navigation.IntentSearch, Term: "Hello"}}},
		{line: "s ice cream", want: input{command: navigation.Command{Intent: navigation.IntentSearch, Term: "ice cream"}}},
		{line: "search", want: input{command: navigation.Command{Intent: navigation.IntentSearch}}},
		{line: "us", want: input{command: navigation.Command{Intent: navigation.IntentPronounce, Accent: audio.AccentPrimary}}},
		{line: "UK", want: input{command: navigation.Command{Intent: navigation.IntentPronounce, Accent: audio.AccentAlternate}}},
		{line: "t", want: input{command: navigation.Command{Intent: navigation.IntentToggleTheme}}},
		{line: "settings", want: input{command: navigation.Command{Intent: navigation.IntentOpenSettings}}},
		{line: "close", want: input{command: navigation.Command{Intent: navigation.IntentCloseSettings}}},
		{line: "?", want: input{help: true}},
		{line: "q", want: input{quit: true}},
		{line: "jump 3", wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseInput(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
