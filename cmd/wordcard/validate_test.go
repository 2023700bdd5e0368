package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

func TestValidateEntries(t *testing.T) {
	entries := []wordlist.Entry{
		{HeadTerm: "Apple", Definition: "苹果"},
		{HeadTerm: "apple", Definition: "苹果"},
		{HeadTerm: "", Definition: "?"},
		{HeadTerm: "banana"},
	}

	got := validateEntries(entries)
	assert.Equal(t, ValidationResult{
		Total:              4,
		MissingHeadTerms:   []int{3},
		DuplicateHeadTerms: []string{"apple"},
		MissingDefinitions: []string{"banana"},
	}, got)
	assert.True(t, got.HasErrors())
}

func TestDisplayValidationResults(t *testing.T) {
	tests := []struct {
		name   string
		result ValidationResult
		want   []string
	}{
		{
			name:   "no problems",
			result: ValidationResult{Total: 2},
			want:   []string{"Words: 2", "✓ All validations passed!"},
		},
		{
			name:   "missing head terms",
			result: ValidationResult{Total: 3, MissingHeadTerms: []int{2}},
			want:   []string{"✗ Words without a head term (1):\n  - #2\n"},
		},
		{
			name:   "warnings",
			result: ValidationResult{Total: 3, DuplicateHeadTerms: []string{"apple"}, MissingDefinitions: []string{"banana"}},
			want:   []string{"Duplicate head terms, only the first is found by search (1):\n  - apple\n", "Words without a definition (1):\n  - banana\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			displayValidationResults(&buf, tt.result)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestValidateCommand(t *testing.T) {
	tests := []struct {
		name         string
		wordList     string
		wantContains string
		wantErr      bool
	}{
		{
			name:         "valid word list",
			wordList:     testWordList,
			wantContains: "✓ All validations passed!",
		},
		{
			name:         "word without head term",
			wordList:     `{"headWord":"apple","def":"苹果"}{"def":"?"}`,
			wantContains: "Words without a head term (1)",
			wantErr:      true,
		},
		{
			name:         "broken object",
			wordList:     `{"headWord":"apple"}{"headWord":"banana",}`,
			wantContains: "✗ Word object #2 is not valid JSON",
			wantErr:      true,
		},
		{
			name:         "no objects",
			wordList:     "[]",
			wantContains: "✗ No word objects found",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.wordList)

			got, err := env.run(t, "", "validate")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, got, tt.wantContains)
		})
	}
}
