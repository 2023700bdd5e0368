package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateWithFallback(t *testing.T) {
	tests := []struct {
		name         string
		templatePath func(t *testing.T) string

		wantTemplateName     string
		wantTemplateContents string
	}{
		{
			name: "uses filesystem template when available",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "custom.md.go.tmpl")
				content := `Filesystem Template: {{ join .Words ", " }}`
				require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))
				return templatePath
			},
			wantTemplateName:     "custom.md.go.tmpl",
			wantTemplateContents: "Filesystem Template: apple, banana",
		},
		{
			name: "uses embedded template when file doesn't exist",
			templatePath: func(t *testing.T) string {
				return "/non/existent/invalid.md.go.tmpl"
			},
			wantTemplateName:     "fallback.md.go.tmpl",
			wantTemplateContents: "Fallback: apple",
		},
		{
			name: "uses embedded template when path is empty",
			templatePath: func(t *testing.T) string {
				return ""
			},
			wantTemplateName:     "fallback.md.go.tmpl",
			wantTemplateContents: "Fallback: apple",
		},
		{
			name: "uses embedded template when filesystem template is invalid",
			templatePath: func(t *testing.T) string {
				templatePath := filepath.Join(t.TempDir(), "invalid.md.go.tmpl")
				require.NoError(t, os.WriteFile(templatePath, []byte(`Bad: {{ .Unclosed`), 0644))
				return templatePath
			},
			wantTemplateName:     "fallback.md.go.tmpl",
			wantTemplateContents: "Fallback: apple",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := parseTemplateWithFallback(tt.templatePath(t), "fallback.md.go.tmpl", `Fallback: {{ index .Words 0 }}`)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemplateName, tmpl.Name())

			var buf bytes.Buffer
			require.NoError(t, tmpl.Execute(&buf, struct{ Words []string }{Words: []string{"apple", "banana"}}))
			assert.Equal(t, tt.wantTemplateContents, buf.String())
		})
	}
}

func TestParseTemplateWithFallback_InvalidEmbeddedTemplate(t *testing.T) {
	_, err := parseTemplateWithFallback("", "broken.md.go.tmpl", `{{ .Unclosed`)
	assert.Error(t, err)
}

func TestWriteDeck(t *testing.T) {
	data := DeckTemplate{
		Title:           "CET4",
		Source:          "CET4luan_2.json",
		NoPhrasesText:   "No related phrases",
		NoSentencesText: "No example sentences",
		Cards: []DeckCard{
			{
				Number:       1,
				HeadTerm:     "apple",
				Level:        "4级",
				Phonetic:     "/ˈæpl/",
				PartOfSpeech: "n",
				Definition:   "苹果",
				Phrases: []DeckPair{
					{Text: "apple pie", Translation: "苹果派"},
				},
			},
			{
				Number:            2,
				HeadTerm:          "banana",
				Level:             "4级",
				AlternatePhonetic: "/bəˈnɑːnə/",
				Sentences: []DeckPair{
					{Text: "He ate a banana.", Translation: "他吃了一根香蕉。"},
				},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, "", data))
	got := buf.String()

	for _, want := range []string{
		"# CET4\n",
		"Source: CET4luan_2.json\n",
		"## 1. apple\n",
		"- Level: 4级\n- US: /ˈæpl/\n- Part of speech: n\n- Definition: 苹果\n",
		"- apple pie: 苹果派\n",
		"## 2. banana\n",
		"- Level: 4级\n- UK: /bəˈnɑːnə/\n",
		"- He ate a banana.\n  - 他吃了一根香蕉。\n",
		"No related phrases\n",
		"No example sentences\n",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "- UK: \n")
}

func TestWriteDeck_CustomTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "deck.md")
	content := "{{ range .Cards }}{{ .Number }}:{{ .HeadTerm }}\n{{ end }}"
	require.NoError(t, os.WriteFile(templatePath, []byte(content), 0644))

	var buf bytes.Buffer
	require.NoError(t, WriteDeck(&buf, templatePath, DeckTemplate{
		Cards: []DeckCard{{Number: 1, HeadTerm: "apple"}, {Number: 2, HeadTerm: "banana"}},
	}))
	assert.Equal(t, "1:apple\n2:banana\n", buf.String())
}

func TestWriteDeck_ExecuteError(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "deck.md")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Missing.Field }}"), 0644))

	var buf bytes.Buffer
	err := WriteDeck(&buf, templatePath, DeckTemplate{})
	assert.Error(t, err)
}
