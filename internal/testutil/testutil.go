// Package testutil provides shared test helpers for creating config files and word list fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// ConfigOptions overrides parts of the config written by SetupTestConfig.
type ConfigOptions struct {
	WordList           string
	PreferencesBackend string
	DeckTemplate       string
}

// SetupTestConfig creates a config file with audio disabled, a light ambient theme
// and every file it points at inside tmpDir.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, options ConfigOptions) string {
	t.Helper()

	if options.PreferencesBackend == "" {
		options.PreferencesBackend = "file"
	}
	if options.WordList == "" {
		options.WordList = filepath.Join(tmpDir, "CET4luan_2.json")
	}

	configContent := fmt.Sprintf(`word_list:
  location: %s
audio:
  enabled: false
preferences:
  backend: %s
  file: %s
theme:
  ambient: light
database:
  driver: sqlite3
  path: %s
outputs:
  directory: %s
`,
		options.WordList,
		options.PreferencesBackend,
		filepath.Join(tmpDir, "preferences.yml"),
		filepath.Join(tmpDir, "wordcard.db"),
		filepath.Join(tmpDir, "outputs"),
	)
	if options.DeckTemplate != "" {
		configContent += fmt.Sprintf("templates:\n  deck_template: %s\n", options.DeckTemplate)
	}

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// WriteWordList writes content as a word list named name in dir and returns its path.
func WriteWordList(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
