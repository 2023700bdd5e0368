package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

func TestNewViewCommand(t *testing.T) {
	cmd := newViewCommand()

	assert.Equal(t, "view", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	accentFlag := cmd.Flags().Lookup("accent")
	require.NotNil(t, accentFlag)
	assert.Equal(t, "us", accentFlag.DefValue)
	assert.Equal(t, "accent", accentFlag.Value.Type())
	assert.NotNil(t, cmd.Flags().Lookup("word-list"))
}

func TestViewCommand(t *testing.T) {
	t.Run("browse and quit", func(t *testing.T) {
		env := newTestEnv(t, testWordList)

		got, err := env.run(t, "n\n/Apple\nsettings\nq\n", "view", "--accent", "uk")
		require.NoError(t, err)
		assert.Contains(t, got, "[1/2] 4级\napple  US /ˈæpl/  UK /ˈæpəl/\n")
		assert.Contains(t, got, "[2/2] 4级\nbanana\n")
		assert.Contains(t, got, "  Audio: off\n")
		assert.Contains(t, got, "  Word list: "+env.wordList+"\n")
	})

	t.Run("load failure", func(t *testing.T) {
		env := newTestEnv(t, testWordList)

		got, err := env.run(t, "", "view", "--word-list", env.dir+"/missing.json")
		require.Error(t, err)
		var transportErr *wordlist.TransportError
		assert.ErrorAs(t, err, &transportErr)
		assert.Contains(t, got, "Failed to load words: ")
		assert.Contains(t, got, "failed to fetch "+env.dir+"/missing.json")
	})

	t.Run("no word objects", func(t *testing.T) {
		env := newTestEnv(t, "not a word list")

		got, err := env.run(t, "", "view")
		assert.ErrorIs(t, err, wordlist.ErrNoWordObjects)
		assert.Contains(t, got, "Failed to load words: ")
	})
}
