package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordcard/internal/testutil"
)

const testWordList = `{"headWord":"apple","content":{"word":{"content":{"usphone":"ˈæpl","ukphone":"ˈæpəl","trans":[{"tranCn":"苹果"}],"phrase":{"phrases":[{"pContent":"apple pie","pCn":"苹果派"}]}}}}}
{"headWord":"banana","content":{"word":{"content":{"trans":[{"tranCn":"香蕉"}],"sentence":{"sentences":[{"sContent":"He ate a banana.","sCn":"他吃了一根香蕉。"}]}}}}}
`

type testEnv struct {
	dir        string
	configPath string
	wordList   string
}

func newTestEnv(t *testing.T, wordList string) testEnv {
	t.Helper()
	return newTestEnvWithOptions(t, wordList, testutil.ConfigOptions{})
}

// newTestEnvWithOptions writes a word list and a config file using it into a temporary directory.
func newTestEnvWithOptions(t *testing.T, wordList string, options testutil.ConfigOptions) testEnv {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	dir := t.TempDir()
	options.WordList = testutil.WriteWordList(t, dir, "CET4luan_2.json", wordList)
	return testEnv{
		dir:        dir,
		configPath: testutil.SetupTestConfig(t, dir, options),
		wordList:   options.WordList,
	}
}

func (env testEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	command := newRootCommand()
	var stdout bytes.Buffer
	command.SetOut(&stdout)
	command.SetErr(&stdout)
	command.SetIn(strings.NewReader(stdin))
	command.SetArgs(append([]string{"--config", env.configPath}, args...))

	err := command.ExecuteContext(context.Background())
	return stdout.String(), err
}
