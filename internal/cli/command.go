package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/navigation"
)

var ErrUnknownCommand = errors.New("unknown command")

const helpText = `Commands:
  n, enter       next word
  p              previous word
  r              random word
  /WORD, s WORD  search a word
  us, uk         play the American or British pronunciation
  t              toggle the light and dark theme
  settings       open the settings
  close          close the settings
  h              show this help
  q              quit`

// input is one parsed line of user input.
type input struct {
	command navigation.Command
	help    bool
	quit    bool
}

func parseInput(line string) (input, error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "/") {
		return input{command: navigation.Command{Intent: navigation.IntentSearch, Term: line[1:]}}, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	switch name {
	case "", "n", "next":
		return input{command: navigation.Command{Intent: navigation.IntentAdvance}}, nil
	case "p", "prev", "previous":
		return input{command: navigation.Command{Intent: navigation.IntentRetreat}}, nil
	case "r", "random":
		return input{command: navigation.Command{Intent: navigation.IntentRandomJump}}, nil
	case "s", "search":
		return input{command: navigation.Command{Intent: navigation.IntentSearch, Term: arg}}, nil
	case "us", "uk":
		accent, err := audio.ParseAccent(name)
		if err != nil {
			return input{}, fmt.Errorf("audio.ParseAccent > %w", err)
		}
		return input{command: navigation.Command{Intent: navigation.IntentPronounce, Accent: accent}}, nil
	case "t", "theme":
		return input{command: navigation.Command{Intent: navigation.IntentToggleTheme}}, nil
	case "settings":
		return input{command: navigation.Command{Intent: navigation.IntentOpenSettings}}, nil
	case "close":
		return input{command: navigation.Command{Intent: navigation.IntentCloseSettings}}, nil
	case "h", "help", "?":
		return input{help: true}, nil
	case "q", "quit", "exit":
		return input{quit: true}, nil
	}
	return input{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}
