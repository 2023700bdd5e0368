package navigation

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/wordcard/internal/audio"
)

type Intent int

const (
	IntentAdvance Intent = iota + 1
	IntentRetreat
	IntentSearch
	IntentRandomJump
	IntentPronounce
	IntentToggleTheme
	IntentOpenSettings
	IntentCloseSettings
)

var intentNames = map[Intent]string{
	IntentAdvance:       "advance",
	IntentRetreat:       "retreat",
	IntentSearch:        "search",
	IntentRandomJump:    "randomJump",
	IntentPronounce:     "pronounce",
	IntentToggleTheme:   "toggleTheme",
	IntentOpenSettings:  "openSettings",
	IntentCloseSettings: "closeSettings",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Intent(%d)", int(i))
}

// Command is one user intent with its argument.
// Term is used by IntentSearch and Accent by IntentPronounce.
type Command struct {
	Intent Intent
	Term   string
	Accent audio.Accent
}

// Dispatch runs the controller method bound to cmd.Intent.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	switch cmd.Intent {
	case IntentAdvance:
		c.Advance()
	case IntentRetreat:
		c.Retreat()
	case IntentSearch:
		return c.Search(cmd.Term)
	case IntentRandomJump:
		c.RandomJump()
	case IntentPronounce:
		c.Pronounce(cmd.Accent)
	case IntentToggleTheme:
		if _, err := c.ToggleTheme(ctx); err != nil {
			return err
		}
	case IntentOpenSettings:
		c.OpenSettings()
	case IntentCloseSettings:
		c.CloseSettings()
	default:
		return fmt.Errorf("unknown intent: %s", cmd.Intent)
	}
	return nil
}
