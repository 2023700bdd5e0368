// Package navigation turns user intents into repository moves, rendering and
// pronunciation requests.
package navigation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/card"
	"github.com/at-ishikawa/wordcard/internal/preference"
	"github.com/at-ishikawa/wordcard/internal/wordbook"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

//go:generate mockgen -source=controller.go -destination=../mocks/navigation/mock_controller.go -package=mock_navigation Pronouncer ThemeToggler

var ErrSearchNotFound = errors.New("word not found")

// Pronouncer requests playback without waiting for it.
type Pronouncer interface {
	Pronounce(term string, accent audio.Accent)
}

type ThemeToggler interface {
	Theme() preference.Theme
	Toggle(ctx context.Context) (preference.Theme, error)
}

// View is what the presentation layer draws after each event.
type View struct {
	Card         card.DisplayModel
	Theme        preference.Theme
	SettingsOpen bool
}

type Controller struct {
	repository     *wordbook.Repository
	renderer       *card.Renderer
	pronouncer     Pronouncer
	theme          ThemeToggler
	autoplayAccent audio.Accent

	settingsOpen bool
	loadErr      error
}

type Option func(*Controller)

// WithAutoplayAccent sets the accent played after the current word changes.
func WithAutoplayAccent(accent audio.Accent) Option {
	return func(c *Controller) {
		c.autoplayAccent = accent
	}
}

func NewController(
	repository *wordbook.Repository,
	renderer *card.Renderer,
	pronouncer Pronouncer,
	theme ThemeToggler,
	options ...Option,
) *Controller {
	c := &Controller{
		repository:     repository,
		renderer:       renderer,
		pronouncer:     pronouncer,
		theme:          theme,
		autoplayAccent: audio.AccentPrimary,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Load shows the first of entries. It never plays a pronunciation.
func (c *Controller) Load(entries []wordlist.Entry) {
	c.loadErr = nil
	c.repository.Load(entries)
	slog.Default().Debug("loaded words", slog.Int("count", len(entries)))
}

// Fail puts the controller into the load failure state.
func (c *Controller) Fail(err error) {
	c.loadErr = err
	c.repository.Load(nil)
}

func (c *Controller) Err() error {
	return c.loadErr
}

func (c *Controller) View() View {
	return View{
		Card:         c.card(),
		Theme:        c.theme.Theme(),
		SettingsOpen: c.settingsOpen,
	}
}

func (c *Controller) card() card.DisplayModel {
	if c.loadErr != nil {
		return c.renderer.RenderError(c.loadErr)
	}
	entry, ok := c.repository.Current()
	if !ok {
		return c.renderer.RenderEmpty()
	}
	index, _ := c.repository.Cursor()
	return c.renderer.Render(entry, index, c.repository.Len())
}

// Advance moves to the next word. It reports false at the last word.
func (c *Controller) Advance() bool {
	if !c.repository.Advance() {
		return false
	}
	c.autoplay()
	return true
}

// Retreat moves to the previous word. It reports false at the first word.
func (c *Controller) Retreat() bool {
	if !c.repository.Retreat() {
		return false
	}
	c.autoplay()
	return true
}

// Search jumps to the first word whose head term equals term, ignoring case.
// A blank term is ignored. A miss returns ErrSearchNotFound and keeps the current word.
func (c *Controller) Search(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	index, err := c.repository.FindByHeadTerm(term)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrSearchNotFound, term, err)
	}
	if err := c.repository.JumpTo(index); err != nil {
		return fmt.Errorf("repository.JumpTo(%d) > %w", index, err)
	}
	c.autoplay()
	return nil
}

// RandomJump moves to a random other word. It reports false when there is none.
func (c *Controller) RandomJump() bool {
	if !c.repository.RandomJump() {
		return false
	}
	c.autoplay()
	return true
}

// Pronounce plays the current word in accent.
func (c *Controller) Pronounce(accent audio.Accent) {
	entry, ok := c.repository.Current()
	if !ok {
		return
	}
	c.pronouncer.Pronounce(entry.HeadTerm, accent)
}

func (c *Controller) ToggleTheme(ctx context.Context) (preference.Theme, error) {
	theme, err := c.theme.Toggle(ctx)
	if err != nil {
		return theme, fmt.Errorf("theme.Toggle > %w", err)
	}
	return theme, nil
}

func (c *Controller) OpenSettings() {
	c.settingsOpen = true
}

func (c *Controller) CloseSettings() {
	c.settingsOpen = false
}

func (c *Controller) SettingsOpen() bool {
	return c.settingsOpen
}

func (c *Controller) autoplay() {
	entry, ok := c.repository.Current()
	if !ok {
		return
	}
	c.pronouncer.Pronounce(entry.HeadTerm, c.autoplayAccent)
}
