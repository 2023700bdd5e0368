package preference

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeKey is the store key of the theme. Only the dark theme is ever stored;
// an absent key means light.
const ThemeKey = "theme"

type ThemeManager struct {
	store Store
	theme Theme
}

func NewThemeManager(store Store) *ThemeManager {
	return &ThemeManager{
		store: store,
		theme: ThemeLight,
	}
}

// Initialize resolves the theme once at startup. A stored preference wins.
// Without one, a dark ambient signal selects the dark theme and stores it,
// so later sessions no longer depend on the ambient signal.
func (m *ThemeManager) Initialize(ctx context.Context, ambientDark bool) (Theme, error) {
	stored, ok, err := m.store.Get(ctx, ThemeKey)
	if err != nil {
		return m.theme, fmt.Errorf("store.Get(%s) > %w", ThemeKey, err)
	}

	switch {
	case ok && stored == string(ThemeDark):
		m.theme = ThemeDark
	case ok:
		m.theme = ThemeLight
	case ambientDark:
		if err := m.store.Set(ctx, ThemeKey, string(ThemeDark)); err != nil {
			return m.theme, fmt.Errorf("store.Set(%s) > %w", ThemeKey, err)
		}
		m.theme = ThemeDark
	default:
		m.theme = ThemeLight
	}
	return m.theme, nil
}

func (m *ThemeManager) Theme() Theme {
	return m.theme
}

// Toggle switches between light and dark and writes the result to the store.
func (m *ThemeManager) Toggle(ctx context.Context) (Theme, error) {
	if m.theme == ThemeDark {
		if err := m.store.Delete(ctx, ThemeKey); err != nil {
			return m.theme, fmt.Errorf("store.Delete(%s) > %w", ThemeKey, err)
		}
		m.theme = ThemeLight
		return m.theme, nil
	}

	if err := m.store.Set(ctx, ThemeKey, string(ThemeDark)); err != nil {
		return m.theme, fmt.Errorf("store.Set(%s) > %w", ThemeKey, err)
	}
	m.theme = ThemeDark
	return m.theme, nil
}

// AmbientPrefersDark reports the platform's light/dark signal.
// An explicitly configured value ("dark" or "light") wins; otherwise the
// terminal background from COLORFGBG ("fg;bg" or "fg;default;bg") is used.
func AmbientPrefersDark(configured string, getenv func(string) string) bool {
	switch Theme(strings.ToLower(configured)) {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	}

	colorFGBG := getenv("COLORFGBG")
	if colorFGBG == "" {
		return false
	}
	fields := strings.Split(colorFGBG, ";")
	background, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return false
	}
	// Colors 0-6 and 8 are the dark entries of the 16-color palette.
	return (background >= 0 && background <= 6) || background == 8
}
