package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/card"
	"github.com/at-ishikawa/wordcard/internal/navigation"
	"github.com/at-ishikawa/wordcard/internal/preference"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

// Palette is the set of colors used to print a card in one theme.
type Palette struct {
	Title  *color.Color
	Label  *color.Color
	Accent *color.Color
	Muted  *color.Color
	Notice *color.Color
	Italic *color.Color
}

func lightPalette() Palette {
	return Palette{
		Title:  color.New(color.Bold, color.FgBlue),
		Label:  color.New(color.Bold),
		Accent: color.New(color.FgMagenta),
		Muted:  color.New(color.Faint),
		Notice: color.New(color.FgRed),
		Italic: color.New(color.Italic),
	}
}

func darkPalette() Palette {
	return Palette{
		Title:  color.New(color.Bold, color.FgHiCyan),
		Label:  color.New(color.Bold, color.FgHiWhite),
		Accent: color.New(color.FgHiYellow),
		Muted:  color.New(color.Faint),
		Notice: color.New(color.FgHiRed),
		Italic: color.New(color.Italic, color.FgHiWhite),
	}
}

// Settings is shown in the settings panel.
type Settings struct {
	WordList       string
	AudioEnabled   bool
	AutoplayAccent audio.Accent
}

type CardPrinter struct {
	palettes map[preference.Theme]Palette
}

func NewCardPrinter() *CardPrinter {
	return &CardPrinter{
		palettes: map[preference.Theme]Palette{
			preference.ThemeLight: lightPalette(),
			preference.ThemeDark:  darkPalette(),
		},
	}
}

func (p *CardPrinter) palette(theme preference.Theme) Palette {
	if palette, ok := p.palettes[theme]; ok {
		return palette
	}
	return p.palettes[preference.ThemeLight]
}

// PrintView prints the card, the navigation markers and, when open, the settings panel.
func (p *CardPrinter) PrintView(w io.Writer, view navigation.View, settings Settings) {
	palette := p.palette(view.Theme)
	p.PrintCard(w, view.Card, palette)
	if view.Card.ErrorMessage == "" && !view.Card.Empty {
		p.printMarkers(w, view.Card, palette)
	}
	if view.SettingsOpen {
		p.printSettings(w, view.Theme, settings, palette)
	}
}

func (p *CardPrinter) PrintCard(w io.Writer, model card.DisplayModel, palette Palette) {
	if model.ErrorMessage != "" {
		_, _ = palette.Notice.Fprintln(w, model.ErrorMessage)
		return
	}
	if model.Empty {
		_, _ = palette.Muted.Fprintln(w, model.EmptyText)
		return
	}

	_, _ = palette.Muted.Fprintf(w, "[%s] ", model.Position)
	_, _ = palette.Accent.Fprintln(w, model.Level)
	_, _ = palette.Title.Fprint(w, model.HeadTerm)
	if model.Phonetic != "" {
		_, _ = fmt.Fprintf(w, "  US %s", model.Phonetic)
	}
	if model.AlternatePhonetic != "" {
		_, _ = fmt.Fprintf(w, "  UK %s", model.AlternatePhonetic)
	}
	_, _ = fmt.Fprintln(w)

	definition := strings.TrimSpace(strings.Join([]string{model.PartOfSpeech, model.Definition}, " "))
	if definition != "" {
		_, _ = fmt.Fprintln(w, definition)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = palette.Label.Fprintln(w, "Phrases")
	p.printPairs(w, model.Phrases, model.PhrasesPlaceholder, palette)
	_, _ = palette.Label.Fprintln(w, "Sentences")
	p.printPairs(w, model.Sentences, model.SentencesPlaceholder, palette)
}

func (p *CardPrinter) printPairs(w io.Writer, pairs []wordlist.Pair, placeholder string, palette Palette) {
	if len(pairs) == 0 {
		_, _ = palette.Muted.Fprintf(w, "  %s\n", placeholder)
		return
	}
	for _, pair := range pairs {
		_, _ = fmt.Fprintf(w, "  %s\n", pair.Text)
		if pair.Translation != "" {
			_, _ = palette.Italic.Fprintf(w, "    %s\n", pair.Translation)
		}
	}
}

func (p *CardPrinter) printMarkers(w io.Writer, model card.DisplayModel, palette Palette) {
	_, _ = fmt.Fprintln(w)
	if model.IsFirst {
		_, _ = palette.Muted.Fprint(w, "< (first word)")
	} else {
		_, _ = fmt.Fprint(w, "< p: previous")
	}
	_, _ = fmt.Fprint(w, "   ")
	if model.IsLast {
		_, _ = palette.Muted.Fprintln(w, "(last word) >")
	} else {
		_, _ = fmt.Fprintln(w, "n: next >")
	}
}

func (p *CardPrinter) printSettings(w io.Writer, theme preference.Theme, settings Settings, palette Palette) {
	audioState := "off"
	if settings.AudioEnabled {
		audioState = "on, autoplay " + settings.AutoplayAccent.String()
	}

	_, _ = fmt.Fprintln(w)
	_, _ = palette.Label.Fprintln(w, "Settings")
	_, _ = fmt.Fprintf(w, "  Theme: %s (t: toggle)\n", theme)
	_, _ = fmt.Fprintf(w, "  Audio: %s\n", audioState)
	if settings.WordList != "" {
		_, _ = fmt.Fprintf(w, "  Word list: %s\n", settings.WordList)
	}
	_, _ = palette.Muted.Fprintln(w, "  close: close settings")
}
