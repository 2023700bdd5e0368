// Package card projects word entries into what a presentation layer displays.
package card

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/k3a/html2text"

	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

// DisplayModel is everything a presentation layer needs to draw one card.
// It is recomputed on every navigation and never stored.
type DisplayModel struct {
	HeadTerm          string
	Level             string
	Phonetic          string
	AlternatePhonetic string
	PartOfSpeech      string
	Definition        string
	Phrases           []wordlist.Pair
	Sentences         []wordlist.Pair

	// PhrasesPlaceholder and SentencesPlaceholder are set only when the section is empty.
	PhrasesPlaceholder   string
	SentencesPlaceholder string

	Index    int
	Total    int
	Position string
	IsFirst  bool
	IsLast   bool

	// Empty is set when there is no word to show, with EmptyText as the message.
	Empty     bool
	EmptyText string
	// ErrorMessage is set when the word list could not be loaded.
	ErrorMessage string
}

type Placeholders struct {
	NoPhrases   string
	NoSentences string
	NoContent   string
}

var DefaultPlaceholders = Placeholders{
	NoPhrases:   "No related phrases",
	NoSentences: "No example sentences",
	NoContent:   "No words to show",
}

type Renderer struct {
	placeholders Placeholders
}

// NewRenderer returns a Renderer. Empty placeholders fall back to DefaultPlaceholders.
func NewRenderer(placeholders Placeholders) *Renderer {
	if placeholders.NoPhrases == "" {
		placeholders.NoPhrases = DefaultPlaceholders.NoPhrases
	}
	if placeholders.NoSentences == "" {
		placeholders.NoSentences = DefaultPlaceholders.NoSentences
	}
	if placeholders.NoContent == "" {
		placeholders.NoContent = DefaultPlaceholders.NoContent
	}
	return &Renderer{placeholders: placeholders}
}

func (r *Renderer) Placeholders() Placeholders {
	return r.placeholders
}

// Render projects the entry at index of a sequence of total entries.
func (r *Renderer) Render(entry wordlist.Entry, index, total int) DisplayModel {
	isFirst, isLast := Boundaries(index, total)
	model := DisplayModel{
		HeadTerm:          Sanitize(entry.HeadTerm),
		Level:             Sanitize(entry.Level),
		Phonetic:          formatPhonetic(entry.Phonetic),
		AlternatePhonetic: formatPhonetic(entry.AlternatePhonetic),
		PartOfSpeech:      Sanitize(entry.PartOfSpeech),
		Definition:        Sanitize(entry.Definition),
		Phrases:           sanitizePairs(entry.Phrases),
		Sentences:         sanitizePairs(entry.Sentences),
		Index:             index,
		Total:             total,
		Position:          fmt.Sprintf("%d/%d", index+1, total),
		IsFirst:           isFirst,
		IsLast:            isLast,
	}
	if len(model.Phrases) == 0 {
		model.PhrasesPlaceholder = r.placeholders.NoPhrases
	}
	if len(model.Sentences) == 0 {
		model.SentencesPlaceholder = r.placeholders.NoSentences
	}
	return model
}

// RenderEmpty is the state shown when there are no words.
func (r *Renderer) RenderEmpty() DisplayModel {
	return DisplayModel{
		Empty:     true,
		EmptyText: r.placeholders.NoContent,
		Position:  "0/0",
		IsFirst:   true,
		IsLast:    true,
	}
}

// RenderError is the terminal state shown after a failed load.
func (r *Renderer) RenderError(err error) DisplayModel {
	model := r.RenderEmpty()
	model.ErrorMessage = "Failed to load words: " + Sanitize(err.Error())
	return model
}

// Boundaries reports whether index is the first and the last position of total.
// Both are true for a single entry and for an empty sequence.
func Boundaries(index, total int) (isFirst bool, isLast bool) {
	if total <= 0 {
		return true, true
	}
	return index <= 0, index >= total-1
}

func formatPhonetic(phonetic string) string {
	phonetic = Sanitize(phonetic)
	if phonetic == "" {
		return ""
	}
	return "/" + phonetic + "/"
}

func sanitizePairs(pairs []wordlist.Pair) []wordlist.Pair {
	if len(pairs) == 0 {
		return nil
	}
	result := make([]wordlist.Pair, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, wordlist.Pair{
			Text:        Sanitize(p.Text),
			Translation: Sanitize(p.Translation),
		})
	}
	return result
}

var markupPattern = regexp.MustCompile(`<[a-zA-Z/!][^>]*>|&(#[0-9]+|#x[0-9a-fA-F]+|[a-zA-Z]+);`)

// Sanitize turns a data field into plain single-line text.
// HTML markup is converted to text and control characters are removed,
// so nothing from a word list can drive the terminal.
func Sanitize(s string) string {
	if markupPattern.MatchString(s) {
		s = html2text.HTML2Text(s)
	}
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
