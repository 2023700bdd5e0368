package assets

import (
	_ "embed"
	"fmt"
	"io"
)

const deckTemplateName = "deck.md.go.tmpl"

//go:embed templates/deck.md.go.tmpl
var fallbackDeckTemplate string

// DeckTemplate is the top-level data structure for deck templates
type DeckTemplate struct {
	Title           string
	Source          string
	NoPhrasesText   string
	NoSentencesText string
	Cards           []DeckCard
}

// DeckCard is one word of the deck. Number starts at 1.
type DeckCard struct {
	Number            int
	HeadTerm          string
	Level             string
	Phonetic          string
	AlternatePhonetic string
	PartOfSpeech      string
	Definition        string
	Phrases           []DeckPair
	Sentences         []DeckPair
}

type DeckPair struct {
	Text        string
	Translation string
}

// WriteDeck renders templateData with the template at templatePath,
// or with the embedded template when the path is empty or unusable.
func WriteDeck(output io.Writer, templatePath string, templateData DeckTemplate) error {
	tmpl, err := parseTemplateWithFallback(templatePath, deckTemplateName, fallbackDeckTemplate)
	if err != nil {
		return fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}
	if err := tmpl.Execute(output, templateData); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
