package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/assets"
	"github.com/at-ishikawa/wordcard/internal/card"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/pdf"
	"github.com/at-ishikawa/wordcard/internal/preference"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

func newExportCommand() *cobra.Command {
	var wordList string
	var generatePDF bool

	command := &cobra.Command{
		Use:   "export",
		Short: "Export the word list as a markdown deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if wordList == "" {
				wordList = cfg.WordList.Location
			}

			entries, err := loadEntries(ctx, cfg, wordList)
			if err != nil {
				return err
			}

			markdownPath, err := writeDeck(cfg, wordList, entries)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(entries), markdownPath)

			if !generatePDF {
				return nil
			}
			theme, closeStore, err := newThemeManager(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, theme.Theme() == preference.ThemeDark)
			if err != nil {
				return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF generated: %s\n", pdfPath)
			return nil
		},
	}

	command.Flags().StringVar(&wordList, "word-list", "", "word list path or URL (default: word_list.location)")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Also generate a PDF next to the markdown file")
	return command
}

func writeDeck(cfg *config.Config, wordList string, entries []wordlist.Entry) (string, error) {
	if err := os.MkdirAll(cfg.Outputs.Directory, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", cfg.Outputs.Directory, err)
	}
	title := deckTitle(wordList)
	markdownPath := filepath.Join(cfg.Outputs.Directory, title+".md")

	output, err := os.Create(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.Create(%s) > %w", markdownPath, err)
	}
	defer func() {
		_ = output.Close()
	}()

	if err := assets.WriteDeck(output, cfg.Templates.DeckTemplate, newDeckTemplate(cfg.Card, title, wordList, entries)); err != nil {
		return "", fmt.Errorf("assets.WriteDeck() > %w", err)
	}
	return markdownPath, nil
}

// deckTitle is the base name of the word list without its extension.
func deckTitle(wordList string) string {
	base := filepath.Base(wordList)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		return "deck"
	}
	return base
}

func newDeckTemplate(cfg config.CardConfig, title, source string, entries []wordlist.Entry) assets.DeckTemplate {
	renderer := newRenderer(cfg)
	placeholders := renderer.Placeholders()
	deck := assets.DeckTemplate{
		Title:           title,
		Source:          source,
		NoPhrasesText:   placeholders.NoPhrases,
		NoSentencesText: placeholders.NoSentences,
		Cards:           make([]assets.DeckCard, 0, len(entries)),
	}
	for i, entry := range entries {
		deck.Cards = append(deck.Cards, deckCard(i+1, renderer.Render(entry, i, len(entries))))
	}
	return deck
}

func deckCard(number int, model card.DisplayModel) assets.DeckCard {
	result := assets.DeckCard{
		Number:            number,
		HeadTerm:          model.HeadTerm,
		Level:             model.Level,
		Phonetic:          model.Phonetic,
		AlternatePhonetic: model.AlternatePhonetic,
		PartOfSpeech:      model.PartOfSpeech,
		Definition:        model.Definition,
	}
	for _, phrase := range model.Phrases {
		result.Phrases = append(result.Phrases, assets.DeckPair{Text: phrase.Text, Translation: phrase.Translation})
	}
	for _, sentence := range model.Sentences {
		result.Sentences = append(result.Sentences, assets.DeckPair{Text: sentence.Text, Translation: sentence.Translation})
	}
	return result
}
