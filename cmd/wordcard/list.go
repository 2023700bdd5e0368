package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/card"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

func newListCommand() *cobra.Command {
	var wordList string
	var limit int

	command := &cobra.Command{
		Use:   "list",
		Short: "List the words of the word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			entries, err := loadEntries(cmd.Context(), cfg, wordList)
			if err != nil {
				return err
			}

			printWordTable(cmd, entries, limit)
			return nil
		},
	}

	command.Flags().StringVar(&wordList, "word-list", "", "word list path or URL (default: word_list.location)")
	command.Flags().IntVar(&limit, "limit", 0, "maximum number of words to list (0 lists all)")
	return command
}

func printWordTable(cmd *cobra.Command, entries []wordlist.Entry, limit int) {
	headerFmt := color.New(color.Bold, color.Underline).SprintfFunc()
	tbl := table.New("#", "Word", "Level", "Phonetic", "Definition").
		WithWriter(cmd.OutOrStdout()).
		WithHeaderFormatter(headerFmt)

	renderer := card.NewRenderer(card.DefaultPlaceholders)
	for i, entry := range entries {
		if limit > 0 && i >= limit {
			break
		}
		model := renderer.Render(entry, i, len(entries))
		tbl.AddRow(i+1, model.HeadTerm, model.Level, model.Phonetic, model.Definition)
	}
	tbl.Print()

	if limit > 0 && len(entries) > limit {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "... and %d more\n", len(entries)-limit)
	}
}
