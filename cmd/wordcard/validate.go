package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/wordbook"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

// ValidationResult summarises the problems of a word list that still parses.
type ValidationResult struct {
	Total              int
	MissingHeadTerms   []int
	DuplicateHeadTerms []string
	MissingDefinitions []string
}

func (r ValidationResult) HasErrors() bool {
	return len(r.MissingHeadTerms) > 0
}

func newValidateCommand() *cobra.Command {
	var wordList string

	command := &cobra.Command{
		Use:   "validate",
		Short: "Validate that the word list parses and every word can be searched",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			entries, err := loadEntries(cmd.Context(), cfg, wordList)
			if err != nil {
				var decodeErr *wordlist.DecodeError
				switch {
				case errors.As(err, &decodeErr):
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Word object #%d is not valid JSON\n", decodeErr.Index+1)
				case errors.Is(err, wordlist.ErrNoWordObjects):
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✗ No word objects found")
				}
				return err
			}

			result := validateEntries(entries)
			displayValidationResults(cmd.OutOrStdout(), result)
			if result.HasErrors() {
				return fmt.Errorf("validation failed with %d error(s)", len(result.MissingHeadTerms))
			}
			return nil
		},
	}

	command.Flags().StringVar(&wordList, "word-list", "", "word list path or URL (default: word_list.location)")
	return command
}

func validateEntries(entries []wordlist.Entry) ValidationResult {
	repository := wordbook.NewRepository()
	repository.Load(entries)

	result := ValidationResult{Total: len(entries)}
	for i, entry := range entries {
		if entry.HeadTerm == "" {
			result.MissingHeadTerms = append(result.MissingHeadTerms, i+1)
			continue
		}
		if first, err := repository.FindByHeadTerm(entry.HeadTerm); err == nil && first != i {
			result.DuplicateHeadTerms = append(result.DuplicateHeadTerms, entry.HeadTerm)
		}
		if entry.Definition == "" {
			result.MissingDefinitions = append(result.MissingDefinitions, entry.HeadTerm)
		}
	}
	return result
}

func displayValidationResults(w io.Writer, result ValidationResult) {
	_, _ = fmt.Fprintln(w, "=== Validation Results ===")
	_, _ = fmt.Fprintf(w, "Words: %d\n", result.Total)

	if len(result.MissingHeadTerms) > 0 {
		_, _ = fmt.Fprintf(w, "✗ Words without a head term (%d):\n", len(result.MissingHeadTerms))
		for _, number := range result.MissingHeadTerms {
			_, _ = fmt.Fprintf(w, "  - #%d\n", number)
		}
	}
	if len(result.DuplicateHeadTerms) > 0 {
		_, _ = fmt.Fprintf(w, "⚠ Duplicate head terms, only the first is found by search (%d):\n", len(result.DuplicateHeadTerms))
		for _, term := range result.DuplicateHeadTerms {
			_, _ = fmt.Fprintf(w, "  - %s\n", term)
		}
	}
	if len(result.MissingDefinitions) > 0 {
		_, _ = fmt.Fprintf(w, "⚠ Words without a definition (%d):\n", len(result.MissingDefinitions))
		for _, term := range result.MissingDefinitions {
			_, _ = fmt.Fprintf(w, "  - %s\n", term)
		}
	}

	if !result.HasErrors() && len(result.DuplicateHeadTerms) == 0 && len(result.MissingDefinitions) == 0 {
		_, _ = fmt.Fprintln(w, "✓ All validations passed!")
	}
}
