package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/cli"
)

func newShowCommand() *cobra.Command {
	var wordList string
	var play bool
	accent := audio.AccentPrimary

	command := &cobra.Command{
		Use:   "show TERM",
		Short: "Print the card of a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			theme, closeStore, err := newThemeManager(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			pronouncer := audio.NewPronouncer(audio.NopPlayer{}, time.Second)
			wait := pronouncer.Wait
			if play {
				if pronouncer, wait, err = newPronouncer(cfg.Audio); err != nil {
					return err
				}
			}
			defer wait()

			controller := newController(cfg, pronouncer, theme, accent)
			settings := viewerSettings(cfg, wordList, accent)

			entries, err := loadEntries(ctx, cfg, wordList)
			if err != nil {
				controller.Fail(err)
				cli.NewCardPrinter().PrintView(cmd.OutOrStdout(), controller.View(), settings)
				return err
			}
			controller.Load(entries)
			if err := controller.Search(args[0]); err != nil {
				return fmt.Errorf("controller.Search > %w", err)
			}

			cli.NewCardPrinter().PrintView(cmd.OutOrStdout(), controller.View(), settings)
			return nil
		},
	}

	command.Flags().StringVar(&wordList, "word-list", "", "word list path or URL (default: word_list.location)")
	command.Flags().BoolVar(&play, "play", false, "play the pronunciation")
	command.Flags().Var(&accent, "accent", "accent of the pronunciation: us or uk")
	return command
}
