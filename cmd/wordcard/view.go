package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/cli"
	"github.com/at-ishikawa/wordcard/internal/config"
)

func newViewCommand() *cobra.Command {
	var wordList string
	accent := audio.AccentPrimary

	command := &cobra.Command{
		Use:   "view",
		Short: "Browse the word list one card at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cmd.Flags().Changed("accent") {
				if accent, err = autoplayAccent(cfg.Audio); err != nil {
					return err
				}
			}

			theme, closeStore, err := newThemeManager(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			pronouncer, wait, err := newPronouncer(cfg.Audio)
			if err != nil {
				return err
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

			return cli.NewViewer(controller, settings, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}

	command.Flags().StringVar(&wordList, "word-list", "", "word list path or URL (default: word_list.location)")
	command.Flags().Var(&accent, "accent", "accent played after moving to a word: us or uk (default: audio.autoplay_accent)")
	return command
}

func viewerSettings(cfg *config.Config, wordList string, accent audio.Accent) cli.Settings {
	if wordList == "" {
		wordList = cfg.WordList.Location
	}
	return cli.Settings{
		WordList:       wordList,
		AudioEnabled:   cfg.Audio.Enabled,
		AutoplayAccent: accent,
	}
}
