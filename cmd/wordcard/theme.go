package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the light/dark theme",
	}
	command.AddCommand(
		newThemeShowCommand(),
		newThemeToggleCommand(),
	)
	return command
}

func newThemeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			theme, closeStore, err := newThemeManager(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeStore()
			}()

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), theme.Theme())
			return nil
		},
	}
}

func newThemeToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
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

			toggled, err := theme.Toggle(ctx)
			if err != nil {
				return fmt.Errorf("theme.Toggle > %w", err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), toggled)
			return nil
		},
	}
}
