package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/at-ishikawa/wordcard/internal/audio"
	"github.com/at-ishikawa/wordcard/internal/card"
	"github.com/at-ishikawa/wordcard/internal/config"
	"github.com/at-ishikawa/wordcard/internal/database"
	"github.com/at-ishikawa/wordcard/internal/navigation"
	"github.com/at-ishikawa/wordcard/internal/preference"
	"github.com/at-ishikawa/wordcard/internal/wordbook"
	"github.com/at-ishikawa/wordcard/internal/wordlist"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newWordListLoader(cfg config.WordListConfig, defaultLevel string) *wordlist.Loader {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	fetcher := &wordlist.SchemeFetcher{
		HTTP: wordlist.NewHTTPFetcher(timeout, cfg.Charset),
		File: wordlist.NewFileFetcher(cfg.Charset),
	}
	return wordlist.NewLoader(fetcher, wordlist.NewParser(defaultLevel))
}

// loadEntries loads the word list at location, or the configured one when location is empty.
func loadEntries(ctx context.Context, cfg *config.Config, location string) ([]wordlist.Entry, error) {
	if location == "" {
		location = cfg.WordList.Location
	}
	entries, err := newWordListLoader(cfg.WordList, cfg.Card.DefaultLevel).Load(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("loader.Load(%s) > %w", location, err)
	}
	return entries, nil
}

func newRenderer(cfg config.CardConfig) *card.Renderer {
	return card.NewRenderer(card.Placeholders{
		NoPhrases:   cfg.NoPhrasesText,
		NoSentences: cfg.NoSentencesText,
		NoContent:   cfg.NoContentText,
	})
}

// newPreferenceStore returns the configured store and a function releasing it.
func newPreferenceStore(ctx context.Context, cfg *config.Config) (preference.Store, func() error, error) {
	if cfg.Preferences.Backend != "database" {
		return preference.NewFileStore(cfg.Preferences.File), func() error { return nil }, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	store := preference.NewDBStore(db)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("store.Migrate() > %w", err)
	}
	return store, db.Close, nil
}

func newThemeManager(ctx context.Context, cfg *config.Config) (*preference.ThemeManager, func() error, error) {
	store, closeStore, err := newPreferenceStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	manager := preference.NewThemeManager(store)
	if _, err := manager.Initialize(ctx, preference.AmbientPrefersDark(cfg.Theme.Ambient, os.Getenv)); err != nil {
		_ = closeStore()
		return nil, nil, fmt.Errorf("themeManager.Initialize() > %w", err)
	}
	return manager, closeStore, nil
}

// newPronouncer returns a pronouncer for the audio config and a function waiting for
// outstanding playback and releasing the HTTP client.
func newPronouncer(cfg config.AudioConfig) (*audio.Pronouncer, func(), error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if !cfg.Enabled {
		pronouncer := audio.NewPronouncer(audio.NopPlayer{}, timeout)
		return pronouncer, pronouncer.Wait, nil
	}

	downloader := audio.NewDownloader(cfg.BaseURL, cfg.CacheDirectory, timeout, cfg.RetryAttempts)
	player, err := audio.NewCommandPlayer(downloader, cfg.Command)
	if err != nil {
		_ = downloader.Close()
		return nil, nil, fmt.Errorf("audio.NewCommandPlayer() > %w", err)
	}
	pronouncer := audio.NewPronouncer(player, timeout)
	return pronouncer, func() {
		pronouncer.Wait()
		_ = downloader.Close()
	}, nil
}

func autoplayAccent(cfg config.AudioConfig) (audio.Accent, error) {
	accent, err := audio.ParseAccent(cfg.AutoplayAccent)
	if err != nil {
		return audio.AccentPrimary, fmt.Errorf("audio.ParseAccent > %w", err)
	}
	return accent, nil
}

func newController(
	cfg *config.Config,
	pronouncer navigation.Pronouncer,
	theme navigation.ThemeToggler,
	accent audio.Accent,
) *navigation.Controller {
	return navigation.NewController(
		wordbook.NewRepository(),
		newRenderer(cfg.Card),
		pronouncer,
		theme,
		navigation.WithAutoplayAccent(accent),
	)
}
