package wordlist

import (
	"context"
	"fmt"
	"log/slog"
)

// Loader fetches a word list and parses it into entries.
type Loader struct {
	fetcher Fetcher
	parser  *Parser
}

func NewLoader(fetcher Fetcher, parser *Parser) *Loader {
	if parser == nil {
		parser = NewParser("")
	}
	return &Loader{
		fetcher: fetcher,
		parser:  parser,
	}
}

// Load blocks until the fetch completes. It returns either every entry of the
// list or an error: a *TransportError, ErrNoWordObjects or a *DecodeError.
func (l *Loader) Load(ctx context.Context, locator string) ([]Entry, error) {
	contents, err := l.fetcher.Fetch(ctx, locator)
	if err != nil {
		return nil, fmt.Errorf("fetcher.Fetch > %w", err)
	}
	slog.Default().Debug("fetched a word list",
		slog.String("locator", locator),
		slog.Int("bytes", len(contents)),
	)

	entries, err := l.parser.Parse(string(contents))
	if err != nil {
		return nil, fmt.Errorf("parser.Parse > %w", err)
	}
	slog.Default().Info("loaded words",
		slog.String("locator", locator),
		slog.Int("count", len(entries)),
	)
	return entries, nil
}
