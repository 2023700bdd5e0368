package audio

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Pronouncer requests playback without waiting for it.
// Failures are logged and never reported to the caller.
type Pronouncer struct {
	player  Player
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewPronouncer(player Player, timeout time.Duration) *Pronouncer {
	return &Pronouncer{
		player:  player,
		timeout: timeout,
	}
}

// Pronounce starts playback of term in the background. Empty terms are ignored.
// Overlapping requests are allowed to overlap.
func (p *Pronouncer) Pronounce(term string, accent Accent) {
	if term == "" {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ctx := context.Background()
		if p.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.timeout)
			defer cancel()
		}

		if err := p.player.Play(ctx, term, accent); err != nil {
			slog.Default().Warn("failed to play a pronunciation",
				slog.String("term", term),
				slog.String("accent", accent.String()),
				slog.Any("error", err),
			)
		}
	}()
}

// Wait blocks until every requested playback has finished.
func (p *Pronouncer) Wait() {
	p.wg.Wait()
}
