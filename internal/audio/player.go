package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Player plays the pronunciation of a term. Play blocks until playback ends.
type Player interface {
	Play(ctx context.Context, term string, accent Accent) error
}

type source interface {
	Download(ctx context.Context, term string, accent Accent) (string, error)
}

// CommandPlayer downloads a pronunciation and hands the file to an external player command,
// e.g. "mpg123 -q" or "afplay".
type CommandPlayer struct {
	source  source
	command []string
}

func NewCommandPlayer(source source, command string) (*CommandPlayer, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil, errors.New("audio player command is empty")
	}
	return &CommandPlayer{
		source:  source,
		command: fields,
	}, nil
}

func (p *CommandPlayer) Play(ctx context.Context, term string, accent Accent) error {
	path, err := p.source.Download(ctx, term, accent)
	if err != nil {
		return fmt.Errorf("source.Download > %w", err)
	}

	args := append(append([]string{}, p.command[1:]...), path)
	output, err := exec.CommandContext(ctx, p.command[0], args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s > %w: %s", p.command[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// NopPlayer is used when audio is disabled.
type NopPlayer struct{}

func (NopPlayer) Play(ctx context.Context, term string, accent Accent) error {
	slog.Default().Debug("audio is disabled",
		slog.String("term", term),
		slog.String("accent", accent.String()),
	)
	return nil
}
