// Package cli is the interactive terminal viewer.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/at-ishikawa/wordcard/internal/navigation"
)

var errEnd = errors.New("end")

// Viewer shows one card at a time and reads commands from the input.
type Viewer struct {
	controller   *navigation.Controller
	printer      *CardPrinter
	settings     Settings
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	notice       string
}

func NewViewer(controller *navigation.Controller, settings Settings, stdin io.Reader, stdout io.Writer) *Viewer {
	return &Viewer{
		controller:   controller,
		printer:      NewCardPrinter(),
		settings:     settings,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
	}
}

// Session prints the current view, then reads and handles one command.
// It returns errEnd when the user quits or the input ends.
func (v *Viewer) Session(ctx context.Context) error {
	view := v.controller.View()
	v.printer.PrintView(v.stdoutWriter, view, v.settings)
	if v.notice != "" {
		_, _ = v.printer.palette(view.Theme).Notice.Fprintln(v.stdoutWriter, v.notice)
		v.notice = ""
	}
	_, _ = fmt.Fprint(v.stdoutWriter, "> ")

	line, err := v.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			_, _ = fmt.Fprintln(v.stdoutWriter)
			return errEnd
		}
	}
	_, _ = fmt.Fprintln(v.stdoutWriter)
	return v.handle(ctx, line)
}

func (v *Viewer) handle(ctx context.Context, line string) error {
	in, err := parseInput(line)
	if err != nil {
		v.notice = fmt.Sprintf("%v. Type h for help.", err)
		return nil
	}
	switch {
	case in.quit:
		return errEnd
	case in.help:
		v.notice = helpText
		return nil
	}

	if err := v.controller.Dispatch(ctx, in.command); err != nil {
		if errors.Is(err, navigation.ErrSearchNotFound) {
			v.notice = fmt.Sprintf("%q is not in the word list", strings.TrimSpace(in.command.Term))
			return nil
		}
		slog.Default().Warn("failed to handle a command",
			slog.String("intent", in.command.Intent.String()),
			slog.Any("error", err),
		)
		v.notice = fmt.Sprintf("Failed to %s: %v", in.command.Intent, err)
	}
	return nil
}

// Run repeats sessions until the user quits, the input ends or an interrupt arrives.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := v.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(v.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}
