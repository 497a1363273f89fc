package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"

	"shopping-assistant/internal/assistant"
	pkgLog "shopping-assistant/pkg/log"
)

// Handler runs the interactive terminal chat.
type Handler interface {
	Run(ctx context.Context) error
}

// SessionStore starts and ends the console's single session.
type SessionStore interface {
	Create() *assistant.Session
	Delete(id string) bool
}

// Config wires the console to its terminal.
type Config struct {
	In      io.Reader
	Out     io.Writer
	Backend string
	// Plain disables markdown rendering.
	Plain bool
	// Interrupts cancels the running turn, or ends the chat between turns.
	Interrupts <-chan os.Signal
}

type handler struct {
	l          pkgLog.Logger
	uc         assistant.UseCase
	sessions   SessionStore
	in         io.Reader
	out        io.Writer
	backend    string
	interrupts <-chan os.Signal
	renderer   *glamour.TermRenderer
}

// New creates the console front-end.
func New(l pkgLog.Logger, uc assistant.UseCase, sessions SessionStore, cfg Config) (Handler, error) {
	h := &handler{
		l:          l,
		uc:         uc,
		sessions:   sessions,
		in:         cfg.In,
		out:        cfg.Out,
		backend:    cfg.Backend,
		interrupts: cfg.Interrupts,
	}
	if h.in == nil {
		h.in = os.Stdin
	}
	if h.out == nil {
		h.out = os.Stdout
	}

	if !cfg.Plain {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrap),
			glamour.WithPreservedNewLines(),
		)
		if err != nil {
			return nil, fmt.Errorf("create markdown renderer: %w", err)
		}
		h.renderer = r
	}

	return h, nil
}
