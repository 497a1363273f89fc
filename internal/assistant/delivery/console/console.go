package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"shopping-assistant/internal/assistant"
)

var (
	promptColor  = color.New(color.FgCyan, color.Bold)
	labelColor   = color.New(color.FgMagenta, color.Bold)
	infoColor    = color.New(color.Faint)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Run reads queries until exit, EOF, ctx cancellation or an interrupt
// between turns.
func (h *handler) Run(ctx context.Context) error {
	sess := h.sessions.Create()
	defer h.sessions.Delete(sess.ID)

	fmt.Fprintf(h.out, bannerTemplate, rule, rule, h.backend, rule)
	fmt.Fprintln(h.out, h.uc.Examples())
	fmt.Fprintln(h.out)

	lines := h.readLines()
	for {
		promptColor.Fprint(h.out, promptLabel)

		var (
			line string
			ok   bool
		)
		select {
		case <-ctx.Done():
			fmt.Fprintln(h.out, "\n\n"+interruptedExit)
			return nil
		case <-h.interrupts:
			fmt.Fprintln(h.out, "\n\n"+interruptedExit)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(h.out, "\n"+goodbyeMessage)
			return nil
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		exit, err := h.turn(ctx, sess, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

type turnResult struct {
	reply assistant.Reply
	err   error
}

// turn answers one line. It reports whether the user asked to leave, or
// interrupted after the answer was already complete.
func (h *handler) turn(ctx context.Context, sess *assistant.Session, line string) (bool, error) {
	turnCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan turnResult, 1)
	go func() {
		reply, err := h.uc.Respond(turnCtx, sess, line)
		results <- turnResult{reply: reply, err: err}
	}()

	var (
		res        turnResult
		lateSignal bool
	)
	select {
	case res = <-results:
	case <-h.interrupts:
		cancel()
		res = <-results
		// The answer was already complete, so the signal ends the chat.
		lateSignal = res.err == nil
	}
	reply, err := res.reply, res.err

	if err != nil {
		switch {
		case ctx.Err() != nil:
			return false, ctx.Err()
		case turnCtx.Err() != nil:
			fmt.Fprintln(h.out, "\n"+interruptedTurn)
		case errors.Is(err, assistant.ErrEmptyInput):
		default:
			h.l.Errorf(ctx, "console: turn failed: %v", err)
			errorColor.Fprintln(h.out, failedTurn)
		}
		return false, nil
	}

	if reply.Exit {
		fmt.Fprintln(h.out, "\n"+reply.Text)
		return true, nil
	}

	if t := reply.Turn; t != nil {
		infoColor.Fprintf(h.out, "🔍 Query Analysis: %v | Category: %s\n", t.Analysis.QueryTypes, t.Analysis.Category)
		switch t.Outcome {
		case assistant.OutcomeAnswered:
			successColor.Fprintln(h.out, answeredNotice)
		case assistant.OutcomeFallback:
			warnColor.Fprintln(h.out, fallbackNotice)
		}
		labelColor.Fprint(h.out, "\n"+assistantLabel)
	}

	fmt.Fprintln(h.out, h.render(reply.Text))
	if lateSignal {
		fmt.Fprintln(h.out, "\n"+interruptedExit)
		return true, nil
	}
	return false, nil
}

func (h *handler) render(text string) string {
	if h.renderer == nil {
		return text
	}
	out, err := h.renderer.Render(text)
	if err != nil {
		return text
	}
	return out
}

// readLines feeds input lines to a channel closed at EOF. The reader
// goroutine lives until stdin closes.
func (h *handler) readLines() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(h.in)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}
