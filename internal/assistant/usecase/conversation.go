package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/model"
)

// Respond dispatches commands and forwards everything else to Handle.
func (uc *implUseCase) Respond(ctx context.Context, sess *assistant.Session, text string) (assistant.Reply, error) {
	if sess == nil {
		return assistant.Reply{}, assistant.ErrSessionNotFound
	}

	if cmd, ok := assistant.ParseCommand(text); ok {
		reply := assistant.Reply{Command: cmd}
		switch cmd {
		case assistant.CommandExit:
			reply.Text = goodbyeMessage
			reply.Exit = true
		case assistant.CommandClear:
			sess.Clear()
			reply.Text = clearedMessage
		case assistant.CommandContext:
			reply.Text = uc.Summary(sess)
		case assistant.CommandStats:
			reply.Text = uc.Stats(sess)
		case assistant.CommandStatus:
			reply.Text = uc.Status(sess)
		case assistant.CommandHelp:
			reply.Text = uc.Help()
		case assistant.CommandStart:
			reply.Text = uc.Welcome()
		}
		return reply, nil
	}

	out, err := uc.Handle(ctx, sess, assistant.HandleInput{Text: text})
	if err != nil {
		return assistant.Reply{}, err
	}
	return assistant.Reply{Text: out.Response, Turn: &out}, nil
}

// Summary lists the last few queries.
func (uc *implUseCase) Summary(sess *assistant.Session) string {
	recs := sess.Records()
	if len(recs) == 0 {
		return noConversationMessage
	}
	if len(recs) > summaryTurns {
		recs = recs[len(recs)-summaryTurns:]
	}

	var b strings.Builder
	b.WriteString("Recent conversation:\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "- Asked about: %s\n", truncate(r.Query, summaryQueryLength))
	}
	return b.String()
}

// Stats counts queries in total and per category, in first-seen order.
func (uc *implUseCase) Stats(sess *assistant.Session) string {
	recs := sess.Records()
	if len(recs) == 0 {
		return noStatsMessage
	}

	var order []model.Category
	counts := make(map[model.Category]int)
	for _, r := range recs {
		if _, seen := counts[r.Category]; !seen {
			order = append(order, r.Category)
		}
		counts[r.Category]++
	}

	var b strings.Builder
	b.WriteString("**Conversation Stats:**\n")
	fmt.Fprintf(&b, "• Total queries: %d\n", len(recs))
	for _, c := range order {
		fmt.Fprintf(&b, "• %s: %d\n", title(string(c)), counts[c])
	}
	return b.String()
}

// Status reports pacing state and history size.
func (uc *implUseCase) Status(sess *assistant.Session) string {
	last := "never"
	if t, ok := uc.pacer.LastCall(); ok {
		last = fmt.Sprintf("%.1f seconds ago", uc.now().Sub(t).Seconds())
	}

	var b strings.Builder
	b.WriteString("📊 System Status:\n")
	fmt.Fprintf(&b, "• Last search: %s\n", last)
	fmt.Fprintf(&b, "• Rate limit interval: %g seconds\n", uc.pacer.Interval().Seconds())
	fmt.Fprintf(&b, "• Conversations stored: %d\n", sess.Len())
	return b.String()
}

func (uc *implUseCase) Help() string     { return helpMessage }
func (uc *implUseCase) Welcome() string  { return welcomeMessage }
func (uc *implUseCase) Examples() string { return examplesMessage }

func title(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
