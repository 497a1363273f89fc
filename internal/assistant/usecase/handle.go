package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopping-assistant/internal/analyzer"
	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/fallback"
	"shopping-assistant/internal/metrics"
	"shopping-assistant/internal/model"
)

// Handle runs one query turn.
func (uc *implUseCase) Handle(ctx context.Context, sess *assistant.Session, input assistant.HandleInput) (out assistant.HandleOutput, err error) {
	if sess == nil {
		return assistant.HandleOutput{}, assistant.ErrSessionNotFound
	}
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return assistant.HandleOutput{}, assistant.ErrEmptyInput
	}

	unlock := sess.LockTurn()
	defer unlock()

	start := uc.now()
	var analysis model.QueryAnalysis

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "%s: turn failed unexpectedly: %v", logPrefixHandle, r)
			out = assistant.HandleOutput{
				Response: fallback.Apology(),
				Analysis: analysis,
				Outcome:  assistant.OutcomeApology,
			}
			err = nil
			uc.observe(analysis.Category, metrics.OutcomeApology, start)
		}
	}()

	analysis = analyzer.Analyze(text)
	uc.l.Infof(ctx, "%s: query analysis: types=%v category=%s budget=%q", logPrefixHandle, analysis.QueryTypes, analysis.Category, analysis.Budget)

	outcome, err := uc.invoker.Invoke(ctx, func(ctx context.Context) (string, error) {
		return uc.caller.Call(ctx, text, analysis)
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: turn abandoned: %v", logPrefixHandle, err)
		uc.observe(analysis.Category, metrics.OutcomeAborted, start)
		return assistant.HandleOutput{}, err
	}

	out = assistant.HandleOutput{
		Response: outcome.Value,
		Analysis: analysis,
		Outcome:  assistant.OutcomeAnswered,
		Attempts: outcome.Attempts,
	}
	if !outcome.OK {
		uc.l.Warnf(ctx, "%s: external call unavailable after %d attempt(s), using offline advice", logPrefixHandle, outcome.Attempts)
		out.Response = fallback.Lookup(analysis.Category, analysis.QueryTypes)
		out.Outcome = assistant.OutcomeFallback
		metrics.Fallbacks.WithLabelValues(string(analysis.Category)).Inc()
	}

	sess.Append(model.ConversationRecord{
		Query:           text,
		ResponsePreview: preview(out.Response, uc.previewLen),
		Timestamp:       start,
		Category:        analysis.Category,
		QueryTypes:      analysis.QueryTypes,
		Success:         outcome.OK,
	})

	uc.observe(analysis.Category, string(out.Outcome), start)
	return out, nil
}

func (uc *implUseCase) observe(category model.Category, outcome string, start time.Time) {
	if category == "" {
		category = model.CategoryGeneral
	}
	metrics.Turns.WithLabelValues(string(category), outcome).Inc()
	metrics.TurnDuration.WithLabelValues(outcome).Observe(uc.now().Sub(start).Seconds())
}

// preview keeps the first n runes, marking a cut with an ellipsis.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + previewEllipsis
}

// truncate cuts s to n runes and always appends an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return fmt.Sprintf("%s%s", string(runes), previewEllipsis)
}
