package app

import (
	"context"
	"fmt"

	"shopping-assistant/config"
	"shopping-assistant/internal/assistant"
	"shopping-assistant/internal/assistant/usecase"
	"shopping-assistant/internal/caller"
	"shopping-assistant/internal/ratelimit"
	"shopping-assistant/internal/retry"
	"shopping-assistant/internal/session"
	"shopping-assistant/pkg/browser"
	"shopping-assistant/pkg/llmprovider"
	"shopping-assistant/pkg/log"
)

// Assistant is the wired turn pipeline shared by every front-end of one
// process. The limiter inside is process wide.
type Assistant struct {
	UseCase  assistant.UseCase
	Sessions *session.Store

	closers []func()
}

// NewAssistant builds the caller selected by cfg.Assistant.Backend and the
// pipeline around it.
func NewAssistant(ctx context.Context, cfg *config.Config, l log.Logger) (*Assistant, error) {
	manager, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("init llm providers: %w", err)
	}
	return newAssistant(cfg, l, manager, func(bc browser.Config) (browser.IBrowser, error) {
		return browser.New(bc)
	})
}

type browserFactory func(browser.Config) (browser.IBrowser, error)

func newAssistant(cfg *config.Config, l log.Logger, gen caller.Generator, newBrowser browserFactory) (*Assistant, error) {
	a := &Assistant{}

	var c caller.Caller
	switch cfg.Assistant.Backend {
	case config.BackendSearch:
		b, err := newBrowser(browser.Config{
			Headless:    cfg.Search.Headless,
			UserAgent:   cfg.Search.UserAgent,
			PageTimeout: cfg.Search.PageTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("start browser: %w", err)
		}
		a.closers = append(a.closers, b.Close)

		var sites []string
		if cfg.Search.RestrictToSites {
			sites = cfg.Search.Sites
		}
		c = caller.NewSearchCaller(l, b, gen, caller.SearchOptions{
			EngineURL:       cfg.Search.EngineURL,
			Sites:           sites,
			MaxContentChars: cfg.Search.MaxContentChars,
			Temperature:     cfg.LLM.Temperature,
			MaxTokens:       cfg.LLM.MaxTokens,
		})
	default:
		c = caller.NewLLMCaller(l, gen, cfg.LLM.Temperature, cfg.LLM.MaxTokens)
	}

	limiter := ratelimit.New(cfg.Assistant.MinCallInterval)
	invoker := retry.New(l, limiter, retry.Config{
		MaxAttempts:  cfg.Assistant.MaxAttempts,
		RetryDelay:   cfg.Assistant.RetryDelay,
		ErrorMarkers: cfg.Assistant.ErrorMarkers,
	})

	a.UseCase = usecase.New(l, c, invoker, limiter, usecase.Options{
		PreviewLength: cfg.Assistant.PreviewLength,
	})
	a.Sessions = session.New(session.Config{
		TTL:          cfg.Session.TTL,
		MaxSessions:  cfg.Session.MaxSessions,
		HistoryLimit: cfg.Assistant.HistoryLimit,
	})

	return a, nil
}

// Close releases the backend resources, such as the browser.
func (a *Assistant) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
