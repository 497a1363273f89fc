package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"shopping-assistant/config"
	"shopping-assistant/pkg/anthropic"
	"shopping-assistant/pkg/gemini"
	"shopping-assistant/pkg/log"
	"shopping-assistant/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped rather than failing startup.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var (
		providers  []Provider
		initErrors []string
	)
	for _, p := range enabled {
		provider, err := createProvider(ctx, p)
		if err != nil {
			msg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warn(ctx, msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "%d provider(s) failed to initialize, continuing with %d", len(initErrors), len(providers))
	}

	return providers, nil
}

// NewManagerFromConfig builds providers and wraps them in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      cfg.RetryDelay,
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}, l), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	switch cfg.Name {
	case "groq", "openai", "deepseek", "qwen":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = defaultBaseURL(cfg.Name)
		}
		client, err := openaicompat.New(openaicompat.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAICompatAdapter(cfg.Name, client), nil

	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "anthropic":
		client, err := anthropic.New(anthropic.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			Timeout:    nonZero(cfg.Timeout, anthropic.DefaultTimeout),
			MaxRetries: cfg.MaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create anthropic client: %w", err)
		}
		return NewAnthropicAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func defaultBaseURL(name string) string {
	switch name {
	case "openai":
		return openaicompat.OpenAIBaseURL
	case "deepseek":
		return openaicompat.DeepSeekBaseURL
	case "qwen":
		return openaicompat.QwenBaseURL
	default:
		return openaicompat.GroqBaseURL
	}
}

func nonZero(d, def time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return def
}
