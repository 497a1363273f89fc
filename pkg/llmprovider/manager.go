package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopping-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// Providers returns the providers in the order they are tried.
func (m *Manager) Providers() []Provider {
	return m.providers
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d provider(s): %w",
				len(m.providers), ctx.Err())
		default:
		}

		resp, err := m.generateWithRetry(ctx, provider, req)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with a fixed delay between tries.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := max(m.config.RetryAttempts, 1)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 && m.config.RetryDelay > 0 {
			timer := time.NewTimer(m.config.RetryDelay)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		switch {
		case err != nil:
			providerRequests.WithLabelValues(provider.Name(), resultError).Inc()
		case strings.TrimSpace(resp.Text) == "":
			providerRequests.WithLabelValues(provider.Name(), resultEmpty).Inc()
			err = ErrEmptyContent
		default:
			providerRequests.WithLabelValues(provider.Name(), resultOK).Inc()
			return resp, nil
		}

		m.logger.Debugf(ctx, "LLM attempt %d/%d failed: provider=%s error=%v", attempt+1, attempts, provider.Name(), err)
		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	if resp.Usage == nil {
		m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s", provider.Name(), provider.Model())
		return
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), resp.Usage.InputTokens, resp.Usage.OutputTokens)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s error=%v", provider.Name(), provider.Model(), err)
}
