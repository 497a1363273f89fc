package llmprovider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopping-assistant/config"
	"shopping-assistant/pkg/log"
)

func TestInitializeProviders_SortsAndFilters(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 3, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "q", Model: "llama-3.3-70b-versatile"},
			{Name: "openai", Enabled: false, Priority: 0, APIKey: "o", Model: "gpt-4o-mini"},
			{Name: "anthropic", Enabled: true, Priority: 2, APIKey: "a", Model: "claude-sonnet-4-5"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewTest(t))
	require.NoError(t, err)
	require.Len(t, providers, 3)

	assert.Equal(t, "groq", providers[0].Name())
	assert.Equal(t, "llama-3.3-70b-versatile", providers[0].Model())
	assert.Equal(t, "anthropic", providers[1].Name())
	assert.Equal(t, "gemini", providers[2].Name())
}

func TestInitializeProviders_SkipsBroken(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "groq", Enabled: true, Priority: 1, APIKey: "", Model: "llama"},
			{Name: "mystery", Enabled: true, Priority: 2, APIKey: "x", Model: "y"},
			{Name: "deepseek", Enabled: true, Priority: 3, APIKey: "d", Model: "deepseek-chat"},
		},
	}

	providers, err := InitializeProviders(context.Background(), cfg, log.NewTest(t))
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "deepseek", providers[0].Name())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := InitializeProviders(context.Background(), nil, log.NewTest(t))
	assert.Error(t, err)

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{}, log.NewTest(t))
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(context.Background(), &config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "groq", Enabled: true, Priority: 1, Model: "m"}},
	}, log.NewTest(t))
	assert.Error(t, err)
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Contains(t, defaultBaseURL("groq"), "groq.com")
	assert.Contains(t, defaultBaseURL("deepseek"), "deepseek.com")
	assert.Contains(t, defaultBaseURL("openai"), "openai.com")
	assert.Contains(t, defaultBaseURL("qwen"), "dashscope")
}
