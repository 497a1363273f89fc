package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendLLM    = "llm"
	BackendSearch = "search"
)

// ErrMissingAPIKey is returned when no enabled LLM provider has a usable key.
var ErrMissingAPIKey = errors.New("no enabled LLM provider has an API key (set GROQ_API_KEY)")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant
	Assistant AssistantConfig
	LLM       LLMConfig
	Search    SearchConfig
	Session   SessionConfig

	// Front-ends
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RateLimitConfig throttles HTTP clients per IP.
type RateLimitConfig struct {
	RequestsPerMin int
}

// AssistantConfig tunes the turn pipeline. Attempt, delay, interval and
// marker settings default from the selected backend's profile.
type AssistantConfig struct {
	Backend         string
	MaxAttempts     int
	RetryDelay      time.Duration
	MinCallInterval time.Duration
	ErrorMarkers    []string
	HistoryLimit    int
	PreviewLength   int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	Temperature     float64
	MaxTokens       int
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name       string
	Enabled    bool
	Priority   int
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// SearchConfig drives the browser-backed search backend.
type SearchConfig struct {
	EngineURL       string
	Sites           []string
	RestrictToSites bool
	Headless        bool
	UserAgent       string
	PageTimeout     time.Duration
	MaxContentChars int
}

// SessionConfig bounds the in-memory session store.
type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	NgrokAPIURL string
}

type backendProfile struct {
	maxAttempts     int
	retryDelay      time.Duration
	minCallInterval time.Duration
	errorMarkers    []string
}

var profiles = map[string]backendProfile{
	BackendLLM:    {maxAttempts: 1, retryDelay: 0, minCallInterval: 2 * time.Second},
	BackendSearch: {maxAttempts: 3, retryDelay: 5 * time.Second, minCallInterval: 3 * time.Second, errorMarkers: []string{"Error"}},
}

// Load loads configuration using Viper, after pulling a .env file into the
// environment. Config file name: config.yaml, searched in ./config, . and
// /etc/shopping-assistant/.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/shopping-assistant/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Assistant
	backend := strings.ToLower(v.GetString("assistant.backend"))
	profile, ok := profiles[backend]
	if !ok {
		return nil, fmt.Errorf("unknown assistant backend %q (want %q or %q)", backend, BackendLLM, BackendSearch)
	}
	cfg.Assistant.Backend = backend
	cfg.Assistant.MaxAttempts = profile.maxAttempts
	cfg.Assistant.RetryDelay = profile.retryDelay
	cfg.Assistant.MinCallInterval = profile.minCallInterval
	cfg.Assistant.ErrorMarkers = profile.errorMarkers
	if v.IsSet("assistant.max_attempts") {
		cfg.Assistant.MaxAttempts = v.GetInt("assistant.max_attempts")
	}
	if v.IsSet("assistant.retry_delay") {
		cfg.Assistant.RetryDelay = v.GetDuration("assistant.retry_delay")
	}
	if v.IsSet("assistant.min_call_interval") {
		cfg.Assistant.MinCallInterval = v.GetDuration("assistant.min_call_interval")
	}
	if v.IsSet("assistant.error_markers") {
		cfg.Assistant.ErrorMarkers = splitList(v.Get("assistant.error_markers"))
	}
	cfg.Assistant.HistoryLimit = v.GetInt("assistant.history_limit")
	cfg.Assistant.PreviewLength = v.GetInt("assistant.preview_length")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")
	cfg.LLM.Providers = parseProviders(v, v.Get("llm.providers"))

	// Search
	cfg.Search.EngineURL = v.GetString("search.engine_url")
	cfg.Search.Sites = splitList(v.Get("search.sites"))
	cfg.Search.RestrictToSites = v.GetBool("search.restrict_to_sites")
	cfg.Search.Headless = v.GetBool("search.headless")
	cfg.Search.UserAgent = v.GetString("search.user_agent")
	cfg.Search.PageTimeout = v.GetDuration("search.page_timeout")
	cfg.Search.MaxContentChars = v.GetInt("search.max_content_chars")

	// Sessions
	cfg.Session.TTL = v.GetDuration("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("assistant.backend", BackendLLM)
	v.SetDefault("assistant.history_limit", 100)
	v.SetDefault("assistant.preview_length", 200)

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "90s")
	v.SetDefault("llm.temperature", 0.1)
	v.SetDefault("llm.max_tokens", 1500)
	v.SetDefault("llm.providers", []map[string]any{{
		"name":        "groq",
		"enabled":     true,
		"priority":    1,
		"api_key":     "${GROQ_API_KEY}",
		"model":       "llama-3.3-70b-versatile",
		"timeout":     "30s",
		"max_retries": 2,
	}})

	v.SetDefault("search.engine_url", "https://html.duckduckgo.com/html/")
	v.SetDefault("search.sites", []string{
		"amazon.com", "flipkart.com", "ebay.com", "bestbuy.com",
		"target.com", "walmart.com", "myntra.com", "ajio.com",
	})
	v.SetDefault("search.restrict_to_sites", false)
	v.SetDefault("search.headless", true)
	v.SetDefault("search.page_timeout", "30s")
	v.SetDefault("search.max_content_chars", 12000)

	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 1000)

	v.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")
}

// loadEnvFile pulls the first .env found into the process environment.
// Variables already set in the environment win.
func loadEnvFile() {
	for _, p := range []string{".env", "../.env", "../../.env"} {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
	}
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig checks that at least one enabled provider can authenticate.
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	for i, p := range cfg.Providers {
		if p.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
	}

	for _, p := range cfg.Providers {
		if p.Enabled && p.APIKey != "" {
			return nil
		}
	}
	return ErrMissingAPIKey
}

func parseProviders(v *viper.Viper, raw any) []ProviderConfig {
	var items []map[string]any
	switch list := raw.(type) {
	case []map[string]any:
		items = list
	case []any:
		for _, p := range list {
			if m, ok := p.(map[string]any); ok {
				items = append(items, m)
			}
		}
	}

	providers := make([]ProviderConfig, 0, len(items))
	for _, m := range items {
		providers = append(providers, ProviderConfig{
			Name:       getStringFromMap(m, "name"),
			Enabled:    getBoolFromMap(m, "enabled"),
			Priority:   getIntFromMap(m, "priority"),
			APIKey:     expandEnvVar(v, getStringFromMap(m, "api_key")),
			BaseURL:    getStringFromMap(m, "base_url"),
			Model:      getStringFromMap(m, "model"),
			Timeout:    getDurationFromMap(m, "timeout"),
			MaxRetries: getIntFromMap(m, "max_retries"),
		})
	}
	return providers
}

// splitList accepts a YAML list or a comma separated env value.
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case []string:
		parts = val
	case []any:
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
	case string:
		parts = strings.Split(val, ",")
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]any
func getStringFromMap(m map[string]any, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]any, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]any, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

func getDurationFromMap(m map[string]any, key string) time.Duration {
	d, err := time.ParseDuration(getStringFromMap(m, key))
	if err != nil {
		return 0
	}
	return d
}
