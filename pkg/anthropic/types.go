package anthropic

import "time"

// Config holds Anthropic client settings.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Message is one conversation turn.
type Message struct {
	Role string
	Text string
}

// Request is a text-only Messages API request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response holds the joined text blocks of the reply.
type Response struct {
	Text  string
	Usage Usage
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
