package openaicompat

import "time"

// Config holds client settings. MaxRetries is handed to the SDK, which
// retries transient HTTP failures on its own.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

// Message is one chat message.
type Message struct {
	Role    string
	Content string
}

// Request is a text-only chat completion request.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Response is the first choice of a completion.
type Response struct {
	Content string
	Usage   Usage
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
