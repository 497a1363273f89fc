package llmprovider

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "groq", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized text generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role string // "user" or "assistant"
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string, temperature float64, maxTokens int) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Text: prompt}},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	}
}
