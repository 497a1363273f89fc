package gemini

// Config holds Gemini client settings. BaseURL is only set to point the
// client at a proxy or test server.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Message is one conversation turn. Role is RoleUser or RoleModel.
type Message struct {
	Role string
	Text string
}

// Request is a text-only generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Response holds the concatenated text of the first candidate.
type Response struct {
	Text  string
	Usage Usage
}

// Usage reports token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
