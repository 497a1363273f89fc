package llmprovider

import (
	"context"

	"shopping-assistant/pkg/anthropic"
	"shopping-assistant/pkg/gemini"
	"shopping-assistant/pkg/openaicompat"
)

// OpenAICompatAdapter adapts pkg/openaicompat to the Provider interface.
// One adapter type serves every OpenAI compatible vendor, told apart by name.
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates an adapter reporting itself as name.
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := openaicompat.RoleUser
		if m.Role == RoleAssistant {
			role = openaicompat.RoleAssistant
		}
		msgs = append(msgs, openaicompat.Message{Role: role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]gemini.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := gemini.RoleUser
		if m.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		msgs = append(msgs, gemini.Message{Role: role, Text: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// AnthropicAdapter adapts pkg/anthropic to llmprovider.Provider interface
type AnthropicAdapter struct {
	client anthropic.IAnthropic
}

// NewAnthropicAdapter creates a new Anthropic adapter
func NewAnthropicAdapter(client anthropic.IAnthropic) *AnthropicAdapter {
	return &AnthropicAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *AnthropicAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]anthropic.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := anthropic.RoleUser
		if m.Role == RoleAssistant {
			role = anthropic.RoleAssistant
		}
		msgs = append(msgs, anthropic.Message{Role: role, Text: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &anthropic.Request{
		System:      req.SystemInstruction,
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "anthropic",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
	}, nil
}

// Name returns provider name
func (a *AnthropicAdapter) Name() string {
	return "anthropic"
}

// Model returns model name
func (a *AnthropicAdapter) Model() string {
	return a.client.Model()
}
