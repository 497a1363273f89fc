package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

var ErrNoCandidates = errors.New("gemini returned no candidates")

// Client implements IGemini using the Google GenAI SDK.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini API backed client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{client: client, model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends the conversation to Gemini.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, buildContents(req.Messages), buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoCandidates
	}

	out := &Response{Text: collectText(resp.Candidates[0].Content)}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return out, nil
}

func buildContents(msgs []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		var role genai.Role = genai.RoleUser
		if m.Role == RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}
	return contents
}

func buildConfig(req *Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		temp := float32(req.Temperature)
		cfg.Temperature = &temp
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}
	return cfg
}

func collectText(content *genai.Content) string {
	var sb strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Text == "" || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
