package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var ErrNoMessages = errors.New("at least one message is required")

// Client implements IAnthropic with the official SDK.
type Client struct {
	client sdk.Client
	model  string
}

// New creates a Client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(max(cfg.MaxRetries, 0)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{client: sdk.NewClient(opts...), model: cfg.Model}, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent calls the Messages API.
func (c *Client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	params, err := c.buildParams(req)
	if err != nil {
		return nil, err
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}

	return &Response{
		Text: collectText(msg.Content),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

func (c *Client) buildParams(req *Request) (sdk.MessageNewParams, error) {
	if len(req.Messages) == 0 {
		return sdk.MessageNewParams{}, ErrNoMessages
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	msgs := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := sdk.MessageParamRoleUser
		if m.Role == RoleAssistant {
			role = sdk.MessageParamRoleAssistant
		}
		msgs = append(msgs, sdk.MessageParam{
			Role:    role,
			Content: []sdk.ContentBlockParamUnion{sdk.NewTextBlock(m.Text)},
		})
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages:  msgs,
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = sdk.Float(req.Temperature)
	}
	return params, nil
}

func collectText(blocks []sdk.ContentBlockUnion) string {
	var sb strings.Builder
	for _, block := range blocks {
		if block.Type != "text" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(block.Text)
	}
	return sb.String()
}
