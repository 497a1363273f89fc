package anthropic

import "context"

// IAnthropic generates text with a Claude model.
type IAnthropic interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
