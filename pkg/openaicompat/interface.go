package openaicompat

import "context"

// IClient is a chat completion client for OpenAI compatible endpoints.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
