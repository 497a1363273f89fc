package gemini

import "context"

// IGemini generates text with a Gemini model.
type IGemini interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
