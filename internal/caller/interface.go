package caller

import (
	"context"

	"shopping-assistant/internal/model"
	"shopping-assistant/pkg/llmprovider"
)

// Caller performs the external call for one turn. It either yields answer
// text or fails; retries and fallbacks are the caller's caller's concern.
type Caller interface {
	Call(ctx context.Context, query string, analysis model.QueryAnalysis) (string, error)
}

// Generator produces model text. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
