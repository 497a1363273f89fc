package caller

import (
	"context"
	"fmt"
	"strings"

	"shopping-assistant/internal/model"
	"shopping-assistant/pkg/llmprovider"
	pkgLog "shopping-assistant/pkg/log"
)

// LLMCaller asks the model directly, framing the query with its analysis.
type LLMCaller struct {
	l           pkgLog.Logger
	gen         Generator
	temperature float64
	maxTokens   int
}

// NewLLMCaller creates the direct-model caller.
func NewLLMCaller(l pkgLog.Logger, gen Generator, temperature float64, maxTokens int) *LLMCaller {
	return &LLMCaller{l: l, gen: gen, temperature: temperature, maxTokens: maxTokens}
}

func (c *LLMCaller) Call(ctx context.Context, query string, analysis model.QueryAnalysis) (string, error) {
	prompt := BuildDirectPrompt(query, analysis)

	resp, err := c.gen.GenerateContent(ctx, llmprovider.UserPrompt("", prompt, c.temperature, c.maxTokens))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	c.l.Debugf(ctx, "%s: answered by %s/%s", logPrefixLLM, resp.ProviderName, resp.ModelName)
	return resp.Text, nil
}

// BuildDirectPrompt renders the shopping prompt for query.
func BuildDirectPrompt(query string, a model.QueryAnalysis) string {
	types := generalInquiry
	if len(a.QueryTypes) > 0 {
		names := make([]string, len(a.QueryTypes))
		for i, t := range a.QueryTypes {
			names[i] = string(t)
		}
		types = strings.Join(names, ", ")
	}

	budget := notSpecified
	if a.HasBudget() {
		budget = "$" + a.Budget
	}

	return fmt.Sprintf(directPromptTemplate, a.Category, types, budget, query)
}
