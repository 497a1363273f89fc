package caller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopping-assistant/internal/analyzer"
	"shopping-assistant/internal/model"
	"shopping-assistant/pkg/browser"
	"shopping-assistant/pkg/llmprovider"
	pkgLog "shopping-assistant/pkg/log"
)

// SearchOptions configures SearchCaller.
type SearchOptions struct {
	EngineURL       string
	Sites           []string
	MaxContentChars int
	Temperature     float64
	MaxTokens       int
}

// SearchCaller searches the web for the enhanced query and has the model
// answer from the results page.
type SearchCaller struct {
	l       pkgLog.Logger
	browser browser.IBrowser
	gen     Generator
	opts    SearchOptions
	now     func() time.Time
}

// NewSearchCaller creates the search-agent caller.
func NewSearchCaller(l pkgLog.Logger, b browser.IBrowser, gen Generator, opts SearchOptions) *SearchCaller {
	return &SearchCaller{l: l, browser: b, gen: gen, opts: opts, now: time.Now}
}

func (c *SearchCaller) Call(ctx context.Context, query string, analysis model.QueryAnalysis) (string, error) {
	enhanced := analyzer.Enhance(analysis, c.now())
	c.l.Debugf(ctx, "%s: enhanced query %q", logPrefixSearch, enhanced)

	target, err := browser.SearchURL(c.opts.EngineURL, enhanced, c.opts.Sites)
	if err != nil {
		return "", err
	}

	page, err := c.browser.Fetch(ctx, target)
	if err != nil {
		return "", fmt.Errorf("fetch search results: %w", err)
	}

	results, err := browser.ToMarkdown(page.HTML, c.opts.MaxContentChars)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(results) == "" {
		return "", fmt.Errorf("search results page %q is empty", page.URL)
	}

	source := page.Title
	if source == "" {
		source = page.URL
	}
	prompt := fmt.Sprintf(searchPromptTemplate, enhanced, source, results)

	resp, err := c.gen.GenerateContent(ctx, llmprovider.UserPrompt(searchSystemPrompt, prompt, c.opts.Temperature, c.opts.MaxTokens))
	if err != nil {
		return "", fmt.Errorf("summarise search results: %w", err)
	}
	return resp.Text, nil
}
