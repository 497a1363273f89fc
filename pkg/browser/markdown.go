package browser

import (
	"fmt"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var multipleNewlines = regexp.MustCompile(`\n{3,}`)

// ToMarkdown converts page HTML to markdown, collapsing blank runs and
// cutting the result to maxChars runes. maxChars <= 0 disables the cut.
func ToMarkdown(html string, maxChars int) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert html: %w", err)
	}

	markdown = multipleNewlines.ReplaceAllString(markdown, "\n\n")
	markdown = strings.TrimSpace(markdown)

	if maxChars > 0 {
		runes := []rune(markdown)
		if len(runes) > maxChars {
			markdown = string(runes[:maxChars])
		}
	}
	return markdown, nil
}
