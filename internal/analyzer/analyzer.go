package analyzer

import (
	"regexp"
	"strings"

	"shopping-assistant/internal/model"
)

var budgetPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*(?:\.\d{2})?)`)

// Analyze reads the intent of a shopping query. Matching is plain substring
// search on the lower-cased text, so "top" also hits inside "laptop".
func Analyze(text string) model.QueryAnalysis {
	lower := strings.ToLower(text)

	return model.QueryAnalysis{
		QueryTypes:    detectQueryTypes(lower),
		Category:      detectCategory(lower),
		Budget:        extractBudget(text),
		OriginalQuery: text,
	}
}

func detectQueryTypes(lower string) []model.QueryType {
	var types []model.QueryType
	for _, row := range queryTypeTable {
		if containsAny(lower, row.keywords) {
			types = append(types, row.tag)
		}
	}
	return types
}

func detectCategory(lower string) model.Category {
	for _, row := range categoryTable {
		if containsAny(lower, row.keywords) {
			return row.tag
		}
	}
	return model.CategoryGeneral
}

func extractBudget(text string) string {
	m := budgetPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
