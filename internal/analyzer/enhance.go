package analyzer

import (
	"fmt"
	"time"

	"shopping-assistant/internal/model"
)

// Enhance appends search hints to the query so a web search favours recent
// product pages, review roundups and price-bounded listings.
func Enhance(a model.QueryAnalysis, now time.Time) string {
	q := a.OriginalQuery

	if a.Category == model.CategoryElectronics {
		q += fmt.Sprintf(" %d latest model", now.Year())
	}
	if a.Has(model.QueryTypeRecommendation) {
		q += " reviews comparison best"
	}
	if a.Has(model.QueryTypePrice) && a.HasBudget() {
		q += fmt.Sprintf(" under $%s price", a.Budget)
	}

	return q
}
