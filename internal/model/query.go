package model

// QueryType is a detected intent of a shopping query.
type QueryType string

const (
	QueryTypeComparison     QueryType = "comparison"
	QueryTypeRecommendation QueryType = "recommendation"
	QueryTypeFeatures       QueryType = "features"
	QueryTypePrice          QueryType = "price"
	QueryTypeReviews        QueryType = "reviews"
)

// Category is the product domain a query belongs to.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryAppliances  Category = "appliances"
	CategoryServices    Category = "services"
	CategoryClothing    Category = "clothing"
	CategoryHome        Category = "home"
	CategoryGeneral     Category = "general"
)

// QueryAnalysis is the structured reading of one user query.
type QueryAnalysis struct {
	QueryTypes    []QueryType `json:"query_types"`
	Category      Category    `json:"category"`
	Budget        string      `json:"budget,omitempty"` // numeric text, empty when absent
	OriginalQuery string      `json:"original_query"`
}

// Has reports whether qt was detected.
func (a QueryAnalysis) Has(qt QueryType) bool {
	for _, t := range a.QueryTypes {
		if t == qt {
			return true
		}
	}
	return false
}

// HasBudget reports whether a budget figure was found.
func (a QueryAnalysis) HasBudget() bool {
	return a.Budget != ""
}
