package analyzer

import "shopping-assistant/internal/model"

type queryTypeKeywords struct {
	tag      model.QueryType
	keywords []string
}

type categoryKeywords struct {
	tag      model.Category
	keywords []string
}

// Declaration order is significant: query types are reported in this order
// and categories resolve first-match.
var queryTypeTable = []queryTypeKeywords{
	{model.QueryTypeComparison, []string{"vs", "versus", "compare", "difference", "better"}},
	{model.QueryTypeRecommendation, []string{"best", "recommend", "suggest", "good", "top"}},
	{model.QueryTypeFeatures, []string{"features", "specs", "specifications", "details"}},
	{model.QueryTypePrice, []string{"price", "cost", "cheap", "expensive", "budget", "under", "$"}},
	{model.QueryTypeReviews, []string{"review", "rating", "feedback", "opinion"}},
}

var categoryTable = []categoryKeywords{
	{model.CategoryElectronics, []string{"phone", "laptop", "tablet", "tv", "camera", "headphones", "speaker", "iphone", "samsung", "sony"}},
	{model.CategoryAppliances, []string{"washing machine", "refrigerator", "microwave", "air conditioner", "purifier", "dishwasher"}},
	{model.CategoryServices, []string{"netflix", "amazon prime", "spotify", "disney+", "hulu", "streaming"}},
	{model.CategoryClothing, []string{"shirt", "jeans", "dress", "shoes", "jacket", "nike", "adidas"}},
	{model.CategoryHome, []string{"furniture", "decor", "bedding", "kitchen", "bathroom", "sofa", "table"}},
}
