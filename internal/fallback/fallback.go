package fallback

import (
	"shopping-assistant/internal/model"
)

const preamble = "⚠️ **Currently using offline knowledge** - For the most current information, please check official websites."

const postscript = `💡 **General Shopping Tips:**
• Check official manufacturer websites for accurate specs
• Compare prices across multiple retailers (Amazon, Best Buy, etc.)
• Read recent user reviews and expert opinions
• Consider warranty, return policy, and customer support
• Look for seasonal sales and discount codes

Would you like me to help you with a more specific aspect of your query?`

const apology = `😕 **Sorry, I couldn't put together an answer for that one.**

🔄 **Alternative Suggestions:**
• Try rephrasing your question more simply
• Ask about specific product features instead of comparisons
• Check the manufacturer's official website
• Visit retailer websites for current pricing and availability

**Example queries that work well:**
• "Compare iPhone 15 vs Samsung Galaxy S24"
• "Best laptop for programming under $1000"
• "Netflix vs Amazon Prime features"

Would you like to try a different question?`

// Lookup returns offline advice for the category, wrapped in the standard
// preamble and tips. It never returns an empty string.
func Lookup(category model.Category, queryTypes []model.QueryType) string {
	return preamble + "\n\n" + block(category, pickResponseType(queryTypes)) + "\n\n" + postscript
}

// Apology is shown when a turn fails for a reason other than the external call.
func Apology() string {
	return apology
}

func pickResponseType(types []model.QueryType) responseType {
	a := model.QueryAnalysis{QueryTypes: types}
	switch {
	case a.Has(model.QueryTypeComparison):
		return responseComparison
	case a.Has(model.QueryTypeRecommendation):
		return responseRecommendation
	default:
		return responseDefault
	}
}

func block(category model.Category, rt responseType) string {
	blocks, ok := catalog[category]
	if !ok {
		return electronicsDefault
	}
	if text, ok := blocks[rt]; ok {
		return text
	}
	return blocks[responseDefault]
}
