package fallback

import "shopping-assistant/internal/model"

type responseType string

const (
	responseComparison     responseType = "comparison"
	responseRecommendation responseType = "recommendation"
	responseDefault        responseType = "default"
)

const electronicsComparison = `🔍 **Electronics Comparison Tips:**

For comparing electronics, I recommend checking:
• **GSMArena** - For phone specifications and comparisons
• **NotebookCheck** - Comprehensive laptop reviews and benchmarks
• **RTings** - In-depth TV, monitor, and audio equipment testing
• **TechRadar & The Verge** - Latest reviews and buying guides

**Key factors to compare:**
• Performance benchmarks and real-world usage
• Battery life and efficiency
• Build quality and durability
• Price-to-performance ratio
• Warranty and customer support`

const electronicsRecommendation = `🏆 **Electronics Buying Guide:**

**Before buying electronics:**
• Set a clear budget range
• Define your primary use cases
• Check recent reviews from multiple sources
• Compare specifications that matter to you
• Look for seasonal sales and discounts

**Reliable brands to consider:**
• **Phones:** Apple, Samsung, Google, OnePlus
• **Laptops:** Apple, Dell, Lenovo, ASUS, HP
• **Audio:** Sony, Bose, Sennheiser, Audio-Technica`

const electronicsDefault = `💡 **Electronics Shopping Tips:**

• Check manufacturer websites for official specs
• Read both expert reviews and user feedback
• Compare prices across multiple retailers
• Consider refurbished options for savings
• Check warranty terms and return policies
• Look for bundle deals and accessories`

const appliancesComparison = `🏠 **Appliance Comparison Guide:**

**Research resources:**
• **Consumer Reports** - Reliability and performance ratings
• **Energy Star** - Energy efficiency comparisons
• **Home improvement stores** - Customer reviews and ratings

**Key comparison factors:**
• Energy efficiency ratings (save on utilities)
• Capacity and size for your space
• Warranty coverage and service network
• User reviews for long-term reliability`

const appliancesRecommendation = `✨ **Smart Appliance Shopping:**

**Essential considerations:**
• Measure your space before shopping
• Check energy efficiency ratings (save money long-term)
• Read reliability reviews and ratings
• Consider smart features vs. simplicity
• Factor in installation and delivery costs

**Top appliance brands:**
• **Refrigerators:** Samsung, LG, Whirlpool
• **Washing Machines:** LG, Samsung, Bosch
• **Kitchen:** KitchenAid, Bosch, GE`

const appliancesDefault = `🔧 **Appliance Shopping Essentials:**

• Measure your space carefully
• Check energy efficiency ratings
• Read long-term reliability reviews
• Compare warranty terms
• Consider professional installation needs
• Look for seasonal sales events`

const servicesComparison = `📺 **Streaming Service Comparison:**

**Compare these factors:**
• **Content library** - Movies, shows, originals
• **Pricing tiers** - Monthly costs and features
• **Video quality** - 4K, HDR support
• **Device compatibility** - Your TV, phone, etc.
• **Simultaneous streams** - How many devices
• **Offline downloads** - For mobile viewing

**Popular services:**
• **Netflix** - Largest content library, strong originals
• **Amazon Prime** - Includes shopping benefits
• **Disney+** - Family content, Marvel, Star Wars
• **HBO Max** - Premium content and movies`

const servicesDefault = `🎬 **Service Selection Tips:**

• Try free trials before committing
• Check what content you actually watch
• Consider bundle deals (Disney+, Hulu, ESPN+)
• Look for annual subscription discounts
• Review and cancel unused subscriptions regularly`

var catalog = map[model.Category]map[responseType]string{
	model.CategoryElectronics: {
		responseComparison:     electronicsComparison,
		responseRecommendation: electronicsRecommendation,
		responseDefault:        electronicsDefault,
	},
	model.CategoryAppliances: {
		responseComparison:     appliancesComparison,
		responseRecommendation: appliancesRecommendation,
		responseDefault:        appliancesDefault,
	},
	model.CategoryServices: {
		responseComparison: servicesComparison,
		responseDefault:    servicesDefault,
	},
}
