package browser

import "time"

const (
	DefaultEngineURL       = "https://html.duckduckgo.com/html/"
	DefaultPageTimeout     = 30 * time.Second
	DefaultMaxContentChars = 12000
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	windowWidth  = 1280
	windowHeight = 720
)

// ShoppingSites are the retailers a restricted search is scoped to.
var ShoppingSites = []string{
	"amazon.com",
	"flipkart.com",
	"ebay.com",
	"bestbuy.com",
	"target.com",
	"walmart.com",
	"myntra.com",
	"ajio.com",
}
