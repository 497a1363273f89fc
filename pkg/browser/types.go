package browser

import "time"

// Config configures the headless browser.
type Config struct {
	Headless    bool
	UserAgent   string
	PageTimeout time.Duration
}

// Page is a fetched document.
type Page struct {
	URL   string
	Title string
	HTML  string
}
