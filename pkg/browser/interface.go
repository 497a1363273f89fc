package browser

import "context"

// IBrowser fetches rendered pages.
type IBrowser interface {
	Fetch(ctx context.Context, url string) (Page, error)
	Close()
}
