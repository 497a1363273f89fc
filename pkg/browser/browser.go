package browser

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/chromedp"
)

// Browser drives one long-lived Chrome tab. Navigations are serialised.
type Browser struct {
	cfg         Config
	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.Mutex
}

// New starts Chrome and returns a ready browser. Call Close when done.
func New(cfg Config) (*Browser, error) {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.PageTimeout <= 0 {
		cfg.PageTimeout = DefaultPageTimeout
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.WindowSize(windowWidth, windowHeight),
		chromedp.UserAgent(cfg.UserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	// Empty run launches the browser process.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to initialize browser: %w", err)
	}

	return &Browser{
		cfg:         cfg,
		allocCancel: allocCancel,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Fetch navigates to url and returns the page title and body HTML.
// Cancelling ctx aborts the navigation.
func (b *Browser) Fetch(ctx context.Context, url string) (Page, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	runCtx, cancel := context.WithTimeout(b.ctx, b.cfg.PageTimeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	page := Page{URL: url}
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Title(&page.Title),
		chromedp.OuterHTML("body", &page.HTML, chromedp.ByQuery),
	)
	if err != nil {
		if ctx.Err() != nil {
			return Page{}, ctx.Err()
		}
		return Page{}, fmt.Errorf("navigation failed: %w", err)
	}

	return page, nil
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancel()
	b.allocCancel()
}
