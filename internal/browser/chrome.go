package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chromedp/chromedp"
)

// ChromeNavigator renders pages in a headless Chrome session. One allocator
// is shared across navigations so a single browser is reused for the whole
// run, matching the sequential one-page-at-a-time capture flow.
type ChromeNavigator struct {
	allocCtx     context.Context
	cancelAlloc  context.CancelFunc
	timeout      time.Duration
	waitSelector string
	maxRetries   uint64
}

// ChromeOptions configures a ChromeNavigator.
type ChromeOptions struct {
	Timeout      time.Duration
	WaitSelector string
	MaxRetries   uint64
	UserAgent    string
}

// NewChromeNavigator starts a headless Chrome allocator. Close must be
// called when the run finishes.
func NewChromeNavigator(opts ChromeOptions) *ChromeNavigator {
	if opts.Timeout == 0 {
		opts.Timeout = 45 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "venue-capture/1.0 (github.com/rvagigs/venue-capture)"
	}

	execOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(opts.UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), execOpts...)

	return &ChromeNavigator{
		allocCtx:     allocCtx,
		cancelAlloc:  cancel,
		timeout:      opts.Timeout,
		waitSelector: opts.WaitSelector,
		maxRetries:   opts.MaxRetries,
	}
}

// Navigate renders the page and returns its document body markup and inner
// text. Navigation failures are retried with exponential backoff.
func (n *ChromeNavigator) Navigate(ctx context.Context, url string) (*Page, error) {
	var html, innerText string

	op := func() error {
		tabCtx, cancelTab := chromedp.NewContext(n.allocCtx)
		defer cancelTab()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, n.timeout)
		defer cancelTimeout()

		actions := []chromedp.Action{chromedp.Navigate(url)}
		if n.waitSelector != "" {
			actions = append(actions, chromedp.WaitVisible(n.waitSelector, chromedp.ByQuery))
		} else {
			actions = append(actions, chromedp.Sleep(2*time.Second))
		}
		actions = append(actions,
			chromedp.OuterHTML("html", &html, chromedp.ByQuery),
			chromedp.Evaluate(`document.body.innerText`, &innerText),
		)

		return chromedp.Run(tabCtx, actions...)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), n.maxRetries), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}

	return newPage(html, innerText)
}

// Close shuts down the browser.
func (n *ChromeNavigator) Close() {
	n.cancelAlloc()
}
