package browser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "venue-capture/1.0 (github.com/rvagigs/venue-capture)"

// HTTPNavigator fetches pages over plain HTTP for venues whose calendars are
// served as static markup.
type HTTPNavigator struct {
	client *http.Client
}

// NewHTTPNavigator creates an HTTPNavigator with a sane timeout.
func NewHTTPNavigator() *HTTPNavigator {
	return &HTTPNavigator{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Navigate fetches the URL and parses the response body.
func (n *HTTPNavigator) Navigate(ctx context.Context, url string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return newPage(string(body), "")
}
