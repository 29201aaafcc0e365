package browser

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page is one rendered page, ready for extraction.
type Page struct {
	HTML      string
	InnerText string
	Doc       *goquery.Document
}

// Navigator loads a URL and returns the rendered page. Implementations own
// timeouts, retries, and rendering; the extraction core never navigates.
type Navigator interface {
	Navigate(ctx context.Context, url string) (*Page, error)
}

// newPage parses raw HTML into a Page. InnerText is derived from the parsed
// document when the renderer did not supply one.
func newPage(html, innerText string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	if innerText == "" {
		innerText = strings.TrimSpace(doc.Text())
	}
	return &Page{HTML: html, InnerText: innerText, Doc: doc}, nil
}
