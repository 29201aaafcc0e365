package scraper

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ldObject is one decoded JSON-LD block.
type ldObject map[string]any

// findLDEvent scans the document's ld+json script blocks and returns the
// first object typed "Event". Blocks that are arrays contribute their first
// element. Reports false when no Event object exists.
func findLDEvent(doc *goquery.Document) (ldObject, bool) {
	var found ldObject

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, script *goquery.Selection) bool {
		raw := strings.TrimSpace(script.Text())
		if raw == "" {
			return true
		}

		var payload any
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			return true
		}
		if arr, ok := payload.([]any); ok {
			if len(arr) == 0 {
				return true
			}
			payload = arr[0]
		}

		obj, ok := payload.(map[string]any)
		if !ok {
			return true
		}
		if t, _ := obj["@type"].(string); t == "Event" {
			found = ldObject(obj)
			return false
		}
		return true
	})

	return found, found != nil
}

// str returns the string value of a top-level field, or "".
func (o ldObject) str(key string) string {
	s, _ := o[key].(string)
	return strings.TrimSpace(s)
}

// child returns a nested object field, e.g. "location" or "offers".
func (o ldObject) child(key string) ldObject {
	m, _ := o[key].(map[string]any)
	return ldObject(m)
}

// parseLDTime parses the date formats seen in venue JSON-LD blocks.
func parseLDTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseLDDate is parseLDTime rendered as an ISO 8601 UTC string, "" when
// unparseable.
func parseLDDate(value string) string {
	t, ok := parseLDTime(value)
	if !ok {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
