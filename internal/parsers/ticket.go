package parsers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// Matches one "$<amount>" segment plus any trailing qualifier text up to the
// next dollar amount, e.g. "$15 day of show" in "$10 / $15 day of show".
var amountPattern = regexp.MustCompile(`\$\s*(\d+(?:\.\d{1,2})?)([^$]*)`)

// ParseTicketString parses a ticket-price label into an ordered list of
// amounts. Supported forms include "$10", "$10 / $15 day of show",
// "$5 minimum", and "Free" (a zero amount with no qualifier). Input with no
// recognizable amount returns nil.
func ParseTicketString(text string) []capture.TicketAmtInfo {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if strings.Contains(strings.ToLower(trimmed), "free") {
		return []capture.TicketAmtInfo{{Amt: 0, Qualifier: ""}}
	}

	matches := amountPattern.FindAllStringSubmatch(trimmed, -1)
	if len(matches) == 0 {
		return nil
	}

	amounts := make([]capture.TicketAmtInfo, 0, len(matches))
	for _, m := range matches {
		amt, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, capture.TicketAmtInfo{
			Amt:       amt,
			Qualifier: cleanQualifier(m[2]),
		})
	}

	if len(amounts) == 0 {
		return nil
	}
	return amounts
}

// cleanQualifier trims separators and noise from the text trailing an
// amount, leaving qualifiers like "each", "minimum", or "day of show".
func cleanQualifier(s string) string {
	s = strings.Trim(s, " \t\n/-,.")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Helpers is the default TextHelpers implementation handed to the extraction
// functions. It simply delegates to the package-level parsers.
type Helpers struct{}

// ParseTime implements the door-time half of the helper surface.
func (Helpers) ParseTime(text string) (string, int, int, error) {
	return ParseTime(text)
}

// ParseTicketString implements the ticket-price half of the helper surface.
func (Helpers) ParseTicketString(text string) []capture.TicketAmtInfo {
	return ParseTicketString(text)
}
