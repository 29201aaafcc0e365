package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches "7:30 PM", "7PM", "7 p.m.", "19:30" inside a longer label like
// "Doors at 7:30 PM".
var timePattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(a\.?m\.?|p\.?m\.?)?`)

// ParseTime extracts a clock time from a free-text door label such as
// "Doors at 7:30 PM". It returns the raw label, the hour (0-23), and the
// minute. Input with no recognizable time yields an error.
func ParseTime(text string) (raw string, hour, minute int, err error) {
	raw = strings.TrimSpace(text)
	if raw == "" {
		return raw, 0, 0, fmt.Errorf("empty door time label")
	}

	matches := timePattern.FindAllStringSubmatch(raw, -1)
	for _, m := range matches {
		h, convErr := strconv.Atoi(m[1])
		if convErr != nil {
			continue
		}

		min := 0
		if m[2] != "" {
			min, convErr = strconv.Atoi(m[2])
			if convErr != nil || min > 59 {
				continue
			}
		}

		meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))
		switch meridiem {
		case "pm":
			if h < 1 || h > 12 {
				continue
			}
			if h != 12 {
				h += 12
			}
		case "am":
			if h < 1 || h > 12 {
				continue
			}
			if h == 12 {
				h = 0
			}
		default:
			// 24-hour reading; only trust it when minutes are explicit,
			// otherwise a stray digit like the "7" in "Stage 7" would match.
			if m[2] == "" || h > 23 {
				continue
			}
		}

		return raw, h, min, nil
	}

	return raw, 0, 0, fmt.Errorf("no time found in %q", raw)
}
