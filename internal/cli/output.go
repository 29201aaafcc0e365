package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CapturedAt time.Time               `json:"captured_at"`
	Channel    string                  `json:"channel"`
	Events     []*capture.CaptureEvent `json:"events"`
	EventCount int                     `json:"event_count"`
	NewEvents  []*capture.CaptureEvent `json:"new_events"`
	NewCount   int                     `json:"new_count"`
	Log        *capture.CaptureLog     `json:"log"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	fmt.Fprintf(w, "Captured %d events from %s (%d new)\n\n",
		result.EventCount, result.Channel, result.NewCount)

	for _, ev := range result.Events {
		marker := " "
		if isNew(result.NewEvents, ev) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, ev.EventTitle)
		if ev.StartDt != "" {
			if t, err := time.Parse(time.RFC3339, ev.StartDt); err == nil {
				fmt.Fprintf(w, "    %s at %s\n", t.Format("Mon Jan 2 2006, 3:04 PM"), ev.VenueName)
			}
		}
		if ev.TicketCostRaw != "" {
			fmt.Fprintf(w, "    Tickets: %s\n", ev.TicketCostRaw)
		}
		if uri := ev.FirstUri(); uri != "" {
			fmt.Fprintf(w, "    %s\n", uri)
		}
	}

	if verbose || len(result.Log.ErrorLogs) > 0 {
		fmt.Fprintln(w)
		result.Log.Summary(w)
	}

	return nil
}

// isNew reports whether ev is one of the run's newly captured events.
func isNew(fresh []*capture.CaptureEvent, ev *capture.CaptureEvent) bool {
	for _, f := range fresh {
		if f == ev {
			return true
		}
	}
	return false
}
