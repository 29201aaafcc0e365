package capture

import (
	"strings"
	"testing"
)

func TestRemoveMissingDates(t *testing.T) {
	results := NewResults()
	results.Events = append(results.Events,
		&CaptureEvent{
			EventTitle: "Kept Show",
			StartDt:    "2026-09-05T20:00:00Z",
			EventUris:  []UriType{{Uri: "https://example.com/event/kept", IsCaptureSrc: true}},
		},
		&CaptureEvent{
			EventTitle: "Dateless Show",
			EventUris:  []UriType{{Uri: "https://example.com/event/dateless", IsCaptureSrc: true}},
		},
		&CaptureEvent{
			EventTitle: "Dateless Without Link",
		},
	)

	log := NewLog("rvagigs", "test-channel")
	RemoveMissingDates(results, log)

	if len(results.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(results.Events))
	}
	if results.Events[0].EventTitle != "Kept Show" {
		t.Errorf("kept event = %q, want %q", results.Events[0].EventTitle, "Kept Show")
	}

	if len(log.ErrorLogs) != 2 {
		t.Fatalf("len(ErrorLogs) = %d, want 2", len(log.ErrorLogs))
	}
	want := "Removing event because no date could be found: Dateless Show, https://example.com/event/dateless"
	if log.ErrorLogs[0] != want {
		t.Errorf("ErrorLogs[0] = %q, want %q", log.ErrorLogs[0], want)
	}
	// An event with no URIs logs an empty link rather than panicking.
	if !strings.HasSuffix(log.ErrorLogs[1], "Dateless Without Link, ") {
		t.Errorf("ErrorLogs[1] = %q, want empty URI suffix", log.ErrorLogs[1])
	}
}
