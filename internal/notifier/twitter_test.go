package notifier

import (
	"strings"
	"testing"

	"github.com/rvagigs/venue-capture/internal/capture"
)

func TestFormatTweet(t *testing.T) {
	ev := &capture.CaptureEvent{
		EventTitle:    "Night Owls / River City Trio",
		VenueName:     "The Camel",
		StartDt:       "2026-09-05T20:00:00Z",
		TicketCostRaw: "$12",
		TicketUri:     "https://tickets.example.com/night-owls",
		EventUris:     []capture.UriType{{Uri: "https://www.thecamel.org/event/night-owls", IsCaptureSrc: true}},
	}

	tweet := formatTweet(ev)

	for _, want := range []string{
		"Night Owls / River City Trio",
		"The Camel",
		"Sat Sep 5, 8:00 PM",
		"$12",
		"https://tickets.example.com/night-owls",
		"#RVA #LiveMusic",
	} {
		if !strings.Contains(tweet, want) {
			t.Errorf("tweet missing %q:\n%s", want, tweet)
		}
	}
}

func TestFormatTweetFallbackLink(t *testing.T) {
	ev := &capture.CaptureEvent{
		EventTitle: "Night Owls",
		EventUris:  []capture.UriType{{Uri: "https://www.thecamel.org/event/night-owls", IsCaptureSrc: true}},
	}

	tweet := formatTweet(ev)
	if !strings.Contains(tweet, "https://www.thecamel.org/event/night-owls") {
		t.Errorf("tweet should fall back to the event URI:\n%s", tweet)
	}
}

func TestFormatTweetLength(t *testing.T) {
	ev := &capture.CaptureEvent{
		EventTitle: strings.Repeat("Very Long Band Name / ", 20),
		VenueName:  "The Broadberry",
		TicketUri:  "https://tickets.example.com/a-very-long-ticket-path-for-a-very-long-show",
	}

	tweet := formatTweet(ev)
	if len(tweet) > 280 {
		t.Errorf("tweet length = %d, want <= 280", len(tweet))
	}
	if !strings.HasSuffix(tweet, "...") {
		t.Errorf("truncated tweet should end with ellipsis:\n%s", tweet)
	}
}
