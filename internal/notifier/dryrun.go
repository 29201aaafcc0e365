package notifier

import (
	"fmt"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// DryRunNotifier prints what would be tweeted without actually posting
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the tweets that would be posted
func (n *DryRunNotifier) Notify(events []*capture.CaptureEvent) error {
	for i, ev := range events {
		tweet := formatTweet(ev)
		fmt.Printf("--- Tweet %d/%d ---\n", i+1, len(events))
		fmt.Println(tweet)
		fmt.Printf("\n(Length: %d characters)\n\n", len(tweet))
	}
	return nil
}
