package notifier

import (
	"fmt"
	"os"
	"time"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
	"github.com/rvagigs/venue-capture/internal/capture"
)

// TwitterNotifier posts newly captured shows to Twitter
type TwitterNotifier struct {
	client *twitter.Client
}

// NewTwitterNotifier creates a new Twitter notifier using environment variables
// Required environment variables:
// - TWITTER_API_KEY
// - TWITTER_API_SECRET
// - TWITTER_ACCESS_TOKEN
// - TWITTER_ACCESS_SECRET
func NewTwitterNotifier() (*TwitterNotifier, error) {
	apiKey := os.Getenv("TWITTER_API_KEY")
	apiSecret := os.Getenv("TWITTER_API_SECRET")
	accessToken := os.Getenv("TWITTER_ACCESS_TOKEN")
	accessSecret := os.Getenv("TWITTER_ACCESS_SECRET")

	if apiKey == "" || apiSecret == "" || accessToken == "" || accessSecret == "" {
		return nil, fmt.Errorf("missing required Twitter credentials in environment variables")
	}

	config := oauth1.NewConfig(apiKey, apiSecret)
	token := oauth1.NewToken(accessToken, accessSecret)
	httpClient := config.Client(oauth1.NoContext, token)
	client := twitter.NewClient(httpClient)

	return &TwitterNotifier{client: client}, nil
}

// Notify posts one tweet per newly captured show
func (n *TwitterNotifier) Notify(events []*capture.CaptureEvent) error {
	for i, ev := range events {
		tweet := formatTweet(ev)

		_, _, err := n.client.Statuses.Update(tweet, nil)
		if err != nil {
			return fmt.Errorf("failed to post tweet for event %s: %w", ev.EventTitle, err)
		}

		// Rate limiting: wait between tweets
		if i < len(events)-1 {
			time.Sleep(2 * time.Second)
		}
	}

	return nil
}

// formatTweet formats a captured show as a tweet
func formatTweet(ev *capture.CaptureEvent) string {
	tweet := "🎸 Just announced!\n\n"
	tweet += fmt.Sprintf("🎤 %s\n", ev.EventTitle)

	if ev.VenueName != "" {
		tweet += fmt.Sprintf("📍 %s\n", ev.VenueName)
	}

	if ev.StartDt != "" {
		if t, err := time.Parse(time.RFC3339, ev.StartDt); err == nil {
			tweet += fmt.Sprintf("📅 %s\n", t.Format("Mon Jan 2, 3:04 PM"))
		}
	}

	if ev.TicketCostRaw != "" {
		tweet += fmt.Sprintf("🎟 %s\n", ev.TicketCostRaw)
	}

	if uri := ev.TicketUri; uri != "" {
		tweet += fmt.Sprintf("\n🔗 %s\n", uri)
	} else if uri := ev.FirstUri(); uri != "" {
		tweet += fmt.Sprintf("\n🔗 %s\n", uri)
	}

	tweet += "\n#RVA #LiveMusic"

	// Twitter limit is 280 characters
	if len(tweet) > 280 {
		tweet = tweet[:277] + "..."
	}

	return tweet
}
