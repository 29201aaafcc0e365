package notifier

import (
	"github.com/rvagigs/venue-capture/internal/capture"
)

// Notifier defines the interface for announcing newly captured shows.
type Notifier interface {
	// Notify posts announcements for the given events
	Notify(events []*capture.CaptureEvent) error
}
