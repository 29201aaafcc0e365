package capture

import (
	"sort"
	"time"
)

// Snapshot is the set of events known from previous runs of a channel,
// keyed by CaptureEvent.ID. It lets the caller report only newly captured
// shows run over run.
type Snapshot struct {
	Events    map[string]*CaptureEvent `json:"events"`
	UpdatedAt string                   `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Events: make(map[string]*CaptureEvent)}
}

// Diff compares the current run's events against a previous snapshot and
// returns the events not seen before, sorted by start date then title.
func Diff(previous *Snapshot, current []*CaptureEvent) []*CaptureEvent {
	if previous == nil {
		previous = NewSnapshot()
	}

	fresh := make([]*CaptureEvent, 0)
	for _, ev := range current {
		if _, exists := previous.Events[ev.ID()]; !exists {
			fresh = append(fresh, ev)
		}
	}

	sort.Slice(fresh, func(i, j int) bool {
		if fresh[i].StartDt != fresh[j].StartDt {
			return fresh[i].StartDt < fresh[j].StartDt
		}
		return fresh[i].EventTitle < fresh[j].EventTitle
	})

	return fresh
}

// Update replaces the snapshot contents with the current run's events and
// stamps the update time.
func (s *Snapshot) Update(current []*CaptureEvent) {
	s.Events = make(map[string]*CaptureEvent, len(current))
	for _, ev := range current {
		s.Events[ev.ID()] = ev
	}
	s.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
