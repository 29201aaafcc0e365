package capture

import "testing"

func event(channel, title, uri, start string) *CaptureEvent {
	return &CaptureEvent{
		ChannelName: channel,
		EventTitle:  title,
		StartDt:     start,
		EventUris:   []UriType{{Uri: uri, IsCaptureSrc: true}},
	}
}

func TestEventID(t *testing.T) {
	a := event("camel", "The Wild Ones", "https://example.com/event/a", "")
	b := event("camel", "  the wild ones ", "https://example.com/event/a", "")
	if a.ID() != b.ID() {
		t.Error("ID should normalize title case and whitespace")
	}

	c := event("camel", "The Wild Ones", "https://example.com/event/b", "")
	if a.ID() == c.ID() {
		t.Error("events with different URIs share an ID")
	}
}

func TestDiff(t *testing.T) {
	old := event("camel", "Old Show", "https://example.com/event/old", "2026-09-01T20:00:00Z")
	prev := NewSnapshot()
	prev.Update([]*CaptureEvent{old})

	current := []*CaptureEvent{
		event("camel", "Zeta Show", "https://example.com/event/zeta", "2026-09-10T20:00:00Z"),
		old,
		event("camel", "Alpha Show", "https://example.com/event/alpha", "2026-09-10T20:00:00Z"),
		event("camel", "Early Show", "https://example.com/event/early", "2026-09-02T20:00:00Z"),
	}

	fresh := Diff(prev, current)
	if len(fresh) != 3 {
		t.Fatalf("len(fresh) = %d, want 3", len(fresh))
	}

	// Sorted by start date, then title.
	wantOrder := []string{"Early Show", "Alpha Show", "Zeta Show"}
	for i, title := range wantOrder {
		if fresh[i].EventTitle != title {
			t.Errorf("fresh[%d] = %q, want %q", i, fresh[i].EventTitle, title)
		}
	}
}

func TestDiffNilSnapshot(t *testing.T) {
	ev := event("camel", "Only Show", "https://example.com/event/only", "2026-09-01T20:00:00Z")
	fresh := Diff(nil, []*CaptureEvent{ev})
	if len(fresh) != 1 {
		t.Fatalf("len(fresh) = %d, want 1", len(fresh))
	}
}

func TestSnapshotUpdateReplaces(t *testing.T) {
	s := NewSnapshot()
	s.Update([]*CaptureEvent{event("camel", "First", "https://example.com/event/1", "")})
	s.Update([]*CaptureEvent{event("camel", "Second", "https://example.com/event/2", "")})

	if len(s.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(s.Events))
	}
	if s.UpdatedAt == "" {
		t.Error("UpdatedAt not stamped")
	}
}
