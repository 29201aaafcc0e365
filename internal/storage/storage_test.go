package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rvagigs/venue-capture/internal/capture"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ev := &capture.CaptureEvent{
		ChannelName: "thecamel",
		EventTitle:  "Night Owls",
		StartDt:     "2026-09-05T20:00:00Z",
		EventUris:   []capture.UriType{{Uri: "https://www.thecamel.org/event/night-owls", IsCaptureSrc: true}},
	}

	snap := capture.NewSnapshot()
	snap.Update([]*capture.CaptureEvent{ev})
	if err := s.SaveSnapshot(snap, "thecamel"); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := s.LoadSnapshot("thecamel")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(loaded.Events) != 1 {
		t.Fatalf("len(Events) = %d, want 1", len(loaded.Events))
	}
	got, ok := loaded.Events[ev.ID()]
	if !ok {
		t.Fatalf("loaded snapshot missing event %s", ev.ID())
	}
	if got.EventTitle != "Night Owls" || got.StartDt != ev.StartDt {
		t.Errorf("loaded event = %+v", got)
	}

	// A loaded snapshot must diff cleanly against the same run.
	if fresh := capture.Diff(loaded, []*capture.CaptureEvent{ev}); len(fresh) != 0 {
		t.Errorf("Diff after reload = %d fresh events, want 0", len(fresh))
	}
}

func TestLoadSnapshotMissing(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	snap, err := s.LoadSnapshot("richmondshows")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if snap == nil || len(snap.Events) != 0 {
		t.Errorf("missing snapshot should load empty, got %+v", snap)
	}
}

func TestWriteRunLog(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log := capture.NewLog("rvagigs", "TheCamel")
	log.Errorf("boom")
	if err := s.WriteRunLog(log); err != nil {
		t.Fatalf("WriteRunLog: %v", err)
	}

	path := filepath.Join(dir, "log_thecamel_"+log.RunID+".json")
	if _, err := os.Stat(path); err != nil {
		t.Errorf("run log not written at %s: %v", path, err)
	}
}
