package logger

import (
	"testing"
	"time"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.IncrCounter("pages.detail")
	m.IncrCounter("pages.detail")
	m.AddCounter("events.captured", 5)

	counters, _ := m.Snapshot()

	if counters["pages.detail"] != 2 {
		t.Errorf("pages.detail = %d, want 2", counters["pages.detail"])
	}
	if counters["events.captured"] != 5 {
		t.Errorf("events.captured = %d, want 5", counters["events.captured"])
	}
}

func TestMetricsTimings(t *testing.T) {
	m := NewMetrics()

	m.RecordTiming("navigate.detail", 100*time.Millisecond)
	m.RecordTiming("navigate.detail", 300*time.Millisecond)

	_, timings := m.Snapshot()

	stats, ok := timings["navigate.detail"]
	if !ok {
		t.Fatal("expected navigate.detail timing stats")
	}
	if stats.Count != 2 {
		t.Errorf("count = %d, want 2", stats.Count)
	}
	if stats.Min != 100*time.Millisecond {
		t.Errorf("min = %v, want 100ms", stats.Min)
	}
	if stats.Max != 300*time.Millisecond {
		t.Errorf("max = %v, want 300ms", stats.Max)
	}
	if stats.Average != 200*time.Millisecond {
		t.Errorf("average = %v, want 200ms", stats.Average)
	}
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncrCounter("a")

	counters, _ := m.Snapshot()
	counters["a"] = 99

	fresh, _ := m.Snapshot()
	if fresh["a"] != 1 {
		t.Errorf("snapshot mutation leaked back: got %d, want 1", fresh["a"])
	}
}
