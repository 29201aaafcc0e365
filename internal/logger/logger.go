// Package logger configures the process-wide slog logger and tracks
// operational metrics for a capture run.
//
// Counters track incrementing values (e.g., pages visited). Timings track
// durations (e.g., per-page navigation) with automatic min/max/average
// aggregation. All operations are thread-safe, so a future parallel runner
// can share one tracker.
package logger

import (
	"log/slog"
	"os"
	"sync"
	"time"
)

// Setup installs the default slog logger at the given verbosity.
func Setup(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// Metrics tracks counters and timings for one capture run.
type Metrics struct {
	mu       sync.Mutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// NewMetrics creates an empty metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

// IncrCounter increments a counter by 1.
func (m *Metrics) IncrCounter(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name]++
}

// AddCounter adds n to a counter.
func (m *Metrics) AddCounter(name string, n int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] += n
}

// RecordTiming records one duration measurement.
func (m *Metrics) RecordTiming(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timings[name] = append(m.timings[name], duration)
}

// TimingStats summarizes the measurements recorded under one name.
type TimingStats struct {
	Count   int           `json:"count"`
	Total   time.Duration `json:"total"`
	Average time.Duration `json:"average"`
	Min     time.Duration `json:"min"`
	Max     time.Duration `json:"max"`
}

// Snapshot returns a copy of the counters and aggregated timing statistics,
// safe to use concurrently with further updates.
func (m *Metrics) Snapshot() (map[string]int64, map[string]TimingStats) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := make(map[string]int64, len(m.counters))
	for k, v := range m.counters {
		counters[k] = v
	}

	timings := make(map[string]TimingStats, len(m.timings))
	for name, durations := range m.timings {
		if len(durations) == 0 {
			continue
		}

		stats := TimingStats{Count: len(durations), Min: durations[0], Max: durations[0]}
		for _, d := range durations {
			stats.Total += d
			if d < stats.Min {
				stats.Min = d
			}
			if d > stats.Max {
				stats.Max = d
			}
		}
		stats.Average = stats.Total / time.Duration(stats.Count)
		timings[name] = stats
	}

	return counters, timings
}

// Log emits the snapshot through slog at debug level.
func (m *Metrics) Log() {
	counters, timings := m.Snapshot()
	for name, v := range counters {
		slog.Debug("run counter", "name", name, "value", v)
	}
	for name, stats := range timings {
		slog.Debug("run timing", "name", name, "count", stats.Count,
			"average", stats.Average, "min", stats.Min, "max", stats.Max)
	}
}
