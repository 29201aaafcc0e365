package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// EventWriter is the interface any storage backend must satisfy.
type EventWriter interface {
	WriteEvents(events []*capture.CaptureEvent) error
	Close() error
}

// Storage handles persistence of per-channel capture snapshots.
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// snapshotPath returns the path to a channel's snapshot file.
func (s *Storage) snapshotPath(channel string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", strings.ToLower(channel)))
}

// LoadSnapshot loads a channel's snapshot from disk, returning an empty
// snapshot when none exists yet.
func (s *Storage) LoadSnapshot(channel string) (*capture.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(channel))
	if err != nil {
		if os.IsNotExist(err) {
			return capture.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot capture.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if snapshot.Events == nil {
		snapshot.Events = make(map[string]*capture.CaptureEvent)
	}

	return &snapshot, nil
}

// SaveSnapshot saves a channel's snapshot to disk.
func (s *Storage) SaveSnapshot(snapshot *capture.Snapshot, channel string) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(channel), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// WriteRunLog writes the run's capture log next to the snapshot for audit.
func (s *Storage) WriteRunLog(log *capture.CaptureLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding capture log: %w", err)
	}

	path := filepath.Join(s.dataDir, fmt.Sprintf("log_%s_%s.json", strings.ToLower(log.ChannelName), log.RunID))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing capture log: %w", err)
	}

	return nil
}
