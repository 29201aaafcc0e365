package capture

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// CaptureLog is the run-scoped diagnostic record. It is created once per run,
// threaded through both extraction phases, and read by the caller at the end.
// Entries are append-only; the log is owned by a single run and has no
// internal synchronization.
type CaptureLog struct {
	RunID               string   `json:"runId"`
	TenantName          string   `json:"tenantName"`
	ChannelName         string   `json:"channelName"`
	LogDt               string   `json:"logDt"`
	TotalCapturedEvents int      `json:"totalCapturedEvents"`
	ErrorLogs           []string `json:"errorLogs"`
	WarningLogs         []string `json:"warningLogs"`
	InfoLogs            []string `json:"infoLogs"`
}

// NewLog creates a CaptureLog for one run of the given tenant/channel.
func NewLog(tenant, channel string) *CaptureLog {
	return &CaptureLog{
		RunID:       uuid.NewString(),
		TenantName:  tenant,
		ChannelName: channel,
		LogDt:       time.Now().UTC().Format(time.RFC3339),
		ErrorLogs:   make([]string, 0),
		WarningLogs: make([]string, 0),
		InfoLogs:    make([]string, 0),
	}
}

// Errorf appends a formatted entry to the error log.
func (l *CaptureLog) Errorf(format string, args ...any) {
	l.ErrorLogs = append(l.ErrorLogs, fmt.Sprintf(format, args...))
}

// Warnf appends a formatted entry to the warning log.
func (l *CaptureLog) Warnf(format string, args ...any) {
	l.WarningLogs = append(l.WarningLogs, fmt.Sprintf(format, args...))
}

// Infof appends a formatted entry to the info log.
func (l *CaptureLog) Infof(format string, args ...any) {
	l.InfoLogs = append(l.InfoLogs, fmt.Sprintf(format, args...))
}

// Summary writes a human-readable digest of the run to w.
func (l *CaptureLog) Summary(w io.Writer) {
	fmt.Fprintf(w, "Capture Log: tenant: %s, channelName: %s, date: %s...\n",
		l.TenantName, l.ChannelName, l.LogDt)
	fmt.Fprintf(w, "totalCapturedEvents: %d, error logs: %d, warnings: %d, info: %d\n",
		l.TotalCapturedEvents, len(l.ErrorLogs), len(l.WarningLogs), len(l.InfoLogs))
	for _, e := range l.ErrorLogs {
		fmt.Fprintf(w, "\tError: %s\n", e)
	}
}
