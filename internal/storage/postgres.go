package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// PostgresWriter persists finalized capture events to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection, runs schema setup, and returns a
// ready-to-use writer.
func NewPostgresWriter(dsn string) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS captured_events (
			id           VARCHAR(40) PRIMARY KEY,
			tenant       VARCHAR(100) NOT NULL,
			channel      VARCHAR(100) NOT NULL,
			venue        TEXT         NOT NULL DEFAULT '',
			title        TEXT         NOT NULL,
			start_dt     TIMESTAMPTZ  NOT NULL,
			end_dt       TIMESTAMPTZ,
			ticket_uri   TEXT         NOT NULL DEFAULT '',
			payload      JSONB        NOT NULL,
			captured_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_captured_events_channel ON captured_events(channel);
		CREATE INDEX IF NOT EXISTS idx_captured_events_start   ON captured_events(start_dt);
	`)
	return err
}

// WriteEvents upserts the given events, keyed by their deterministic ID.
func (pw *PostgresWriter) WriteEvents(events []*capture.CaptureEvent) error {
	tx, err := pw.db.Begin()
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO captured_events (id, tenant, channel, venue, title, start_dt, end_dt, ticket_uri, payload)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::timestamptz, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET venue = EXCLUDED.venue, title = EXCLUDED.title,
		    start_dt = EXCLUDED.start_dt, end_dt = EXCLUDED.end_dt,
		    ticket_uri = EXCLUDED.ticket_uri, payload = EXCLUDED.payload
	`)
	if err != nil {
		return fmt.Errorf("postgres: prepare: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("postgres: encoding event %s: %w", ev.EventTitle, err)
		}
		if _, err := stmt.Exec(ev.ID(), ev.TenantName, ev.ChannelName, ev.VenueName,
			ev.EventTitle, ev.StartDt, ev.EndDt, ev.TicketUri, payload); err != nil {
			return fmt.Errorf("postgres: inserting event %s: %w", ev.EventTitle, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
