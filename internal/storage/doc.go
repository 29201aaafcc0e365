// Package storage persists capture run output. A JSON snapshot per channel
// supports run-over-run diffing of newly captured shows, and an optional
// Postgres writer stores finalized events for downstream display.
package storage
