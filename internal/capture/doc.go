// Package capture defines the canonical record shapes produced by a venue
// capture run: events, performers, ticket amounts, and the run-scoped
// diagnostic log. It also provides the dedup rules shared by both extraction
// phases and the post-filter that drops events without a resolved start date.
package capture
