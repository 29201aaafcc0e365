// Package cli implements the command-line interface for venue-capture.
//
// The cli package provides the Cobra-based CLI that drives a full capture
// run: navigate to a channel's calendar page, extract stub events, enrich
// each from its detail page, post-filter, persist, and optionally announce
// newly captured shows. It coordinates the browser, scraper, capture,
// storage, and notifier packages.
package cli
