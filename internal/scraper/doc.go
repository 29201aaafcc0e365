// Package scraper implements the two-phase extraction pipeline: a list-page
// pass that discovers stub events on a venue's calendar page, and a
// detail-page pass that enriches each stub from the page's JSON-LD "Event"
// block with markup fallbacks. The package consumes already-parsed goquery
// documents; navigation and rendering belong to the caller (see the browser
// package). Every failure is converted into a CaptureLog entry, so nothing
// escapes a single page pass or a single event's enrichment.
package scraper
