// Package parsers provides the pure text parsers shared by the extraction
// phases: door-time labels and ticket-price labels. Both return errors or
// empty results on unparseable input and never panic, since callers treat
// an escaped failure as event-wide.
package parsers
