package capture

import "strings"

// AddEventUri appends u to the event's URI list unless an entry with the same
// exact URI string is already present. No normalization is applied: URIs
// differing only by a trailing slash are distinct. Reports whether the URI
// was added.
func (e *CaptureEvent) AddEventUri(u UriType) bool {
	if u.Uri == "" {
		return false
	}
	for _, existing := range e.EventUris {
		if existing.Uri == u.Uri {
			return false
		}
	}
	e.EventUris = append(e.EventUris, u)
	return true
}

// HasPerformer reports whether the event already lists a performer with the
// given name, compared case-insensitively after trimming.
func (e *CaptureEvent) HasPerformer(name string) bool {
	name = strings.TrimSpace(name)
	for _, p := range e.Performers {
		if strings.EqualFold(strings.TrimSpace(p.PerformerName), name) {
			return true
		}
	}
	return false
}

// AddPerformer appends p unless a performer with the same name (case-
// insensitive, trimmed) is already present. Reports whether it was added.
func (e *CaptureEvent) AddPerformer(p CapturePerformer) bool {
	if p.PerformerName == "" || e.HasPerformer(p.PerformerName) {
		return false
	}
	e.Performers = append(e.Performers, p)
	return true
}

// AddTitleSegment appends name to the ordered title-segment list unless a
// case-insensitive (trimmed) match is already present. The list-page pass
// joins the segments with " / " to form the event title.
func AddTitleSegment(segments []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return segments
	}
	for _, s := range segments {
		if strings.EqualFold(s, name) {
			return segments
		}
	}
	return append(segments, name)
}

// SetIfEmpty assigns the first non-empty candidate to *dst when *dst is
// empty. It encodes the field priority used throughout enrichment:
// list-page value > structured-metadata value > markup-fallback value.
func SetIfEmpty(dst *string, candidates ...string) {
	if *dst != "" {
		return
	}
	for _, c := range candidates {
		if c != "" {
			*dst = c
			return
		}
	}
}
