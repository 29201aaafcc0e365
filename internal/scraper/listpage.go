package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rvagigs/venue-capture/internal/capture"
)

// ParseListPage walks the calendar page's day containers and appends one stub
// event per discovered event block to results. Failures are converted into a
// single error log entry; the stubs accumulated before the failure are kept.
//
// Known gap: a malformed block aborts extraction of all subsequent blocks in
// the same call without a per-block log entry. The detail-page pass isolates
// per event; this pass deliberately does not.
func ParseListPage(doc *goquery.Document, cfg ChannelConfig, results *capture.CaptureResults, log *capture.CaptureLog) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Capture Main Page Exception Thrown: %v", r)
		}
	}()

	var venueRe *regexp.Regexp
	if cfg.VenuePattern != "" {
		venueRe = regexp.MustCompile("(?i)" + cfg.VenuePattern)
	}

	s := cfg.Selectors
	days := doc.Find(s.DayBlock)
	for di := 0; di < days.Length(); di++ {
		blocks := days.Eq(di).Find(s.EventBlock)
		for bi := 0; bi < blocks.Length(); bi++ {
			block := blocks.Eq(bi)
			ev := newStubEvent(cfg)

			titleSegments := collectHeadliners(block, cfg, ev)
			if venueRe != nil && s.VenueLabel != "" {
				label := block.Find(s.VenueLabel).First()
				if label.Length() > 0 && venueRe.MatchString(label.Text()) {
					ev.VenueName = cfg.VenueName
				}
			}
			titleSegments = collectSupports(block, cfg, ev, titleSegments)
			ev.EventTitle = strings.Join(titleSegments, " / ")

			if s.TicketLink != "" {
				if a := block.Find(s.TicketLink).First(); a.Length() > 0 {
					ev.TicketUri = strings.TrimSpace(a.AttrOr("href", ""))
					if ev.TicketUri != "" {
						ev.AddEventUri(capture.UriType{Uri: ev.TicketUri, IsCaptureSrc: false})
					}
				}
			}

			switch cfg.CostStrategy {
			case CostFreeMarker:
				if s.FreeMarker != "" && block.Find(s.FreeMarker).Length() > 0 {
					ev.TicketCostRaw = "Free"
					ev.TicketCost = append(ev.TicketCost, capture.TicketAmtInfo{Amt: 0, Qualifier: ""})
				}
			case CostNode:
				applyCostNode(block, s.CostNode, ev, log)
			}

			if s.AllAgesMarker != "" && block.Find(s.AllAgesMarker).Length() > 0 {
				age := 0
				ev.MinAge = &age
			} else if s.Over21Marker != "" && block.Find(s.Over21Marker).Length() > 0 {
				age := 21
				ev.MinAge = &age
			}

			results.Events = append(results.Events, ev)
		}
	}
}

// newStubEvent creates an event carrying the channel's configured defaults.
func newStubEvent(cfg ChannelConfig) *capture.CaptureEvent {
	ev := &capture.CaptureEvent{
		TenantName:        cfg.TenantName,
		ChannelName:       cfg.ChannelName,
		ChannelImage:      cfg.ChannelImage,
		ChannelBaseUri:    cfg.PrimaryUri,
		VenueName:         cfg.VenueName,
		Neighborhood:      cfg.Neighborhood,
		EventUris:         make([]capture.UriType, 0),
		EventImageUris:    make([]string, 0),
		TicketCost:        make([]capture.TicketAmtInfo, 0),
		VenueAddressLines: append([]string(nil), cfg.VenueAddress...),
		VenueContactInfo:  make([]capture.ContactInfoItem, 0),
		EventContactInfo:  make([]capture.ContactInfoItem, 0),
		Performers:        make([]capture.CapturePerformer, 0),
		Promoters:         make([]capture.PromoterInfo, 0),
		MiscDetail:        make([]string, 0),
		UnparsedDetail:    make([]string, 0),
	}
	if cfg.VenuePhone != "" {
		ev.VenueContactInfo = append(ev.VenueContactInfo, capture.ContactInfoItem{
			Item:     cfg.VenuePhone,
			ItemType: capture.ContactPhone,
		})
	}
	return ev
}

// collectHeadliners extracts the headliner links of one event block into the
// event's URI list and returns the ordered title segments. A headliner
// container without its anchor is malformed and aborts the pass (recovered by
// the ParseListPage boundary).
func collectHeadliners(block *goquery.Selection, cfg ChannelConfig, ev *capture.CaptureEvent) []string {
	segments := make([]string, 0, 2)
	s := cfg.Selectors

	links := block.Find(s.HeadlinerLink)
	for i := 0; i < links.Length(); i++ {
		anchor := links.Eq(i).Find(s.HeadlinerAnchor).First()
		if anchor.Length() == 0 {
			panic(fmt.Sprintf("no headliner anchor %q in event block", s.HeadlinerAnchor))
		}

		uri := capture.UriType{Uri: resolveHref(anchor.AttrOr("href", ""), cfg), IsCaptureSrc: true}
		ev.AddEventUri(uri)

		name := anchor.Text()
		if s.HeadlinerNameAttr != "" {
			name = anchor.AttrOr(s.HeadlinerNameAttr, "")
		}
		segments = capture.AddTitleSegment(segments, strings.TrimSpace(name))
	}
	return segments
}

// collectSupports extracts supporting-act links using the same dedup rules,
// appended after the headliners.
func collectSupports(block *goquery.Selection, cfg ChannelConfig, ev *capture.CaptureEvent, segments []string) []string {
	if cfg.Selectors.SupportLink == "" {
		return segments
	}

	anchors := block.Find(cfg.Selectors.SupportLink)
	for i := 0; i < anchors.Length(); i++ {
		a := anchors.Eq(i)
		ev.AddEventUri(capture.UriType{Uri: resolveHref(a.AttrOr("href", ""), cfg), IsCaptureSrc: true})
		segments = capture.AddTitleSegment(segments, strings.TrimSpace(a.Text()))
	}
	return segments
}

// applyCostNode implements the cost-node strategy: read a "$<number>" text
// node, defaulting to a free event with a logged warning when the node or
// its parse is absent.
func applyCostNode(block *goquery.Selection, sel string, ev *capture.CaptureEvent, log *capture.CaptureLog) {
	span := block.Find(sel).First()
	raw := strings.TrimSpace(span.Text())

	amt, err := parseCostText(raw)
	if span.Length() == 0 || err != nil {
		if span.Length() == 0 {
			err = fmt.Errorf("no cost node matching %q", sel)
		}
		log.Warnf("No Ticket Cost: %v", err)
		ev.TicketCostRaw = "Free"
		ev.TicketCost = append(ev.TicketCost, capture.TicketAmtInfo{Amt: 0, Qualifier: ""})
		return
	}

	ev.TicketCostRaw = raw
	ev.TicketCost = append(ev.TicketCost, capture.TicketAmtInfo{Amt: amt, Qualifier: ""})
}

// parseCostText parses a bare "$<number>" label.
func parseCostText(raw string) (float64, error) {
	stripped := strings.TrimSpace(strings.TrimPrefix(raw, "$"))
	return strconv.ParseFloat(stripped, 64)
}

// resolveHref trims an href and, for channels with relative calendar links,
// prefixes the channel's domain.
func resolveHref(href string, cfg ChannelConfig) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if cfg.ResolveRelativeLinks && strings.HasPrefix(href, "/") {
		return cfg.DomainName + href
	}
	return href
}
