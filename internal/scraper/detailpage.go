package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rvagigs/venue-capture/internal/capture"
)

var fragmentLink = regexp.MustCompile(`^#\w+`)

// Enricher runs the detail-page pass for one channel. Now is injectable so
// the seven-day window policy can be tested against a fixed date.
type Enricher struct {
	Cfg     ChannelConfig
	Helpers TextHelpers
	Now     func() time.Time
}

// NewEnricher creates an Enricher using the wall clock.
func NewEnricher(cfg ChannelConfig, helpers TextHelpers) *Enricher {
	return &Enricher{Cfg: cfg, Helpers: helpers, Now: time.Now}
}

// Enrich mutates ev in place from the detail page document. The page's full
// text and markup are snapshotted into the event before any extraction. Any
// failure past the container check is converted into a single error log
// entry; the partially enriched event is always retained.
func (e *Enricher) Enrich(doc *goquery.Document, ev *capture.CaptureEvent, curUri string, log *capture.CaptureLog) {
	ev.DetailPageInnerText = strings.TrimSpace(doc.Text())
	if markup, err := doc.Html(); err == nil {
		ev.DetailPageHtml = markup
	}

	container := doc.Find(e.Cfg.Selectors.DetailContainer)
	if container.Length() == 0 {
		log.Errorf("Could not find Detail Container Element for page: %s", curUri)
		return
	}
	if container.Length() > 1 {
		log.Warnf("Expected only 1 Detail Container Element, but there are %d for page: %s", container.Length(), curUri)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Capture Detail Page Exception Thrown: %v at %s", r, curUri)
		}
	}()

	if err := e.enrich(doc, container.First(), ev, curUri, log); err != nil {
		log.Errorf("Capture Detail Page Exception Thrown: %s at %s", err, curUri)
	}
}

// enrich applies the JSON-LD primary extraction, the markup fallbacks, and
// the performer passes, in that order.
func (e *Enricher) enrich(doc *goquery.Document, ctx *goquery.Selection, ev *capture.CaptureEvent, curUri string, log *capture.CaptureLog) error {
	ld, ok := findLDEvent(doc)
	if !ok {
		return errors.New("Could not extract json+ld event data (@Type=='Event')")
	}

	startRaw := ld.str("startDate")
	if startRaw == "" {
		return errors.New("Could not extract startDt from json+ld event data (@Type=='Event')")
	}
	start, ok := parseLDTime(startRaw)
	if !ok {
		return fmt.Errorf("unparseable json+ld startDate %q", startRaw)
	}

	windowRejected := false
	switch e.Cfg.DatePolicy {
	case DateSevenDayWindow:
		if withinSevenDayWindow(e.Now(), start) {
			ev.StartDt = start.UTC().Format(time.RFC3339)
		} else {
			// Cleared on purpose: the post-filter removes the event.
			ev.StartDt = ""
			windowRejected = true
		}
	default:
		ev.StartDt = start.UTC().Format(time.RFC3339)
	}

	if end := parseLDDate(ld.str("endDate")); end != "" {
		ev.EndDt = end
	} else {
		log.Warnf("No endDt from json+ld for page: %s", curUri)
	}

	if img := ld.str("image"); img != "" {
		ev.EventImageUris = append(ev.EventImageUris, img)
	} else {
		log.Warnf("No main image found from json+ld for page: %s", curUri)
	}

	if ev.MinAge == nil && ld.str("typicalAgeRange") == "all_ages" {
		age := 0
		ev.MinAge = &age
	}

	if offers := ld.child("offers"); offers != nil {
		capture.SetIfEmpty(&ev.TicketUri, offers.str("url"))
	}
	if loc := ld.child("location"); loc != nil {
		capture.SetIfEmpty(&ev.VenueName, loc.str("name"))
		if len(ev.VenueAddressLines) == 0 {
			ev.VenueAddressLines = append(ev.VenueAddressLines, e.addressLines(loc)...)
		}
	}
	if door, ok := parseLDTime(ld.str("doorTime")); ok {
		ev.DoorTimeHours = door.Hour()
		ev.DoorTimeMin = door.Minute()
	}

	mainPerformer, err := e.enrichMarkup(ctx, ev, windowRejected, curUri, log)
	if err != nil {
		return err
	}

	e.extractPerformers(ctx, ev, mainPerformer, curUri, log)
	return nil
}

// addressLines concatenates the site family's location sub-fields.
func (e *Enricher) addressLines(loc ldObject) []string {
	if loc.str("@type") != "Place" {
		return nil
	}

	var fields []string
	switch e.Cfg.AddressFields {
	case AddressNameOnly:
		fields = []string{loc.str("address"), loc.str("name")}
	default:
		fields = []string{
			loc.str("streetAddress"),
			loc.str("addressLocality"),
			loc.str("addressRegion"),
			loc.str("postalCode"),
		}
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			lines = append(lines, f)
		}
	}
	return lines
}

// enrichMarkup fills the gaps the JSON-LD block left, using the site
// family's fallback selectors, and returns the declared main-performer name
// for the performer pass. Absent optional nodes log info or warning entries
// and never fail the event; only a door-time parse failure propagates.
func (e *Enricher) enrichMarkup(ctx *goquery.Selection, ev *capture.CaptureEvent, windowRejected bool, curUri string, log *capture.CaptureLog) (string, error) {
	s := e.Cfg.Selectors

	if s.Promoter != "" {
		if p := ctx.Find(s.Promoter).First(); p.Length() > 0 {
			ev.Promoters = append(ev.Promoters, capture.PromoterInfo{
				Name: strings.TrimSpace(p.Text()),
				Uris: []string{},
			})
		}
	}

	if s.VenueInfo != "" && len(ev.VenueAddressLines) == 0 {
		if v := ctx.Find(s.VenueInfo).First(); v.Length() > 0 {
			text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(v.Text()), s.VenueInfoPrefix))
			for _, line := range strings.Split(text, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					ev.VenueAddressLines = append(ev.VenueAddressLines, line)
				}
			}
		} else {
			log.Warnf("No venue info found in %s for page: %s", s.VenueInfo, curUri)
		}
	}
	if s.VenueMeta != "" {
		if m := ctx.Find(s.VenueMeta).First(); m.Length() > 0 {
			if content := strings.TrimSpace(m.AttrOr("content", "")); content != "" && len(ev.VenueAddressLines) == 0 {
				ev.VenueAddressLines = append(ev.VenueAddressLines, content)
			}
		} else {
			log.Warnf("No venue info found in %s for page: %s", s.VenueMeta, curUri)
		}
	}

	// A date the window policy rejected stays cleared; the markup fallback
	// only recovers events whose JSON-LD never resolved a usable date.
	if s.StartDate != "" && ev.StartDt == "" && !windowRejected {
		resolved := false
		if node := ctx.Find(s.StartDate).First(); node.Length() > 0 {
			raw := node.Text()
			if s.StartDateAttr != "" {
				raw = node.AttrOr(s.StartDateAttr, "")
			}
			if t, ok := e.parseMarkupDate(raw); ok {
				ev.StartDt = t.UTC().Format(time.RFC3339)
				resolved = true
			}
		}
		if !resolved {
			log.Errorf("Could not find start date from %s on page: %s", s.StartDate, curUri)
		}
	}

	mainPerformer := ""
	if s.MainPerformer != "" {
		node := ctx.Find(s.MainPerformer).First()
		raw := node.Text()
		if s.MainPerformerAttr != "" {
			raw = node.AttrOr(s.MainPerformerAttr, "")
		}
		if node.Length() > 0 && strings.TrimSpace(raw) != "" {
			mainPerformer = strings.TrimSpace(raw)
		} else {
			log.Warnf("Expecting to find a main performer (%s) for page: %s", s.MainPerformer, curUri)
		}
	}

	if s.DoorTime != "" {
		if node := ctx.Find(s.DoorTime).First(); node.Length() > 0 {
			raw, hour, minute, err := e.Helpers.ParseTime(strings.TrimSpace(node.Text()))
			if err != nil {
				return mainPerformer, fmt.Errorf("parsing door time: %w", err)
			}
			ev.RawDoorTimeStr = raw
			ev.DoorTimeHours = hour
			ev.DoorTimeMin = minute
		} else {
			log.Infof("No door info found in %s for page: %s", s.DoorTime, curUri)
		}
	}

	if s.TicketPrice != "" && ev.TicketCostRaw == "" {
		if node := ctx.Find(s.TicketPrice).First(); node.Length() > 0 {
			raw := strings.TrimSpace(node.Text())
			ev.TicketCostRaw = raw
			ev.TicketCost = e.Helpers.ParseTicketString(raw)
		} else {
			log.Infof("No ticket info found in %s for page: %s", s.TicketPrice, curUri)
		}
	}

	applyLink := func(sel, label string, dst *string) {
		if sel == "" {
			return
		}
		if node := ctx.Find(sel).First(); node.Length() > 0 {
			*dst = node.AttrOr("href", "")
		} else {
			log.Infof("No %s info found in %s for page: %s", label, sel, curUri)
		}
	}
	applyLink(s.FacebookShare, "FB Share", &ev.FacebookShareUri)
	applyLink(s.TwitterShare, "Twitter Share", &ev.TwitterShareUri)
	applyLink(s.ICalLink, "iCal", &ev.ICalUri)
	applyLink(s.GCalLink, "gCal", &ev.GCalUri)

	return mainPerformer, nil
}

// extractPerformers runs the artist-box pass and then the headliner/support
// label pass, which recovers events whose page has no dedicated artist-box
// markup.
func (e *Enricher) extractPerformers(ctx *goquery.Selection, ev *capture.CaptureEvent, mainPerformer, curUri string, log *capture.CaptureLog) {
	s := e.Cfg.Selectors

	boxes := ctx.Find(s.ArtistBox)
	for i := 0; i < boxes.Length(); i++ {
		box := boxes.Eq(i)

		nameNode := box.Find(s.ArtistName).First()
		name := nameNode.Text()
		if s.ArtistNameAttr != "" {
			name = nameNode.AttrOr(s.ArtistNameAttr, "")
		}
		name = strings.TrimSpace(name)
		if nameNode.Length() == 0 || name == "" {
			log.Warnf("No Performer Name in Artist Box for page: %s", curUri)
			continue
		}

		performer := capture.CapturePerformer{
			PerformerName:      name,
			PerformerUris:      make([]string, 0),
			PerformerImageUris: make([]string, 0),
			IsPrimaryPerformer: mainPerformer != "" && strings.EqualFold(mainPerformer, name),
		}

		if s.ArtistLinks != "" {
			links := box.Find(s.ArtistLinks)
			for j := 0; j < links.Length(); j++ {
				href := strings.TrimSpace(links.Eq(j).AttrOr("href", ""))
				if href != "" && !fragmentLink.MatchString(href) {
					performer.PerformerUris = append(performer.PerformerUris, href)
				}
			}
		}

		if s.ArtistBioImage != "" {
			if img := box.Find(s.ArtistBioImage).First(); img.Length() > 0 {
				performer.PerformerImageUris = append(performer.PerformerImageUris, img.AttrOr("src", ""))
			} else {
				log.Infof("No Performer image found in %s for %s for page: %s", s.ArtistBioImage, name, curUri)
			}
		}

		if s.ArtistBio != "" {
			if bio := box.Find(s.ArtistBio).First(); bio.Length() > 0 {
				performer.PerformerDesc = strings.TrimSpace(bio.Text())
			} else {
				log.Infof("No Performer Bio found in %s for %s for page: %s", s.ArtistBio, name, curUri)
			}
		}

		ev.AddPerformer(performer)
	}

	if s.PerformerLabels == "" {
		return
	}
	labels := ctx.Find(s.PerformerLabels)
	for i := 0; i < labels.Length(); i++ {
		name := strings.TrimSpace(labels.Eq(i).Text())
		if name == "" {
			continue
		}
		ev.AddPerformer(capture.CapturePerformer{
			PerformerName:      name,
			PerformerUris:      make([]string, 0),
			PerformerImageUris: make([]string, 0),
			IsPrimaryPerformer: i == 0,
		})
	}
}

// parseMarkupDate parses the date formats seen in detail-page markup,
// attaching the current year to formats that omit one.
func (e *Enricher) parseMarkupDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, ok := parseLDTime(raw); ok {
		return t, true
	}

	layouts := []string{
		"January 2, 2006 3:04 PM",
		"January 2, 2006",
		"Monday, January 2, 2006",
		"Mon, Jan 2, 2006",
		"Jan 2, 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	yearless := []string{"Mon, Jan 2", "Monday, January 2", "Jan 2", "January 2"}
	for _, layout := range yearless {
		if t, err := time.Parse(layout, raw); err == nil {
			now := e.Now()
			return time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}
