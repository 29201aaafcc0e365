package scraper

import (
	"time"

	"github.com/rvagigs/venue-capture/internal/capture"
)

// TextHelpers is the helper surface injected into the extraction functions.
// The scraper depends only on this interface; the parsers package provides
// the default implementation.
type TextHelpers interface {
	// ParseTime parses a door-time label into (raw, hour 0-23, minute).
	ParseTime(text string) (raw string, hour, minute int, err error)
	// ParseTicketString parses a ticket-price label into ordered amounts.
	ParseTicketString(text string) []capture.TicketAmtInfo
}

// CostStrategy selects how the list-page pass derives ticket cost. The site
// families do this in deliberately different ways, so the variants are kept
// separate rather than merged into one conditional algorithm.
type CostStrategy int

const (
	// CostFreeMarker checks for a free-admission marker node and leaves
	// priced events for the detail page.
	CostFreeMarker CostStrategy = iota
	// CostNode reads a "$<number>" text node per event block, falling back
	// to "Free" with a logged warning when the node or its parse is absent.
	CostNode
)

// DatePolicy selects how the detail-page pass treats the JSON-LD start date.
type DatePolicy int

const (
	// DateAccept uses the structured start date directly.
	DateAccept DatePolicy = iota
	// DateSevenDayWindow additionally requires the start date to pass the
	// rolling seven-day acceptance walk; failing events get their start
	// date cleared and are removed by the post-filter.
	DateSevenDayWindow
)

// AddressFields selects which sub-fields of the JSON-LD location object are
// concatenated into the venue address lines.
type AddressFields int

const (
	// AddressPlaceFields pulls streetAddress, addressLocality,
	// addressRegion, and postalCode.
	AddressPlaceFields AddressFields = iota
	// AddressNameOnly pulls the flat address string plus the place name.
	AddressNameOnly
)

// Selectors is the per-site-family CSS selector set. An empty selector means
// the site family has no such element and the step is skipped without a log
// entry.
type Selectors struct {
	// List page.
	DayBlock          string
	EventBlock        string
	HeadlinerLink     string
	HeadlinerAnchor   string
	HeadlinerNameAttr string // "" reads the anchor text, otherwise an attribute
	SupportLink       string
	VenueLabel        string
	TicketLink        string
	FreeMarker        string
	CostNode          string
	AllAgesMarker     string
	Over21Marker      string

	// Detail page.
	DetailContainer   string
	Promoter          string
	VenueInfo         string
	VenueInfoPrefix   string // label text stripped from the venue info block
	VenueMeta         string
	StartDate         string
	StartDateAttr     string // "" reads text, otherwise an attribute
	MainPerformer     string
	MainPerformerAttr string
	DoorTime          string
	TicketPrice       string
	FacebookShare     string
	TwitterShare      string
	ICalLink          string
	GCalLink          string
	ArtistBox         string
	ArtistName        string
	ArtistNameAttr    string
	ArtistLinks       string
	ArtistBioImage    string
	ArtistBio         string
	PerformerLabels   string
}

// NavSettings is opaque to the extraction core; the browser collaborator
// interprets it.
type NavSettings struct {
	Timeout      time.Duration
	WaitSelector string
	Static       bool
}

// ChannelConfig is the per-channel configuration bundle passed into both
// extraction phases.
type ChannelConfig struct {
	TenantName   string
	ChannelName  string
	ChannelImage string
	PrimaryUri   string
	ListPageUri  string
	// DomainName prefixes relative hrefs when ResolveRelativeLinks is set.
	DomainName           string
	ResolveRelativeLinks bool

	VenueName    string
	VenueAddress []string
	VenuePhone   string
	Neighborhood string
	// VenuePattern is a case-insensitive regexp; when the venue-label node's
	// text matches it, the configured VenueName overrides the stub's value.
	VenuePattern string

	CostStrategy  CostStrategy
	DatePolicy    DatePolicy
	AddressFields AddressFields
	Selectors     Selectors
	Nav           NavSettings
}

// RichmondShowsConfig returns the preset for the richmondshows site family.
func RichmondShowsConfig() ChannelConfig {
	return ChannelConfig{
		TenantName:           "rvagigs",
		ChannelName:          "richmondshows",
		PrimaryUri:           "https://www.richmondshows.com",
		ListPageUri:          "https://www.richmondshows.com/calendar",
		DomainName:           "https://www.richmondshows.com",
		ResolveRelativeLinks: true,
		VenueName:            "The Broadberry",
		VenueAddress:         []string{"2729 W Broad St", "Richmond", "VA", "23220"},
		VenuePhone:           "(804) 353-1888",
		Neighborhood:         "The Fan",
		VenuePattern:         "broadberry",
		CostStrategy:         CostFreeMarker,
		DatePolicy:           DateAccept,
		AddressFields:        AddressPlaceFields,
		Selectors: Selectors{
			DayBlock:        "div.calendar-day",
			EventBlock:      "div.event-listing",
			HeadlinerLink:   ".rhpSingleEvent",
			HeadlinerAnchor: "#eventTitle",
			SupportLink:     "h2.supports a",
			VenueLabel:      "h2.venue.location",
			TicketLink:      "h3.ticket-link a",
			FreeMarker:      "h3.free",
			AllAgesMarker:   "h2.age-restriction.all-ages",
			Over21Marker:    "h2.age-restriction.over-21",

			DetailContainer: "div.entry-content article.event-detail",
			Promoter:        "h2.topline-info",
			VenueInfo:       "div.venue-info",
			VenueInfoPrefix: "Venue Information:",
			StartDate:       "span.start.dtstart span.value-title",
			StartDateAttr:   "title",
			MainPerformer:   ".event-info .headliners",
			DoorTime:        "h2.times span.doors",
			TicketPrice:     ".ticket-price .price-range",
			FacebookShare:   ".share-events.share-plus .share-facebook a:first-child",
			TwitterShare:    ".share-events.share-plus .share-twitter a:first-child",
			ICalLink:        ".ical-sync a",
			GCalLink:        ".gcal-sync a",
			ArtistBox:       "div.artist-boxes div.artist-box-headliner, div.artist-boxes div.artist-box-support",
			ArtistName:      "span.artist-name",
			ArtistLinks:     "ul.tfly-more li a",
			ArtistBioImage:  "img.bio-image-right, img.bio-image-no-float",
			ArtistBio:       "div.bio",
			PerformerLabels: "div.event-info h1.headliners, div.event-info h2.supports",
		},
		Nav: NavSettings{Timeout: 45 * time.Second},
	}
}

// CamelConfig returns the preset for The Camel's site family.
func CamelConfig() ChannelConfig {
	cfg := ChannelConfig{
		TenantName:    "rvagigs",
		ChannelName:   "thecamel",
		PrimaryUri:    "https://www.thecamel.org",
		ListPageUri:   "https://www.thecamel.org/calendar",
		VenueName:     "The Camel",
		VenueAddress:  []string{"1621 W Broad St", "Richmond", "VA", "23220"},
		VenuePhone:    "(804) 353-4901",
		Neighborhood:  "The Fan",
		CostStrategy:  CostNode,
		DatePolicy:    DateSevenDayWindow,
		AddressFields: AddressNameOnly,
		Selectors: Selectors{
			DayBlock:          "div.calendar-day",
			EventBlock:        "div.event-listing",
			HeadlinerLink:     ".rhp-event-thumb",
			HeadlinerAnchor:   "a:first-child",
			HeadlinerNameAttr: "title",
			TicketLink:        ".rhp-event-cta a:first-child",
			CostNode:          ".eventCost span",

			DetailContainer: "html",
			VenueMeta:       `meta[name="twitter:description"]`,
			StartDate:       ".eventStDate",
			MainPerformer:   `meta[property="og:title"]`,
			MainPerformerAttr: "content",
			DoorTime:        ".eventDoorStartDate span",
			TicketPrice:     ".eventCost span",
			ArtistBox:       ".singleEventDetails",
			ArtistName:      "#eventTitle",
			ArtistNameAttr:  "title",
			ArtistBioImage:  ".eventImgBox img",
		},
		Nav: NavSettings{Timeout: 45 * time.Second},
	}
	return cfg
}

// BroadberryConfig returns the preset for The Broadberry's own site, which
// shares The Camel's page layout.
func BroadberryConfig() ChannelConfig {
	cfg := CamelConfig()
	cfg.ChannelName = "broadberry"
	cfg.PrimaryUri = "https://www.thebroadberry.com"
	cfg.ListPageUri = "https://www.thebroadberry.com/calendar"
	cfg.VenueName = "The Broadberry"
	cfg.VenueAddress = []string{"2729 W Broad St", "Richmond", "VA", "23220"}
	cfg.VenuePhone = "(804) 353-1888"
	return cfg
}

// ConfigFor returns the preset for a named channel.
func ConfigFor(channel string) (ChannelConfig, bool) {
	switch channel {
	case "richmondshows":
		return RichmondShowsConfig(), true
	case "thecamel", "camel":
		return CamelConfig(), true
	case "broadberry":
		return BroadberryConfig(), true
	}
	return ChannelConfig{}, false
}
