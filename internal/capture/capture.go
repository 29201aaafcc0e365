package capture

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// ContactItemType classifies a single contact entry on an event or venue.
type ContactItemType string

const (
	ContactPhone   ContactItemType = "phone"
	ContactEmail   ContactItemType = "email"
	ContactWebsite ContactItemType = "website"
)

// UriType is a URI tagged with its provenance. IsCaptureSrc is true when the
// link points back into the source site's own event system, false for
// external ticket vendors.
type UriType struct {
	Uri          string `json:"uri"`
	IsCaptureSrc bool   `json:"isCaptureSrc"`
}

// TicketAmtInfo is one parsed ticket price. Qualifier carries trailing text
// such as "each", "minimum", or "day of show"; it is empty for a bare amount.
type TicketAmtInfo struct {
	Amt       float64 `json:"amt"`
	Qualifier string  `json:"qualifier"`
}

// ContactInfoItem is a single contact method (phone number, email, ...).
type ContactInfoItem struct {
	Item     string          `json:"item"`
	ItemType ContactItemType `json:"itemType"`
}

// PromoterInfo describes a show promoter named on a detail page.
type PromoterInfo struct {
	Name string   `json:"name"`
	Desc string   `json:"desc"`
	Uris []string `json:"uris"`
}

// CapturePerformer is one billed act on an event. IsPrimaryPerformer is set
// by case-insensitive comparison against the detail page's declared
// headliner.
type CapturePerformer struct {
	PerformerName      string   `json:"performerName"`
	PerformerUris      []string `json:"performerUris"`
	PerformerImageUris []string `json:"performerImageUris"`
	PerformerDesc      string   `json:"performerDesc,omitempty"`
	IsPrimaryPerformer bool     `json:"isPrimaryPerformer"`
}

// CaptureEvent is one concert/show instance. It is created as a stub during
// the list-page pass and enriched in place during the detail-page pass.
// Timestamps are ISO 8601 strings; an empty StartDt means "unset" and causes
// removal by RemoveMissingDates.
type CaptureEvent struct {
	TenantName     string `json:"tenantName"`
	ChannelName    string `json:"channelName"`
	ChannelImage   string `json:"channelImage,omitempty"`
	ChannelBaseUri string `json:"channelBaseUri"`

	EventTitle string    `json:"eventTitle"`
	EventUris  []UriType `json:"eventUris"`

	StartDt string `json:"startDt,omitempty"`
	EndDt   string `json:"endDt,omitempty"`

	RawDoorTimeStr string `json:"rawDoorTimeStr,omitempty"`
	DoorTimeHours  int    `json:"doorTimeHours,omitempty"`
	DoorTimeMin    int    `json:"doorTimeMin,omitempty"`

	TicketUri     string          `json:"ticketUri,omitempty"`
	TicketCostRaw string          `json:"ticketCostRaw,omitempty"`
	TicketCost    []TicketAmtInfo `json:"ticketCost"`

	// MinAge is nil when the page gives no age restriction; 0 means all ages.
	MinAge *int `json:"minAge,omitempty"`

	VenueName         string            `json:"venueName"`
	VenueAddressLines []string          `json:"venueAddressLines"`
	VenueContactInfo  []ContactInfoItem `json:"venueContactInfo"`
	EventContactInfo  []ContactInfoItem `json:"eventContactInfo"`
	Neighborhood      string            `json:"neighborhood,omitempty"`

	EventImageUris []string           `json:"eventImageUris"`
	Performers     []CapturePerformer `json:"performers"`
	Promoters      []PromoterInfo     `json:"promoters"`

	FacebookShareUri string `json:"facebookShareUri,omitempty"`
	TwitterShareUri  string `json:"twitterShareUri,omitempty"`
	ICalUri          string `json:"iCalUri,omitempty"`
	GCalUri          string `json:"gCalUri,omitempty"`

	MiscDetail     []string `json:"miscDetail"`
	UnparsedDetail []string `json:"unparsedDetail"`

	// Raw page snapshot for audit, taken before detail enrichment.
	DetailPageInnerText string `json:"detailPageInnerText,omitempty"`
	DetailPageHtml      string `json:"detailPageHtml,omitempty"`
}

// CaptureResults is the ordered sequence of events produced by a run. The
// list-page pass appends to it, the detail-page pass mutates entries in
// place, and RemoveMissingDates filters it.
type CaptureResults struct {
	Events []*CaptureEvent `json:"events"`
}

// NewResults creates an empty CaptureResults.
func NewResults() *CaptureResults {
	return &CaptureResults{Events: make([]*CaptureEvent, 0)}
}

// FirstUri returns the event's first source URI, or "" if none exists.
func (e *CaptureEvent) FirstUri() string {
	if len(e.EventUris) > 0 {
		return e.EventUris[0].Uri
	}
	return ""
}

// ID returns a deterministic identifier for the event, stable across runs,
// derived from the channel, normalized title, and first source URI.
func (e *CaptureEvent) ID() string {
	h := sha1.New()
	h.Write([]byte(e.ChannelName + "|" + strings.ToLower(strings.TrimSpace(e.EventTitle)) + "|" + e.FirstUri()))
	return fmt.Sprintf("%x", h.Sum(nil))
}
