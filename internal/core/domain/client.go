package domain

// Segment is a labelled client category assigned by backend classification.
type Segment string

const (
	SegmentVIP              Segment = "VIP"
	SegmentAtRisk           Segment = "At-Risk"
	SegmentLapsed           Segment = "Lapsed"
	SegmentRegular          Segment = "Regular"
	SegmentNew              Segment = "New"
	SegmentNewHighPotential Segment = "New-High-Potential"
)

// Segments lists all known segments in display order.
var Segments = []Segment{
	SegmentVIP,
	SegmentAtRisk,
	SegmentLapsed,
	SegmentRegular,
	SegmentNew,
	SegmentNewHighPotential,
}

// SegmentPalette is the single shared segment→colour mapping used by every
// view. Unknown segments fall back to SegmentFallbackColor.
var SegmentPalette = map[Segment]string{
	SegmentVIP:              "#c99545",
	SegmentAtRisk:           "#dc2626",
	SegmentLapsed:           "#ea580c",
	SegmentRegular:          "#3b82f6",
	SegmentNew:              "#22c55e",
	SegmentNewHighPotential: "#8b5cf6",
}

const SegmentFallbackColor = "#6b7280"

// Color returns the palette colour for the segment.
func (s Segment) Color() string {
	if c, ok := SegmentPalette[s]; ok {
		return c
	}
	return SegmentFallbackColor
}

// Client is a clinic client as owned by the backend. The console holds
// transient, per-view copies only; all writes go through explicit backend
// action endpoints.
type Client struct {
	ID            string  `json:"id"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone,omitempty"`
	BirthDate     string  `json:"birth_date,omitempty"`
	LocationID    string  `json:"location_id"`
	TotalVisits   int     `json:"total_visits"`
	LifetimeSpend float64 `json:"lifetime_spend"`
	Segment       Segment `json:"segment,omitempty"`
}

// FullName joins first and last name for display.
func (c Client) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Classification is the result of running backend AI classification on a
// single client. Confidence is in [0,1].
type Classification struct {
	Segment    Segment `json:"segment"`
	Confidence float64 `json:"confidence"`
}

// SegmentMember is a sample member of a segment, with classification confidence.
type SegmentMember struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Confidence float64 `json:"confidence"`
}

// SegmentSummary aggregates per-segment counts and sample members.
type SegmentSummary struct {
	TotalClients   int                         `json:"total_clients"`
	SegmentCounts  map[Segment]int             `json:"segment_counts"`
	SegmentDetails map[Segment][]SegmentMember `json:"segment_details"`
}
