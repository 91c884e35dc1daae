package journey

// Station identifies one endpoint of a leg. Providers occasionally omit the
// id or name, in which case they stay empty strings rather than failing the
// whole journey.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Leg is one uninterrupted segment of travel between two stations.
// Departure and Arrival are ISO-8601 timestamps as supplied by the provider.
type Leg struct {
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Origin      Station `json:"origin"`
	Destination Station `json:"destination"`
	Operator    string  `json:"operator,omitempty"`
	Line        string  `json:"line,omitempty"`
}

// Journey is one trip option made up of chronologically ordered legs. The
// first leg's origin and the last leg's destination are the journey's overall
// origin and destination.
type Journey struct {
	DurationMinutes int    `json:"durationMinutes"`
	Transfers       int    `json:"transfers"`
	Legs            []Leg  `json:"legs"`
	BookingURL      string `json:"bookingUrl,omitempty"`
	PriceCents      *int   `json:"priceCents,omitempty"`
	Currency        string `json:"currency,omitempty"`
}

// FirstDeparture returns the departure timestamp of the first leg, or an
// empty string for a journey with no legs.
func (j Journey) FirstDeparture() string {
	if len(j.Legs) == 0 {
		return ""
	}
	return j.Legs[0].Departure
}

// SearchParams is the caller supplied search request.
type SearchParams struct {
	OriginID      string `json:"originId"`
	DestinationID string `json:"destinationId"`
	Date          string `json:"date"` // YYYY-MM-DD
	IsRoundTrip   bool   `json:"isRoundTrip"`
	ReturnDate    string `json:"returnDate,omitempty"` // YYYY-MM-DD
	Nights        *int   `json:"nights,omitempty"`
	Limit         int    `json:"limit,omitempty"`
	Sort          string `json:"sort,omitempty"`
}

// SearchResponse is the reply for a search request. InBound is only present
// for round trips where a return date could be resolved.
type SearchResponse struct {
	OutBound []Journey  `json:"outBound"`
	InBound  *[]Journey `json:"inBound,omitempty"`
}
