package provider

import (
	"context"

	"github.com/reiseplan/reiseplan/pkg/journey"
)

// Query is one directed journey search: a single origin, destination and
// travel date. Round trips are expressed as two independent queries.
type Query struct {
	OriginID      string
	DestinationID string
	Date          string // YYYY-MM-DD
	Limit         int
	Sort          string
}

// Provider searches journeys between two stations on a date. Implementations
// return the mapped, price-enriched, sorted and capped result set.
type Provider interface {
	SearchJourneys(ctx context.Context, query Query) ([]journey.Journey, error)
}
