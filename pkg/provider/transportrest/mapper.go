package transportrest

import (
	"net/url"

	"github.com/reiseplan/reiseplan/pkg/journey"
)

const bookingBaseURL = "https://www.bahn.com/en"

// mapJourneys converts the raw journeys into the internal model. Raw
// journeys without legs are expected to have been filtered out already, but
// the mapper guards against them anyway. The input is never mutated.
func mapJourneys(rawJourneys []apiJourney, date string) []journey.Journey {
	mapped := make([]journey.Journey, 0, len(rawJourneys))

	for _, raw := range rawJourneys {
		if len(raw.Legs) == 0 {
			continue
		}

		legs := make([]journey.Leg, 0, len(raw.Legs))
		for _, rawLeg := range raw.Legs {
			legs = append(legs, mapLeg(rawLeg))
		}

		first := legs[0]
		last := legs[len(legs)-1]

		transfers := len(legs) - 1
		if transfers < 0 {
			transfers = 0
		}
		if raw.Transfers != nil {
			transfers = *raw.Transfers
		}

		priceCents, currency := cheapestTicket(raw.Tickets)

		mapped = append(mapped, journey.Journey{
			DurationMinutes: durationMinutes(raw.Duration, first.Departure, last.Arrival),
			Transfers:       transfers,
			Legs:            legs,
			BookingURL:      bookingURL(first.Origin.Name, last.Destination.Name, date),
			PriceCents:      priceCents,
			Currency:        currency,
		})
	}

	return mapped
}

// mapLeg copies one raw leg. Missing stops, ids and names turn into empty
// strings so downstream code never has to nil-check partial provider data.
func mapLeg(rawLeg apiLeg) journey.Leg {
	leg := journey.Leg{
		Departure: rawLeg.Departure,
		Arrival:   rawLeg.Arrival,
	}

	if rawLeg.Origin != nil {
		leg.Origin = journey.Station{ID: rawLeg.Origin.ID, Name: rawLeg.Origin.Name}
	}
	if rawLeg.Destination != nil {
		leg.Destination = journey.Station{ID: rawLeg.Destination.ID, Name: rawLeg.Destination.Name}
	}

	if rawLeg.Operator != nil && rawLeg.Operator.Name != "" {
		leg.Operator = rawLeg.Operator.Name
	} else if rawLeg.Line != nil {
		leg.Operator = rawLeg.Line.ProductName
	}
	if rawLeg.Line != nil {
		leg.Line = rawLeg.Line.Name
	}

	return leg
}

func bookingURL(originName string, destinationName string, date string) string {
	values := url.Values{}
	values.Set("from", originName)
	values.Set("to", destinationName)
	values.Set("date", date)

	return bookingBaseURL + "?" + values.Encode()
}
