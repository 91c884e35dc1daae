package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/reiseplan/reiseplan/pkg/journey"
	"github.com/reiseplan/reiseplan/pkg/util"
)

// Demo is a static provider returning a canned set of journeys between
// Hamburg Hbf and Amsterdam Centraal. It never touches the network, which
// makes it a drop-in substitute for the REST provider during development.
type Demo struct{}

var demoOrigin = journey.Station{ID: "8002549", Name: "Hamburg Hbf"}
var demoDestination = journey.Station{ID: "8400058", Name: "Amsterdam Centraal"}

func demoJourney(date string, durationMinutes int, transfers int) journey.Journey {
	departure, err := time.Parse(util.DateFormat, date)
	if err != nil {
		departure = time.Now().Truncate(24 * time.Hour)
	}
	departure = departure.Add(7*time.Hour + 45*time.Minute)

	operator := "ICE"
	line := "ICE 123"
	if transfers > 0 {
		operator = "IC/ICE"
		line = "IC 200 / ICE 78"
	}

	return journey.Journey{
		DurationMinutes: durationMinutes,
		Transfers:       transfers,
		Legs: []journey.Leg{
			{
				Departure:   departure.Format(time.RFC3339),
				Arrival:     departure.Add(time.Duration(durationMinutes) * time.Minute).Format(time.RFC3339),
				Origin:      demoOrigin,
				Destination: demoDestination,
				Operator:    operator,
				Line:        line,
			},
		},
		BookingURL: fmt.Sprintf("https://www.bahn.com/en?from=%s&to=%s", "Hamburg%20Hbf", "Amsterdam%20Centraal"),
	}
}

func (d Demo) SearchJourneys(ctx context.Context, query Query) ([]journey.Journey, error) {
	list := []journey.Journey{
		demoJourney(query.Date, 340, 0),
		demoJourney(query.Date, 305, 1),
		demoJourney(query.Date, 370, 2),
		demoJourney(query.Date, 330, 1),
		demoJourney(query.Date, 390, 2),
	}

	limit := query.Limit
	if limit <= 0 {
		limit = journey.DefaultLimit
	}
	if limit > len(list) {
		limit = len(list)
	}

	return list[:limit], nil
}
