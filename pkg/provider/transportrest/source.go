package transportrest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/reiseplan/reiseplan/pkg/journey"
	"github.com/reiseplan/reiseplan/pkg/pricecache"
	"github.com/reiseplan/reiseplan/pkg/provider"
	"github.com/reiseplan/reiseplan/pkg/util"
)

// DefaultEndpoint is the public transport.rest deployment.
const DefaultEndpoint = "https://v6.db.transport.rest"

// departureHour is appended to the travel date so searches return daytime
// services instead of whatever runs at midnight.
const departureHour = "T08:00"

// Source is a journey provider backed by the transport.rest API. Results are
// mapped into the internal journey model, enriched with a cached fallback
// price when the journey query itself carried no fares, then sorted and
// capped.
type Source struct {
	Endpoint string
	Client   *http.Client
	Prices   *pricecache.PriceCache
}

func NewSource(endpoint string, prices *pricecache.PriceCache) *Source {
	return &Source{
		Endpoint: endpoint,
		Client:   http.DefaultClient,
		Prices:   prices,
	}
}

func (s *Source) SearchJourneys(ctx context.Context, query provider.Query) ([]journey.Journey, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = journey.DefaultLimit
	}

	rawJourneys, err := s.fetchJourneys(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	util.InPlaceFilter(&rawJourneys, func(rawJourney apiJourney) bool {
		return len(rawJourney.Legs) > 0
	})

	mapped := mapJourneys(rawJourneys, query.Date)

	s.applyFallbackPrice(ctx, query, mapped)

	return journey.SortAndLimit(mapped, query.Sort, limit), nil
}

func (s *Source) fetchJourneys(ctx context.Context, query provider.Query, limit int) ([]apiJourney, error) {
	values := url.Values{}
	values.Set("from", query.OriginID)
	values.Set("to", query.DestinationID)
	values.Set("departure", query.Date+departureHour)
	values.Set("results", strconv.Itoa(overfetchCount(limit)))
	values.Set("stopovers", "false")
	values.Set("tickets", "true")
	values.Set("language", "en")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint+"/journeys?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	response, err := s.Client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, fmt.Errorf("transport.rest error: %d", response.StatusCode)
	}

	var decoded journeysResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	return decoded.Journeys, nil
}

// overfetchCount asks the API for more journeys than the caller wants so the
// sort still has something to choose from after filtering, clamped to [3,12].
func overfetchCount(limit int) int {
	count := limit * 3
	if count < 3 {
		count = 3
	}
	if count > 12 {
		count = 12
	}

	return count
}

// applyFallbackPrice backfills prices when the journey query returned none.
// It performs at most one price-range lookup per batch, consulting the TTL
// cache first, and leaves already-priced journeys untouched. Lookup failures
// are swallowed; a missing price never fails a search.
func (s *Source) applyFallbackPrice(ctx context.Context, query provider.Query, mapped []journey.Journey) {
	if len(mapped) == 0 {
		return
	}
	for _, m := range mapped {
		if m.PriceCents != nil {
			return
		}
	}

	fallback, found := s.Prices.Get(query.OriginID, query.DestinationID, query.Date)
	if !found {
		fallback = s.fetchPriceRange(ctx, query)
		if fallback != nil {
			// Cache even a known-absent price so repeat searches within the
			// TTL window skip the lookup
			s.Prices.Set(query.OriginID, query.DestinationID, query.Date, fallback)
		}
	}

	if fallback == nil || fallback.PriceCents == nil {
		return
	}

	for i := range mapped {
		if mapped[i].PriceCents != nil {
			continue
		}

		cents := *fallback.PriceCents
		mapped[i].PriceCents = &cents
		mapped[i].Currency = fallback.Currency
	}
}

// fetchPriceRange queries the secondary /prices endpoint. Any transport or
// parse failure returns nil; the caller degrades to unpriced journeys.
func (s *Source) fetchPriceRange(ctx context.Context, query provider.Query) *pricecache.FallbackPrice {
	values := url.Values{}
	values.Set("from", query.OriginID)
	values.Set("to", query.DestinationID)
	values.Set("date", query.Date)
	values.Set("language", "en")

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Endpoint+"/prices?"+values.Encode(), nil)
	if err != nil {
		return nil
	}

	response, err := s.Client.Do(request)
	if err != nil {
		log.Warn().Err(err).Msg("Price range lookup failed")
		return nil
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		log.Warn().Int("status", response.StatusCode).Msg("Price range lookup failed")
		return nil
	}

	var decoded priceRangeResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		log.Warn().Err(err).Msg("Failed to decode price range response")
		return nil
	}

	price := parsePriceRange(decoded)
	if price == nil {
		// A well-formed response matching neither known shape still counts
		// as a completed lookup that found nothing
		price = &pricecache.FallbackPrice{}
	}

	return price
}
