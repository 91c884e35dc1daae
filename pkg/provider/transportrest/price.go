package transportrest

import (
	"math"

	"github.com/reiseplan/reiseplan/pkg/pricecache"
)

// defaultCurrency is assumed whenever the provider omits one.
const defaultCurrency = "EUR"

// majorUnitThreshold splits ambiguous fare amounts: transport.rest sometimes
// reports euros (29.99) and sometimes cents (2999) in the same field. Amounts
// below the threshold are taken as major units. This is an observed quirk of
// the provider, not a general currency rule; both the ticket and the
// price-range paths rely on it, so keep any change confined to
// normalizeAmount.
const majorUnitThreshold = 1000

// normalizeAmount converts a provider fare amount into integer minor units
// (cents), applying the major-unit heuristic described above.
func normalizeAmount(amount float64) int {
	if amount < majorUnitThreshold {
		return int(math.Round(amount * 100))
	}

	return int(math.Round(amount))
}

// cheapestTicket picks the lowest-priced ticket and returns its price in
// minor units. Tickets without a numeric amount are skipped; when none
// remain, both the price and the currency stay unset — an unknown price is
// not an error.
func cheapestTicket(tickets []apiTicket) (*int, string) {
	var cheapest *apiPrice

	for _, ticket := range tickets {
		price := ticket.Price
		if price == nil || price.Amount == nil {
			continue
		}
		if cheapest == nil || *price.Amount < *cheapest.Amount {
			cheapest = price
		}
	}

	if cheapest == nil {
		return nil, ""
	}

	cents := normalizeAmount(*cheapest.Amount)
	currency := cheapest.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &cents, currency
}

// parsePriceRange normalizes a /prices response into a fallback price,
// switching on which of the two known response shapes was returned. A nil
// result means the response carried neither shape.
func parsePriceRange(response priceRangeResponse) *pricecache.FallbackPrice {
	switch {
	case len(response.Tickets) > 0:
		var lowest *float64
		for _, ticket := range response.Tickets {
			amount := ticket.Price
			if amount == nil {
				amount = ticket.Amount
			}
			if amount == nil {
				continue
			}
			if lowest == nil || *amount < *lowest {
				lowest = amount
			}
		}

		price := pricecache.FallbackPrice{Currency: response.Tickets[0].Currency}
		if price.Currency == "" {
			price.Currency = response.Currency
		}
		if price.Currency == "" {
			price.Currency = defaultCurrency
		}
		if lowest != nil {
			cents := normalizeAmount(*lowest)
			price.PriceCents = &cents
		}

		return &price

	case response.Min != nil:
		cents := normalizeAmount(*response.Min)
		currency := response.Currency
		if currency == "" {
			currency = defaultCurrency
		}

		return &pricecache.FallbackPrice{PriceCents: &cents, Currency: currency}
	}

	return nil
}
