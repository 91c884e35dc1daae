package transportrest

import (
	"testing"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestCheapestTicketPicksLowest(t *testing.T) {
	tickets := []apiTicket{
		{Price: &apiPrice{Amount: floatPtr(29.99), Currency: "EUR"}},
		{Price: &apiPrice{Amount: floatPtr(19.50)}},
	}

	cents, currency := cheapestTicket(tickets)

	if cents == nil || *cents != 1950 {
		t.Errorf("expected 1950 cents, got %v", cents)
	}
	// The cheapest ticket has no currency of its own, so the default applies
	if currency != "EUR" {
		t.Errorf("expected EUR, got %s", currency)
	}
}

func TestCheapestTicketMinorUnits(t *testing.T) {
	tickets := []apiTicket{
		{Price: &apiPrice{Amount: floatPtr(2999), Currency: "EUR"}},
	}

	cents, _ := cheapestTicket(tickets)

	if cents == nil || *cents != 2999 {
		t.Errorf("amounts >= 1000 are already minor units, got %v", cents)
	}
}

func TestCheapestTicketNoCandidates(t *testing.T) {
	cents, currency := cheapestTicket(nil)
	if cents != nil || currency != "" {
		t.Errorf("expected unset price for no tickets, got %v %s", cents, currency)
	}

	cents, currency = cheapestTicket([]apiTicket{
		{Price: nil},
		{Price: &apiPrice{Currency: "EUR"}}, // no amount
	})
	if cents != nil || currency != "" {
		t.Errorf("expected unset price when no ticket has an amount, got %v %s", cents, currency)
	}
}

func TestNormalizeAmount(t *testing.T) {
	if cents := normalizeAmount(29.99); cents != 2999 {
		t.Errorf("29.99 should become 2999, got %d", cents)
	}
	if cents := normalizeAmount(999.994); cents != 99999 {
		t.Errorf("999.994 should become 99999, got %d", cents)
	}
	if cents := normalizeAmount(1000); cents != 1000 {
		t.Errorf("1000 is already minor units, got %d", cents)
	}
	if cents := normalizeAmount(2999.4); cents != 2999 {
		t.Errorf("2999.4 should round to 2999, got %d", cents)
	}
}

func TestParsePriceRangeTicketList(t *testing.T) {
	price := parsePriceRange(priceRangeResponse{
		Tickets: []priceRangeTicket{
			{Price: floatPtr(49.90), Currency: "EUR"},
			{Amount: floatPtr(39.90)},
		},
	})

	if price == nil {
		t.Fatal("expected a fallback price")
	}
	if price.PriceCents == nil || *price.PriceCents != 3990 {
		t.Errorf("expected 3990 cents, got %v", price.PriceCents)
	}
	if price.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", price.Currency)
	}
}

func TestParsePriceRangeSummary(t *testing.T) {
	price := parsePriceRange(priceRangeResponse{
		Min:      floatPtr(29.99),
		Max:      floatPtr(120),
		Currency: "EUR",
	})

	if price == nil {
		t.Fatal("expected a fallback price")
	}
	if price.PriceCents == nil || *price.PriceCents != 2999 {
		t.Errorf("expected 2999 cents from min, got %v", price.PriceCents)
	}
}

func TestParsePriceRangeNeitherShape(t *testing.T) {
	if price := parsePriceRange(priceRangeResponse{}); price != nil {
		t.Errorf("expected nil for an empty response, got %v", price)
	}
}
