package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/reiseplan/reiseplan/pkg/journey"
	"github.com/reiseplan/reiseplan/pkg/provider"
)

// stubProvider records every query it receives and replays canned results.
type stubProvider struct {
	mu       sync.Mutex
	queries  []provider.Query
	journeys []journey.Journey
	err      error
}

func (s *stubProvider) SearchJourneys(ctx context.Context, query provider.Query) ([]journey.Journey, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}

	return s.journeys, nil
}

func (s *stubProvider) queryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

func (s *stubProvider) queryFor(originID string) (provider.Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range s.queries {
		if q.OriginID == originID {
			return q, true
		}
	}
	return provider.Query{}, false
}

func postSearch(t *testing.T, journeyProvider provider.Provider, body string) *http.Response {
	t.Helper()

	app := NewApp(journeyProvider)

	request := httptest.NewRequest(http.MethodPost, "/search/", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	return response
}

func decodeSearchResponse(t *testing.T, response *http.Response) journey.SearchResponse {
	t.Helper()

	var decoded journey.SearchResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return decoded
}

func TestSearchOneWay(t *testing.T) {
	stub := &stubProvider{
		journeys: []journey.Journey{
			{DurationMinutes: 300, Transfers: 0, Legs: []journey.Leg{{Departure: "2023-06-01T08:00:00+02:00"}}},
		},
	}

	response := postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01",
		"isRoundTrip": false
	}`)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	decoded := decodeSearchResponse(t, response)
	if len(decoded.OutBound) != 1 {
		t.Errorf("expected 1 outbound journey, got %d", len(decoded.OutBound))
	}
	if decoded.InBound != nil {
		t.Error("expected no inbound leg for a one-way trip")
	}
	if stub.queryCount() != 1 {
		t.Errorf("expected 1 provider call, got %d", stub.queryCount())
	}
}

func TestSearchRoundTripWithNights(t *testing.T) {
	stub := &stubProvider{journeys: []journey.Journey{{DurationMinutes: 300}}}

	response := postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01",
		"isRoundTrip": true,
		"nights": 2
	}`)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	decoded := decodeSearchResponse(t, response)
	if decoded.InBound == nil {
		t.Fatal("expected an inbound leg")
	}
	if stub.queryCount() != 2 {
		t.Fatalf("expected 2 provider calls, got %d", stub.queryCount())
	}

	inboundQuery, found := stub.queryFor("8400058")
	if !found {
		t.Fatal("expected an inbound query with swapped stations")
	}
	if inboundQuery.DestinationID != "8002549" {
		t.Errorf("inbound destination should be the original origin, got %s", inboundQuery.DestinationID)
	}
	if inboundQuery.Date != "2023-06-03" {
		t.Errorf("inbound date should be date+nights, got %s", inboundQuery.Date)
	}
}

func TestSearchRoundTripExplicitReturnDate(t *testing.T) {
	stub := &stubProvider{}

	postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01",
		"isRoundTrip": true,
		"returnDate": "2023-06-10",
		"nights": 2
	}`)

	inboundQuery, found := stub.queryFor("8400058")
	if !found {
		t.Fatal("expected an inbound query")
	}
	if inboundQuery.Date != "2023-06-10" {
		t.Errorf("explicit return date should win over nights, got %s", inboundQuery.Date)
	}
}

func TestSearchRoundTripWithoutReturnInfo(t *testing.T) {
	stub := &stubProvider{}

	response := postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01",
		"isRoundTrip": true
	}`)

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	decoded := decodeSearchResponse(t, response)
	if decoded.InBound != nil {
		t.Error("expected no inbound search without returnDate or nights")
	}
	if stub.queryCount() != 1 {
		t.Errorf("expected only the outbound call, got %d", stub.queryCount())
	}
}

func TestSearchMissingRequiredFields(t *testing.T) {
	stub := &stubProvider{}

	response := postSearch(t, stub, `{
		"destinationId": "8400058",
		"date": "2023-06-01"
	}`)

	if response.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", response.StatusCode)
	}
	if stub.queryCount() != 0 {
		t.Errorf("expected no provider calls for an invalid request, got %d", stub.queryCount())
	}
}

func TestSearchProviderFailureFailsWholeRequest(t *testing.T) {
	stub := &stubProvider{err: errors.New("transport.rest error: 500")}

	response := postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01",
		"isRoundTrip": true,
		"nights": 1
	}`)

	if response.StatusCode != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", response.StatusCode)
	}

	var decoded map[string]string
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if !strings.Contains(decoded["error"], "500") {
		t.Errorf("error should identify the upstream status, got %q", decoded["error"])
	}
}

func TestSearchEmptyOutboundSerializesAsEmptyArray(t *testing.T) {
	stub := &stubProvider{}

	response := postSearch(t, stub, `{
		"originId": "8002549",
		"destinationId": "8400058",
		"date": "2023-06-01"
	}`)

	decoded := decodeSearchResponse(t, response)
	if decoded.OutBound == nil || len(decoded.OutBound) != 0 {
		t.Errorf("expected empty outbound array, got %v", decoded.OutBound)
	}
}
