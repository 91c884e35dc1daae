package transportrest

// Slim view of the transport.rest wire format. Only the fields the mapper
// needs are modelled; everything else in the responses is ignored.

type apiStop struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiLine struct {
	Name        string `json:"name"`
	ProductName string `json:"productName"`
}

type apiOperator struct {
	Name string `json:"name"`
}

type apiLeg struct {
	Departure   string       `json:"departure"`
	Arrival     string       `json:"arrival"`
	Origin      *apiStop     `json:"origin"`
	Destination *apiStop     `json:"destination"`
	Line        *apiLine     `json:"line"`
	Operator    *apiOperator `json:"operator"`
}

type apiPrice struct {
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}

type apiTicket struct {
	Price *apiPrice `json:"price"`
}

type apiJourney struct {
	Legs      []apiLeg    `json:"legs"`
	Transfers *int        `json:"transfers"`
	Duration  any         `json:"duration"` // ISO-8601 string ("PT5H30M") or seconds
	Tickets   []apiTicket `json:"tickets"`
}

type journeysResponse struct {
	Journeys []apiJourney `json:"journeys"`
}

// priceRangeResponse covers the two shapes the /prices endpoint is known to
// return: a ticket list, or a bare min/max/currency summary.
type priceRangeResponse struct {
	Tickets  []priceRangeTicket `json:"tickets"`
	Min      *float64           `json:"min"`
	Max      *float64           `json:"max"`
	Currency string             `json:"currency"`
}

type priceRangeTicket struct {
	Price    *float64 `json:"price"`
	Amount   *float64 `json:"amount"`
	Currency string   `json:"currency"`
}
