package journey

import "sort"

const (
	SortFastest         = "fastest"
	SortFewestTransfers = "fewest-transfers"
	SortEarliest        = "earliest"
)

const (
	// DefaultLimit is used when a search request doesn't ask for a result count.
	DefaultLimit = 3
	// MaxResults caps every result set no matter how many were requested.
	MaxResults = 8
)

// SortAndLimit orders journeys by the given sort key and truncates the result
// to at most min(limit, MaxResults) entries. The sort is stable and the input
// slice is left untouched. Unknown sort keys behave like SortFastest.
func SortAndLimit(journeys []Journey, sortKey string, limit int) []Journey {
	sorted := make([]Journey, len(journeys))
	copy(sorted, journeys)

	sort.SliceStable(sorted, func(i, j int) bool {
		a := sorted[i]
		b := sorted[j]

		switch sortKey {
		case SortFewestTransfers:
			if a.Transfers != b.Transfers {
				return a.Transfers < b.Transfers
			}
			return a.DurationMinutes < b.DurationMinutes
		case SortEarliest:
			return a.FirstDeparture() < b.FirstDeparture()
		default:
			return a.DurationMinutes < b.DurationMinutes
		}
	})

	if limit > MaxResults {
		limit = MaxResults
	}
	if limit < 0 {
		limit = 0
	}
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	return sorted
}
