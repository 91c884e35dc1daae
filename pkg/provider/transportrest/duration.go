package transportrest

import (
	"math"
	"strings"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

// durationMinutes normalizes the provider's duration field into minutes. A
// numeric value is taken as seconds, a string as an ISO-8601 time period
// ("PT5H30M"). When neither yields a positive duration the elapsed time
// between the fallback timestamps is used instead. Always non-negative.
func durationMinutes(raw any, fallbackStart string, fallbackEnd string) int {
	minutes := 0

	switch value := raw.(type) {
	case float64:
		minutes = int(math.Round(value / 60))
	case string:
		if strings.HasPrefix(value, "PT") {
			if parsed, err := iso8601.ParseISO8601(value); err == nil {
				minutes = parsed.TH*60 + parsed.TM
			}
		}
	}

	if minutes > 0 {
		return minutes
	}

	return minutesBetween(fallbackStart, fallbackEnd)
}

// minutesBetween is the elapsed minutes between two ISO timestamps, rounded,
// floored at 0. Unparseable timestamps count as no elapsed time.
func minutesBetween(start string, end string) int {
	startTime, startErr := time.Parse(time.RFC3339, start)
	endTime, endErr := time.Parse(time.RFC3339, end)
	if startErr != nil || endErr != nil {
		return 0
	}

	minutes := int(math.Round(endTime.Sub(startTime).Minutes()))
	if minutes < 0 {
		return 0
	}

	return minutes
}
