package util

import "time"

// DateFormat is the calendar date layout used throughout the search API.
const DateFormat = "2006-01-02"

// AddDays shifts a YYYY-MM-DD date by the given number of calendar days,
// rolling over month and year boundaries. Adding 0 days returns the same date.
func AddDays(dateString string, days int) (string, error) {
	date, err := time.Parse(DateFormat, dateString)
	if err != nil {
		return "", err
	}

	return date.AddDate(0, 0, days).Format(DateFormat), nil
}
