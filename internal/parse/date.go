package parse

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format accepted and emitted by the API.
const DateLayout = "2006-01-02"

// Date parses a YYYY-MM-DD string into midnight UTC of that day.
func Date(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q, expected YYYY-MM-DD", raw)
	}
	return t, nil
}

// FormatDate renders t as a calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
