package utils

import "time"

// ParseDate parses a YYYY-MM-DD string as midnight in loc. An empty string yields fallback.
func ParseDate(dateStr string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if dateStr == "" {
		return fallback, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}
