package handler

import "time"

// dateLayout is the wire format for date-only fields
const dateLayout = "2006-01-02"

// parseDate parses a YYYY-MM-DD wire date as midnight UTC
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// formatDate renders a time as a YYYY-MM-DD wire date
func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}
