package services

import (
	"strings"
	"time"
)

// Date formats accepted on intake, tried in order. HTML date inputs send
// plain YYYY-MM-DD; API clients tend to send RFC 3339.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDateLenient parses a date string permissively. Empty, missing or
// unparseable input yields nil rather than an error: required-date checks
// belong to field validation, not to the parser.
func ParseDateLenient(dateStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return &t
		}
	}
	return nil
}
