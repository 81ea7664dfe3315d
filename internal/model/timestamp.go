package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedTimestamp means a Start Time or End Time cell could not be parsed
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// timestampLayouts are tried in order; the first is what the city exports use
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// ParseTimestamp parses a trip timestamp. Values without a zone are read as
// local wall-clock time in UTC so calendar fields come out as written.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrMalformedTimestamp)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, s)
}
