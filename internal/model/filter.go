package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// All is the filter sentinel meaning "no restriction"
const All = "all"

// ErrInvalidFilter is returned by the validation gate for unknown city, month or day values
var ErrInvalidFilter = errors.New("invalid filter")

// MonthNames is the canonical ordered month list; MonthIndex is position + 1.
var MonthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// WeekdayNames lists the accepted day filters, Monday first
var WeekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// FilterSpec is one validated city/month/day selection
type FilterSpec struct {
	City    City   `json:"city"`
	Month   string `json:"month"` // "all" or a lowercase month name
	Weekday string `json:"day"`   // "all" or a lowercase day name
}

// ParseFilterSpec normalizes raw user input into a FilterSpec.
// Blank month or day means "all". Values are trimmed and lowercased;
// anything outside the canonical lists fails with ErrInvalidFilter.
func ParseFilterSpec(city, month, day string) (FilterSpec, error) {
	c, err := ParseCity(city)
	if err != nil {
		return FilterSpec{}, err
	}

	m := normalize(month)
	if m != All && MonthIndex(m) == 0 {
		return FilterSpec{}, fmt.Errorf("%w: unknown month %q", ErrInvalidFilter, month)
	}

	d := normalize(day)
	if d != All && !slices.Contains(WeekdayNames, d) {
		return FilterSpec{}, fmt.Errorf("%w: unknown day %q", ErrInvalidFilter, day)
	}

	return FilterSpec{City: c, Month: m, Weekday: d}, nil
}

// MonthIndex returns 1..12 for a month name, 0 for "all" or unknown names
func MonthIndex(name string) int {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, m := range MonthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the capitalized name for a month index, or "" when out of range
func MonthName(index int) string {
	if index < 1 || index > len(MonthNames) {
		return ""
	}
	name := MonthNames[index-1]
	return strings.ToUpper(name[:1]) + name[1:]
}

func (f FilterSpec) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", f.City, f.Month, f.Weekday)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return All
	}
	return s
}
