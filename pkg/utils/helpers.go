package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// CleanHeader trims whitespace, a UTF-8 BOM and all quotes from a CSV header cell
func CleanHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.TrimSpace(h)
	h = strings.ReplaceAll(h, `"`, "")
	return h
}

// IsBlank reports whether a cell is empty or one of the null markers pandas writes
func IsBlank(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nan", "null", "none", "na":
		return true
	}
	return false
}

// ParseFloat parses a numeric cell
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return f, nil
}

// ParseOptionalInt parses whole-number cells such as "1989" or "1989.0".
// Blank cells return nil.
func ParseOptionalInt(s string) (*int, error) {
	if IsBlank(s) {
		return nil, nil
	}
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return &i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return nil, fmt.Errorf("not a whole number: %q", s)
	}
	i := int(f)
	return &i, nil
}

// OptionalString returns "" for blank cells and the trimmed value otherwise
func OptionalString(s string) string {
	if IsBlank(s) {
		return ""
	}
	return strings.TrimSpace(s)
}
