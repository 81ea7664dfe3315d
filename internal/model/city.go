package model

import (
	"fmt"
	"strings"
)

// City identifies one of the supported bike-share datasets
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// Cities lists every supported city in display order
var Cities = []City{Chicago, NewYorkCity, Washington}

// Slug is the city name with spaces replaced by underscores, used for config keys and file names
func (c City) Slug() string {
	return strings.ReplaceAll(string(c), " ", "_")
}

// Title returns the display name, e.g. "New York City"
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseCity accepts a city name or slug in any case
func ParseCity(s string) (City, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "_", " ")
	key = strings.Join(strings.Fields(key), " ")
	for _, c := range Cities {
		if string(c) == key {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown city %q", ErrInvalidFilter, s)
}
