package model

import "time"

// Trip represents a single ride record from a city dataset
type Trip struct {
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"` // nil when the source has no End Time
	StartStation string     `json:"start_station"`
	EndStation   string     `json:"end_station"`
	TripDuration float64    `json:"trip_duration"` // seconds
	UserType     string     `json:"user_type"`
	Gender       string     `json:"gender,omitempty"`
	BirthYear    *int       `json:"birth_year,omitempty"`
}

// Capabilities records which optional columns a dataset carries.
// Computed once from the source header, never per row.
type Capabilities struct {
	HasEndTime   bool `json:"has_end_time"`
	HasGender    bool `json:"has_gender"`
	HasBirthYear bool `json:"has_birth_year"`
}

// DerivedTrip is a Trip plus calendar fields taken from StartTime
type DerivedTrip struct {
	Trip
	Month   int    `json:"month"`   // 1-12
	Weekday string `json:"weekday"` // "Monday".."Sunday"
	Hour    int    `json:"hour"`    // 0-23
}

// Dataset is a fully loaded and derived city dataset. Rows must not be
// mutated once built; a Dataset may be shared by concurrent queries.
type Dataset struct {
	City         City          `json:"city"`
	Source       string        `json:"source"`
	Capabilities Capabilities  `json:"capabilities"`
	Rows         []DerivedTrip `json:"-"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// Source defines where a city's trips are read from
type Source struct {
	Type  string `json:"type"`            // csv, sqlite
	Path  string `json:"path"`            // file path
	Table string `json:"table,omitempty"` // sqlite only
}

// CityInfo summarizes a configured city for listings
type CityInfo struct {
	City         City         `json:"city"`
	Slug         string       `json:"slug"`
	Source       string       `json:"source"`
	Available    bool         `json:"available"`
	Rows         int          `json:"rows"`
	Capabilities Capabilities `json:"capabilities"`
	Error        string       `json:"error,omitempty"`
}
