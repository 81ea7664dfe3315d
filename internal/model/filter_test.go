package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		name             string
		city, month, day string
		want             FilterSpec
	}{
		{"all defaults", "chicago", "", "", FilterSpec{City: Chicago, Month: All, Weekday: All}},
		{"explicit all", "Washington", "ALL", "all", FilterSpec{City: Washington, Month: All, Weekday: All}},
		{"mixed case", " New York City ", "June", "Friday", FilterSpec{City: NewYorkCity, Month: "june", Weekday: "friday"}},
		{"slug city", "new_york_city", "march", "sunday", FilterSpec{City: NewYorkCity, Month: "march", Weekday: "sunday"}},
		{"late month", "chicago", "december", "", FilterSpec{City: Chicago, Month: "december", Weekday: All}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilterSpec(tt.city, tt.month, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFilterSpecInvalid(t *testing.T) {
	tests := []struct {
		name             string
		city, month, day string
	}{
		{"unknown city", "boston", "all", "all"},
		{"unknown month", "chicago", "juny", "all"},
		{"month number", "chicago", "6", "all"},
		{"unknown day", "chicago", "all", "funday"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilterSpec(tt.city, tt.month, tt.day)
			assert.ErrorIs(t, err, ErrInvalidFilter)
		})
	}
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 1, MonthIndex("january"))
	assert.Equal(t, 6, MonthIndex("June"))
	assert.Equal(t, 12, MonthIndex("december"))
	assert.Equal(t, 0, MonthIndex(All))
	assert.Equal(t, 0, MonthIndex("smarch"))

	for i := 1; i <= 12; i++ {
		assert.Equal(t, i, MonthIndex(MonthName(i)))
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", MonthName(1))
	assert.Equal(t, "September", MonthName(9))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}

func TestCity(t *testing.T) {
	assert.Equal(t, "new_york_city", NewYorkCity.Slug())
	assert.Equal(t, "chicago", Chicago.Slug())
	assert.Equal(t, "New York City", NewYorkCity.Title())
	assert.Equal(t, "Washington", Washington.Title())

	for _, c := range Cities {
		got, err := ParseCity(c.Slug())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCity("")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
