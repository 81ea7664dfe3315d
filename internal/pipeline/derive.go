package pipeline

import (
	"go-bikeshare/internal/model"
)

// Derive adds month, weekday name and hour from each trip's start time.
// Output order equals input order.
func Derive(trips []model.Trip) []model.DerivedTrip {
	out := make([]model.DerivedTrip, len(trips))
	for i, t := range trips {
		out[i] = DeriveTrip(t)
	}
	return out
}

// DeriveTrip computes the calendar fields for a single trip
func DeriveTrip(t model.Trip) model.DerivedTrip {
	return model.DerivedTrip{
		Trip:    t,
		Month:   int(t.StartTime.Month()),
		Weekday: t.StartTime.Weekday().String(),
		Hour:    t.StartTime.Hour(),
	}
}
