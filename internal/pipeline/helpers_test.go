package pipeline

import (
	"go-bikeshare/internal/model"
	"time"
)

func ts(s string) time.Time {
	t, err := model.ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return t
}

func year(y int) *int { return &y }

func trip(start, from, to string, duration float64, userType string) model.Trip {
	return model.Trip{
		StartTime:    ts(start),
		StartStation: from,
		EndStation:   to,
		TripDuration: duration,
		UserType:     userType,
	}
}

// sampleTrips spans January, June and a Sunday/Monday/Friday mix
func sampleTrips() []model.Trip {
	trips := []model.Trip{
		trip("2017-06-23 15:09:32", "Wood St", "Damen Ave", 321, "Subscriber"),            // Friday
		trip("2017-06-25 18:19:03", "Theater on the Lake", "Sheffield", 1610, "Customer"), // Sunday
		trip("2017-01-02 08:27:49", "May St", "Wood St", 416, "Subscriber"),               // Monday
		trip("2017-06-23 15:49:38", "Wood St", "Damen Ave", 350, "Subscriber"),            // Friday
		trip("2017-01-06 17:01:00", "Wood St", "May St", 200, "Customer"),                 // Friday
	}
	trips[0].Gender, trips[0].BirthYear = "Male", year(1992)
	trips[1].Gender, trips[1].BirthYear = "Female", year(1985)
	trips[2].Gender, trips[2].BirthYear = "Male", year(1992)
	trips[3].Gender, trips[3].BirthYear = "Female", year(1970)
	return trips
}

func sampleRows() []model.DerivedTrip {
	return Derive(sampleTrips())
}

var fullCaps = model.Capabilities{HasEndTime: true, HasGender: true, HasBirthYear: true}

func nRows(n int) []model.DerivedTrip {
	rows := make([]model.DerivedTrip, n)
	for i := range rows {
		rows[i] = DeriveTrip(trip("2017-02-01 10:00:00", "A", "B", float64(i+1), "Subscriber"))
	}
	return rows
}
