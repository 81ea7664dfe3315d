package pipeline

import (
	"go-bikeshare/internal/model"
	"strings"
)

// Filter returns the rows matching spec's month and weekday, in input order.
// "all" disables a predicate; both predicates are ANDed. The result is a
// new slice, so callers may hold it after the source rows are shared.
// An empty result is a valid outcome, not an error.
func Filter(rows []model.DerivedTrip, spec model.FilterSpec) []model.DerivedTrip {
	month := 0
	if spec.Month != model.All {
		month = model.MonthIndex(spec.Month)
	}
	weekday := ""
	if spec.Weekday != model.All {
		weekday = strings.ToLower(spec.Weekday)
	}

	out := make([]model.DerivedTrip, 0, len(rows))
	for _, row := range rows {
		if matches(row, month, weekday) {
			out = append(out, row)
		}
	}
	return out
}

// matches applies the month (0 = any) and lowercase weekday ("" = any) predicates
func matches(row model.DerivedTrip, month int, weekday string) bool {
	if month != 0 && row.Month != month {
		return false
	}
	if weekday != "" && strings.ToLower(row.Weekday) != weekday {
		return false
	}
	return true
}
