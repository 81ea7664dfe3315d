package pipeline

import (
	"cmp"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"slices"
	"sort"
	"time"
)

// ErrDivisionUndefined is returned when a mean is asked of no values
var ErrDivisionUndefined = errors.New("division undefined: no values")

// Stat group names
const (
	GroupTime     = "time"
	GroupStation  = "station"
	GroupDuration = "duration"
	GroupUser     = "user"
)

// TripSeparator joins start and end station into a trip key
const TripSeparator = " - "

// Observer receives the wall-clock time spent on each stat group
type Observer interface {
	GroupComputed(group string, elapsed time.Duration, rows int)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(group string, elapsed time.Duration, rows int)

func (f ObserverFunc) GroupComputed(group string, elapsed time.Duration, rows int) {
	f(group, elapsed, rows)
}

type statGroup struct {
	name    string
	title   string
	compute func(rows []model.DerivedTrip, caps model.Capabilities, city model.City) []model.StatResult
}

var statGroups = []statGroup{
	{GroupTime, "Frequent Travel Times", func(rows []model.DerivedTrip, _ model.Capabilities, _ model.City) []model.StatResult {
		return TimeStats(rows)
	}},
	{GroupStation, "Popular Stations and Trips", func(rows []model.DerivedTrip, _ model.Capabilities, _ model.City) []model.StatResult {
		return StationStats(rows)
	}},
	{GroupDuration, "Trip Durations", func(rows []model.DerivedTrip, _ model.Capabilities, _ model.City) []model.StatResult {
		return DurationStats(rows)
	}},
	{GroupUser, "User Stats", UserStats},
}

// Engine computes every stat group over a filtered row set
type Engine struct {
	observers []Observer
	now       func() time.Time
}

// NewEngine creates an engine notifying observers after each group
func NewEngine(observers ...Observer) *Engine {
	return &Engine{observers: observers, now: time.Now}
}

// Aggregate runs each stat group in turn. Empty input yields no groups.
func (e *Engine) Aggregate(city model.City, caps model.Capabilities, rows []model.DerivedTrip) []model.StatGroup {
	if len(rows) == 0 {
		return nil
	}

	groups := make([]model.StatGroup, 0, len(statGroups))
	for _, g := range statGroups {
		start := e.now()
		results := g.compute(rows, caps, city)
		elapsed := e.now().Sub(start)

		for _, o := range e.observers {
			o.GroupComputed(g.name, elapsed, len(rows))
		}
		if len(results) == 0 {
			continue
		}
		groups = append(groups, model.StatGroup{
			Name:    g.name,
			Title:   g.title,
			Results: results,
			Elapsed: elapsed,
		})
	}
	return groups
}

// TimeStats reports the most common month, day of week and start hour
func TimeStats(rows []model.DerivedTrip) []model.StatResult {
	if len(rows) == 0 {
		return nil
	}

	months := make([]int, len(rows))
	days := make([]string, len(rows))
	hours := make([]int, len(rows))
	for i, r := range rows {
		months[i] = r.Month
		days[i] = r.Weekday
		hours[i] = r.Hour
	}

	month, _ := Mode(months)
	day, _ := Mode(days)
	hour, _ := Mode(hours)

	return []model.StatResult{
		{Label: "Most Common Month", Value: model.MonthName(month)},
		{Label: "Most Common Day of the Week", Value: day},
		{Label: "Most Common Start Hour", Value: hour},
	}
}

// StationStats reports the most common start station, end station and trip
func StationStats(rows []model.DerivedTrip) []model.StatResult {
	if len(rows) == 0 {
		return nil
	}

	starts := make([]string, 0, len(rows))
	ends := make([]string, 0, len(rows))
	trips := make([]string, 0, len(rows))
	for _, r := range rows {
		starts = append(starts, r.StartStation)
		ends = append(ends, r.EndStation)
		trips = append(trips, r.StartStation+TripSeparator+r.EndStation)
	}

	var results []model.StatResult
	if v, ok := modeNonBlank(starts); ok {
		results = append(results, model.StatResult{Label: "Most Common Start Station", Value: v})
	}
	if v, ok := modeNonBlank(ends); ok {
		results = append(results, model.StatResult{Label: "Most Common End Station", Value: v})
	}
	if v, ok := Mode(trips); ok {
		results = append(results, model.StatResult{Label: "Most Common Trip", Value: v})
	}
	return results
}

// DurationStats reports total and mean trip duration in seconds
func DurationStats(rows []model.DerivedTrip) []model.StatResult {
	durations := make([]float64, len(rows))
	for i, r := range rows {
		durations[i] = r.TripDuration
	}

	mean, err := Mean(durations)
	if err != nil {
		return nil
	}
	return []model.StatResult{
		{Label: "Total Travel Time", Value: Sum(durations)},
		{Label: "Average Travel Time", Value: mean},
	}
}

// UserStats reports user type counts, gender counts and birth year range.
// Gender and birth year fall back to an unavailable marker when the
// dataset has no such column.
func UserStats(rows []model.DerivedTrip, caps model.Capabilities, city model.City) []model.StatResult {
	if len(rows) == 0 {
		return nil
	}

	userTypes := make([]string, len(rows))
	genders := make([]string, 0, len(rows))
	years := make([]int, 0, len(rows))
	for i, r := range rows {
		userTypes[i] = r.UserType
		if caps.HasGender {
			genders = append(genders, r.Gender)
		}
		if caps.HasBirthYear && r.BirthYear != nil {
			years = append(years, *r.BirthYear)
		}
	}

	results := []model.StatResult{
		{Label: "User Types", Distribution: ValueCounts(userTypes)},
	}

	if caps.HasGender {
		results = append(results, model.StatResult{Label: "Gender Counts", Distribution: ValueCounts(genders)})
	} else {
		results = append(results, unavailable("Gender Counts", fmt.Sprintf("Gender data not available for %s.", city)))
	}

	switch {
	case !caps.HasBirthYear:
		note := fmt.Sprintf("Birth year data not available for %s.", city)
		results = append(results,
			unavailable("Earliest Birth Year", note),
			unavailable("Latest Birth Year", note),
			unavailable("Most Common Birth Year", note),
		)
	case len(years) == 0:
		note := "No birth year recorded for the selected trips."
		results = append(results,
			unavailable("Earliest Birth Year", note),
			unavailable("Latest Birth Year", note),
			unavailable("Most Common Birth Year", note),
		)
	default:
		common, _ := Mode(years)
		results = append(results,
			model.StatResult{Label: "Earliest Birth Year", Value: slices.Min(years)},
			model.StatResult{Label: "Latest Birth Year", Value: slices.Max(years)},
			model.StatResult{Label: "Most Common Birth Year", Value: common},
		)
	}

	return results
}

func unavailable(label, note string) model.StatResult {
	return model.StatResult{Label: label, Unavailable: true, Note: note}
}

// Mode returns the most frequent value. Among equally frequent values the
// smallest in ascending order wins, so the result never depends on input
// order. ok is false for empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := 0
	for v, n := range counts {
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

func modeNonBlank(values []string) (string, bool) {
	kept := values[:0:0]
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	return Mode(kept)
}

// ValueCounts counts each non-blank value, most frequent first; ties are
// ordered by value
func ValueCounts(values []string) []model.ValueCount {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	out := make([]model.ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, model.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	return out
}

// Sum adds values using float64 accumulation
func Sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns Sum(values)/len(values)
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrDivisionUndefined
	}
	return Sum(values) / float64(len(values)), nil
}
