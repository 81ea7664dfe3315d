package pipeline

import (
	"context"
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/source"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	tables map[model.City]*source.Table
	loads  map[model.City]int
}

func newFakeLoader() *fakeLoader {
	return &fakeLoader{
		tables: map[model.City]*source.Table{
			model.Chicago: {Trips: sampleTrips(), Capabilities: fullCaps},
			model.Washington: {
				Trips:        []model.Trip{trip("2017-03-01 09:00:00", "Union Station", "Dupont Circle", 600, "Subscriber")},
				Capabilities: model.Capabilities{HasEndTime: true},
			},
		},
		loads: make(map[model.City]int),
	}
}

func (f *fakeLoader) Load(ctx context.Context, city model.City) (*source.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.loads[city]++
	table, ok := f.tables[city]
	if !ok {
		return nil, fmt.Errorf("%s: %w", city, source.ErrSourceNotFound)
	}
	return table, nil
}

func (f *fakeLoader) Describe(city model.City) string {
	return "fake:" + city.Slug()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, loader CityLoader, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(loader, append([]Option{WithLogger(quietLogger())}, opts...)...)
	require.NoError(t, err)
	return svc
}

func TestServiceRun(t *testing.T) {
	svc := newTestService(t, newFakeLoader())

	spec, err := model.ParseFilterSpec("chicago", "june", "")
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), spec)
	require.NoError(t, err)

	assert.NotEmpty(t, report.QueryID)
	assert.Equal(t, 3, report.Rows)
	assert.False(t, report.Empty)
	require.Len(t, report.Groups, 4)

	station, ok := report.Group(GroupStation)
	require.True(t, ok)
	popular, ok := station.Result("Most Common Trip")
	require.True(t, ok)
	assert.Equal(t, "Wood St - Damen Ave", popular.Value)

	var stages []string
	for _, s := range report.Stages {
		stages = append(stages, s.Stage)
	}
	assert.Equal(t, []string{
		StageLoad, StageDerive, StageFilter,
		"aggregate.time", "aggregate.station", "aggregate.duration", "aggregate.user",
	}, stages)
}

func TestServiceRunEmptyResult(t *testing.T) {
	svc := newTestService(t, newFakeLoader())

	spec, err := model.ParseFilterSpec("chicago", "march", "all")
	require.NoError(t, err)

	report, err := svc.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, report.Empty)
	assert.Equal(t, 0, report.Rows)
	assert.Empty(t, report.Groups)
}

func TestServiceRunUnavailableColumns(t *testing.T) {
	svc := newTestService(t, newFakeLoader())

	report, err := svc.Run(context.Background(), model.FilterSpec{City: model.Washington, Month: model.All, Weekday: model.All})
	require.NoError(t, err)

	user, ok := report.Group(GroupUser)
	require.True(t, ok)
	gender, ok := user.Result("Gender Counts")
	require.True(t, ok)
	assert.True(t, gender.Unavailable)

	// other groups are unaffected
	duration, ok := report.Group(GroupDuration)
	require.True(t, ok)
	total, _ := duration.Result("Total Travel Time")
	assert.InDelta(t, 600.0, total.Value, 1e-9)
}

func TestServiceRunSourceNotFound(t *testing.T) {
	svc := newTestService(t, newFakeLoader())

	_, err := svc.Run(context.Background(), model.FilterSpec{City: model.NewYorkCity, Month: model.All, Weekday: model.All})
	assert.ErrorIs(t, err, source.ErrSourceNotFound)
}

func TestServiceRunCancelled(t *testing.T) {
	svc := newTestService(t, newFakeLoader())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Run(ctx, model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceCache(t *testing.T) {
	loader := newFakeLoader()
	svc := newTestService(t, loader, WithCache(4))
	spec := model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All}

	first, err := svc.Run(context.Background(), spec)
	require.NoError(t, err)
	second, err := svc.Run(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, 1, loader.loads[model.Chicago])
	assert.Equal(t, first.Groups[0].Results, second.Groups[0].Results)
	assert.NotEqual(t, first.QueryID, second.QueryID)
}

func TestServiceWithoutCacheReloads(t *testing.T) {
	loader := newFakeLoader()
	svc := newTestService(t, loader, WithCache(0))
	spec := model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All}

	for i := 0; i < 3; i++ {
		_, err := svc.Run(context.Background(), spec)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loader.loads[model.Chicago])
}

func TestServiceObserver(t *testing.T) {
	var groups []string
	svc := newTestService(t, newFakeLoader(), WithObserver(ObserverFunc(func(group string, _ time.Duration, _ int) {
		groups = append(groups, group)
	})))

	_, err := svc.Run(context.Background(), model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All})
	require.NoError(t, err)
	assert.Equal(t, []string{GroupTime, GroupStation, GroupDuration, GroupUser}, groups)
}

func TestServicePage(t *testing.T) {
	svc := newTestService(t, newFakeLoader(), WithCache(2))
	spec := model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: "friday"}

	page, err := svc.Page(context.Background(), spec, 0)
	require.NoError(t, err)
	assert.Len(t, page.Rows, 3)
	assert.Equal(t, 3, page.Total)
	assert.True(t, page.Done)

	for _, r := range page.Rows {
		assert.Equal(t, "Friday", r.Weekday)
	}
}

func TestServiceCities(t *testing.T) {
	svc := newTestService(t, newFakeLoader())

	infos, err := svc.Cities(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, model.Chicago, infos[0].City)
	assert.True(t, infos[0].Available)
	assert.Equal(t, 5, infos[0].Rows)
	assert.True(t, infos[0].Capabilities.HasGender)

	assert.Equal(t, model.NewYorkCity, infos[1].City)
	assert.Equal(t, "new_york_city", infos[1].Slug)
	assert.False(t, infos[1].Available)
	assert.NotEmpty(t, infos[1].Error)

	assert.True(t, infos[2].Available)
	assert.False(t, infos[2].Capabilities.HasBirthYear)
}
