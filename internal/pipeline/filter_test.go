package pipeline

import (
	"go-bikeshare/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive(t *testing.T) {
	rows := sampleRows()
	require.Len(t, rows, 5)

	assert.Equal(t, 6, rows[0].Month)
	assert.Equal(t, "Friday", rows[0].Weekday)
	assert.Equal(t, 15, rows[0].Hour)

	assert.Equal(t, 1, rows[2].Month)
	assert.Equal(t, "Monday", rows[2].Weekday)
	assert.Equal(t, 8, rows[2].Hour)

	// source order is preserved
	assert.Equal(t, "Theater on the Lake", rows[1].StartStation)
}

func TestFilterAllIsIdentity(t *testing.T) {
	rows := sampleRows()
	spec := model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All}

	assert.Equal(t, rows, Filter(rows, spec))
}

func TestFilterByMonth(t *testing.T) {
	spec := model.FilterSpec{City: model.Chicago, Month: "june", Weekday: model.All}

	got := Filter(sampleRows(), spec)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, 6, r.Month)
	}
	assert.Equal(t, "Wood St", got[0].StartStation)
	assert.Equal(t, "Theater on the Lake", got[1].StartStation)
}

func TestFilterByWeekdayIsCaseInsensitive(t *testing.T) {
	for _, day := range []string{"friday", "FRIDAY", "Friday"} {
		spec := model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: day}
		got := Filter(sampleRows(), spec)
		require.Len(t, got, 3, day)
		for _, r := range got {
			assert.Equal(t, "Friday", r.Weekday)
		}
	}
}

func TestFilterMonthAndWeekday(t *testing.T) {
	spec := model.FilterSpec{City: model.Chicago, Month: "january", Weekday: "friday"}

	got := Filter(sampleRows(), spec)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Month)
	assert.Equal(t, "Friday", got[0].Weekday)
}

func TestFilterIsIdempotent(t *testing.T) {
	specs := []model.FilterSpec{
		{City: model.Chicago, Month: model.All, Weekday: model.All},
		{City: model.Chicago, Month: "june", Weekday: model.All},
		{City: model.Chicago, Month: model.All, Weekday: "monday"},
		{City: model.Chicago, Month: "june", Weekday: "friday"},
	}
	for _, spec := range specs {
		once := Filter(sampleRows(), spec)
		assert.Equal(t, once, Filter(once, spec), spec.String())
	}
}

func TestFilterNoMatchIsEmpty(t *testing.T) {
	spec := model.FilterSpec{City: model.Chicago, Month: "march", Weekday: model.All}

	got := Filter(sampleRows(), spec)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	rows := sampleRows()
	got := Filter(rows, model.FilterSpec{City: model.Chicago, Month: model.All, Weekday: model.All})
	got[0].StartStation = "changed"

	assert.Equal(t, "Wood St", rows[0].StartStation)
}
