package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2017, 6, 23, 15, 9, 32, 0, time.UTC)
	for _, in := range []string{
		"2017-06-23 15:09:32",
		" 2017-06-23 15:09:32 ",
		"2017-06-23T15:09:32",
		"2017-06-23T15:09:32Z",
		"6/23/2017 15:09:32",
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	got, err := ParseTimestamp("2017-06-23 15:09")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())
	assert.Equal(t, 0, got.Second())
}

func TestParseTimestampMalformed(t *testing.T) {
	for _, in := range []string{"", "   ", "yesterday", "2017-13-01 00:00:00", "2017-06-23 25:00:00"} {
		_, err := ParseTimestamp(in)
		assert.ErrorIs(t, err, ErrMalformedTimestamp, in)
	}
}
