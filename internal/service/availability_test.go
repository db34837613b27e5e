package service

import (
	"testing"
	"time"

	"cleaning-ops-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityPolicy_WindowFor(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("bounds around today", func(t *testing.T) {
		w := NewAvailabilityPolicy(7, 30, false, time.UTC).WindowFor(now)
		assert.Equal(t, testutils.Date(2026, time.March, 10), w.Today)
		assert.Equal(t, testutils.Date(2026, time.March, 3), w.Start)
		assert.Equal(t, testutils.Date(2026, time.April, 9), w.End)
	})

	t.Run("deterministic for the same instant", func(t *testing.T) {
		p := NewAvailabilityPolicy(7, 30, false, time.UTC)
		assert.Equal(t, p.WindowFor(now), p.WindowFor(now))
	})

	t.Run("today follows the configured timezone", func(t *testing.T) {
		tokyo, err := time.LoadLocation("Asia/Tokyo")
		require.NoError(t, err)
		late := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)

		w := NewAvailabilityPolicy(0, 0, false, tokyo).WindowFor(late)
		assert.Equal(t, testutils.Date(2026, time.March, 11), w.Today)
		assert.Equal(t, w.Today, w.Start)
		assert.Equal(t, w.Today, w.End)
	})

	t.Run("past dates allowed leaves start open", func(t *testing.T) {
		w := NewAvailabilityPolicy(7, 30, true, time.UTC).WindowFor(now)
		assert.True(t, w.Start.IsZero())
		assert.True(t, w.Contains(testutils.Date(2020, time.January, 1)))
		assert.False(t, w.IsLost(testutils.Date(2020, time.January, 1)))
	})

	t.Run("nil location falls back to UTC", func(t *testing.T) {
		w := NewAvailabilityPolicy(1, 1, false, nil).WindowFor(now)
		assert.Equal(t, testutils.Date(2026, time.March, 10), w.Today)
	})
}

func TestWindow_Classification(t *testing.T) {
	w := NewAvailabilityPolicy(2, 5, false, time.UTC).WindowFor(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))

	testCases := []struct {
		name     string
		date     time.Time
		contains bool
		lost     bool
		future   bool
	}{
		{name: "before start", date: testutils.Date(2026, time.March, 7), lost: true},
		{name: "start is inclusive", date: testutils.Date(2026, time.March, 8), contains: true},
		{name: "today", date: testutils.Date(2026, time.March, 10), contains: true},
		{name: "tomorrow", date: testutils.Date(2026, time.March, 11), contains: true, future: true},
		{name: "end is inclusive", date: testutils.Date(2026, time.March, 15), contains: true, future: true},
		{name: "after end", date: testutils.Date(2026, time.March, 16), future: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.contains, w.Contains(tc.date))
			assert.Equal(t, tc.lost, w.IsLost(tc.date))
			assert.Equal(t, tc.future, w.IsFuture(tc.date))
		})
	}
}

func TestWindow_Response(t *testing.T) {
	w := NewAvailabilityPolicy(1, 2, false, time.UTC).WindowFor(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, WindowResponse{Today: "2026-03-10", Start: "2026-03-09", End: "2026-03-12"}, w.Response())

	open := NewAvailabilityPolicy(1, 2, true, time.UTC).WindowFor(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, open.Response().Start)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, testutils.Date(2026, time.February, 28), d)

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseDate("28/02/2026")
	assert.Error(t, err)
}
