package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSessionDates_CountPerTier(t *testing.T) {
	// Wednesday morning
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		tier  string
		days  []string
		count int
	}{
		{"Basic", []string{"Monday"}, 4},
		{"Standard", []string{"Monday", "Thursday"}, 8},
		{"Premium", []string{"Monday", "Tuesday", "Thursday", "Friday"}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			gen := NewGenerator(fixedClock(now))
			dates, err := gen.SessionDates(tt.days, tt.tier)
			require.NoError(t, err)
			assert.Len(t, dates, tt.count)
		})
	}
}

func TestSessionDates_FutureOnly(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"Monday", "Thursday"}, "Standard")
	require.NoError(t, err)
	for _, d := range dates {
		assert.True(t, d.After(now), "date %s is not after now", d)
	}
}

func TestSessionDates_WeekdayFidelity(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"Monday", "Thursday"}, "Standard")
	require.NoError(t, err)
	for _, d := range dates {
		wd := d.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Thursday, "unexpected weekday %s", wd)
	}
}

func TestSessionDates_StrictlyAscending(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"Monday", "Tuesday", "Thursday", "Friday"}, "Premium")
	require.NoError(t, err)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i].After(dates[i-1]), "dates out of order at %d", i)
	}
}

func TestSessionDates_NoonAnchor(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"Thursday"}, "Basic")
	require.NoError(t, err)
	require.NotEmpty(t, dates)
	// First preferred day after Wednesday Sep 2 is Thursday Sep 3.
	assert.Equal(t, time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC), dates[0])
}

func TestSessionDates_TodayAfterAnchorIsSkipped(t *testing.T) {
	// Thursday, five past noon: today's anchor is already in the past,
	// so collection starts the following week.
	now := time.Date(2026, 9, 3, 12, 5, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"Thursday"}, "Basic")
	require.NoError(t, err)
	require.Len(t, dates, 4)
	assert.Equal(t, time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC), dates[0])
	for _, d := range dates {
		assert.True(t, d.After(now))
	}
}

func TestSessionDates_CaseInsensitiveDays(t *testing.T) {
	now := time.Date(2026, 9, 2, 9, 30, 0, 0, time.UTC)
	gen := NewGenerator(fixedClock(now))

	dates, err := gen.SessionDates([]string{"monday", "THURSDAY"}, "standard")
	require.NoError(t, err)
	assert.Len(t, dates, 8)
}

func TestSessionDates_UnknownTier(t *testing.T) {
	gen := NewGenerator(nil)
	_, err := gen.SessionDates([]string{"Monday"}, "Platinum")
	assert.Error(t, err)
}

func TestSessionDates_InvalidDayName(t *testing.T) {
	gen := NewGenerator(nil)
	_, err := gen.SessionDates([]string{"Moonday"}, "Basic")
	assert.Error(t, err)
}
