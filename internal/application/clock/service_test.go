package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLeapYear(t *testing.T) {
	stats := Compute(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	require.True(t, stats.IsLeap)
	assert.Equal(t, 366, stats.TotalDaysInYear)
	// 1 March in a leap year is day 61
	assert.Equal(t, 61, stats.DayOfYear)
}

func TestComputeNonLeapYear(t *testing.T) {
	stats := Compute(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	require.False(t, stats.IsLeap)
	assert.Equal(t, 365, stats.TotalDaysInYear)
	assert.Equal(t, 60, stats.DayOfYear)
}

func TestLeapDetectionMatchesGregorianRule(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		want := (year%4 == 0 && year%100 != 0) || year%400 == 0
		stats := Compute(time.Date(year, 6, 1, 12, 0, 0, 0, time.UTC))
		assert.Equalf(t, want, stats.IsLeap, "year %d", year)
	}
}

func TestDayProgressBounds(t *testing.T) {
	midnight := Compute(time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, midnight.DayProgress)

	lastSecond := Compute(time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC))
	assert.Less(t, lastSecond.DayProgress, 100.0)
	assert.Greater(t, lastSecond.DayProgress, 99.0)
}

func TestYearProgressBounds(t *testing.T) {
	for _, instant := range []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 4, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	} {
		stats := Compute(instant)
		assert.GreaterOrEqual(t, stats.DayProgress, 0.0)
		assert.Less(t, stats.DayProgress, 100.0)
		assert.Greater(t, stats.YearProgress, 0.0)
		assert.LessOrEqual(t, stats.YearProgress, 100.0)
	}
}

func TestISOWeek(t *testing.T) {
	// 2024-01-01 is a Monday, so it opens ISO week 1.
	assert.Equal(t, 1, Compute(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).WeekOfYear)
	// 2023-01-01 is a Sunday and still belongs to the last week of 2022.
	assert.Equal(t, 52, Compute(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)).WeekOfYear)
}

func TestUnixTimestamp(t *testing.T) {
	instant := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, instant.Unix(), Compute(instant).Unix)
}
