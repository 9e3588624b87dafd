// Package clock computes calendar statistics from a single instant.
package clock

import (
	"time"

	"github.com/halmos/timely/internal/domain"
)

const secondsPerDay = 86_400

// Compute derives a TimeStats snapshot from the given instant. It is a pure
// function of its argument so tests can pin the clock.
func Compute(now time.Time) domain.TimeStats {
	year := now.Year()

	// A year is leap iff December 31 is its 366th day.
	isLeap := time.Date(year, time.December, 31, 0, 0, 0, 0, now.Location()).YearDay() == 366

	secondsIntoDay := now.Hour()*3600 + now.Minute()*60 + now.Second()
	dayProgress := float64(secondsIntoDay) / secondsPerDay * 100

	dayOfYear := now.YearDay()
	totalDays := 365
	if isLeap {
		totalDays = 366
	}
	yearProgress := float64(dayOfYear) / float64(totalDays) * 100

	_, week := now.ISOWeek()

	return domain.TimeStats{
		DayOfYear:       dayOfYear,
		TotalDaysInYear: totalDays,
		DayProgress:     dayProgress,
		YearProgress:    yearProgress,
		WeekOfYear:      week,
		IsLeap:          isLeap,
		Unix:            now.Unix(),
	}
}
