package domain

// TimeStats is an immutable snapshot of calendar statistics derived from a
// single instant. Progress values are unrounded percentages; rounding happens
// only at render time.
type TimeStats struct {
	DayOfYear       int
	TotalDaysInYear int
	DayProgress     float64
	YearProgress    float64
	WeekOfYear      int
	IsLeap          bool
	Unix            int64
}
