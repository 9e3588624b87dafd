package domain

import (
	"strings"
	"time"
)

// referenceYear is a leap year. Month/day validation and the rendered date
// heading both use it, so a request for February 29 is legal no matter what
// the current year is.
const referenceYear = 2000

// TimedEntry is one dated fact from the On This Day feed.
type TimedEntry struct {
	Year int    `json:"year"`
	Text string `json:"text"`
}

// Entry is an undated fact (holidays carry no year).
type Entry struct {
	Text string `json:"text"`
}

// OnThisDayResponse is the decoded feed payload. Absent categories decode as
// empty slices, never as an error.
type OnThisDayResponse struct {
	Events   []TimedEntry `json:"events"`
	Births   []TimedEntry `json:"births"`
	Deaths   []TimedEntry `json:"deaths"`
	Holidays []Entry      `json:"holidays"`
}

// HistoryQuery captures user intent for one On This Day lookup. Month and Day
// are independent overrides; a zero value falls back to the corresponding
// field of Now.
type HistoryQuery struct {
	Language string
	Category Category
	Month    int
	Day      int
	Now      time.Time
}

// ResolveDate applies the overrides against Now and validates the resulting
// pair on the reference leap calendar.
func (q HistoryQuery) ResolveDate() (month, day int, err error) {
	month, day = q.Month, q.Day
	if month == 0 {
		month = int(q.Now.Month())
	}
	if day == 0 {
		day = q.Now.Day()
	}
	if !validDate(month, day) {
		return 0, 0, &DateError{Month: month, Day: day}
	}
	return month, day, nil
}

func validDate(month, day int) bool {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(referenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(d.Month()) == month && d.Day() == day
}

// DateHeading renders a resolved month/day as "January 2", using the same
// reference calendar as validation so February 29 always has a name.
func DateHeading(month, day int) string {
	return time.Date(referenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("January 2")
}

// ParseLanguageCode validates an ISO-639-1 code: exactly two ASCII letters,
// folded to lowercase.
func ParseLanguageCode(s string) (string, error) {
	if len(s) != 2 || !isASCIILetter(s[0]) || !isASCIILetter(s[1]) {
		return "", &LanguageCodeError{Code: s}
	}
	return strings.ToLower(s), nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
