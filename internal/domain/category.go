package domain

import (
	"fmt"
	"strings"
)

// Category selects which slice of the feed response gets rendered.
type Category string

const (
	CategoryEvents   Category = "events"
	CategoryBirths   Category = "births"
	CategoryDeaths   Category = "deaths"
	CategoryHolidays Category = "holidays"
)

// categorySpec maps a category to its rendering behavior: the column headers
// and the accessor into the response. Keeping this in one table avoids
// scattering per-category switches through the renderer.
type categorySpec struct {
	yearHeader string
	textHeader string
	timed      bool
	timedRows  func(OnThisDayResponse) []TimedEntry
	plainRows  func(OnThisDayResponse) []Entry
}

var categorySpecs = map[Category]categorySpec{
	CategoryEvents: {
		yearHeader: "Year",
		textHeader: "Event",
		timed:      true,
		timedRows:  func(r OnThisDayResponse) []TimedEntry { return r.Events },
	},
	CategoryBirths: {
		yearHeader: "Born",
		textHeader: "Person",
		timed:      true,
		timedRows:  func(r OnThisDayResponse) []TimedEntry { return r.Births },
	},
	CategoryDeaths: {
		yearHeader: "Died",
		textHeader: "Person",
		timed:      true,
		timedRows:  func(r OnThisDayResponse) []TimedEntry { return r.Deaths },
	},
	CategoryHolidays: {
		textHeader: "Holiday",
		plainRows:  func(r OnThisDayResponse) []Entry { return r.Holidays },
	},
}

// ParseCategory accepts a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := categorySpecs[c]; !ok {
		return "", fmt.Errorf("unknown category %q (expected events, births, deaths or holidays)", s)
	}
	return c, nil
}

// Headers returns the column headers for the category. The year header is
// empty for untimed categories.
func (c Category) Headers() (year, text string) {
	cs := categorySpecs[c]
	return cs.yearHeader, cs.textHeader
}

// Timed reports whether entries of the category carry a year column.
func (c Category) Timed() bool {
	return categorySpecs[c].timed
}

// TimedEntries returns the dated entries the category selects from the
// response, in the feed's native ascending-year order.
func (c Category) TimedEntries(r OnThisDayResponse) []TimedEntry {
	cs := categorySpecs[c]
	if cs.timedRows == nil {
		return nil
	}
	return cs.timedRows(r)
}

// PlainEntries returns the undated entries the category selects.
func (c Category) PlainEntries(r OnThisDayResponse) []Entry {
	cs := categorySpecs[c]
	if cs.plainRows == nil {
		return nil
	}
	return cs.plainRows(r)
}
