package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halmos/timely/internal/application/clock"
	"github.com/halmos/timely/internal/application/history"
	"github.com/halmos/timely/internal/domain"
)

func TestRenderHistoryDescendingYearOrder(t *testing.T) {
	var buf bytes.Buffer
	res := history.Result{
		Response: domain.OnThisDayResponse{
			Events: []domain.TimedEntry{{Year: 1990, Text: "A"}, {Year: 2005, Text: "B"}},
		},
		Month: 2,
		Day:   29,
	}

	RenderHistory(&buf, 80, domain.CategoryEvents, res)
	out := buf.String()

	first := strings.Index(out, "2005")
	second := strings.Index(out, "1990")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "most recent year must render first")
}

func TestRenderHistoryHeading(t *testing.T) {
	var buf bytes.Buffer
	RenderHistory(&buf, 80, domain.CategoryEvents, history.Result{Month: 2, Day: 29})

	assert.Contains(t, buf.String(), "February 29")
}

func TestRenderHistoryHeadersPerCategory(t *testing.T) {
	tests := []struct {
		category domain.Category
		headers  []string
	}{
		{domain.CategoryEvents, []string{"YEAR", "EVENT"}},
		{domain.CategoryBirths, []string{"BORN", "PERSON"}},
		{domain.CategoryDeaths, []string{"DIED", "PERSON"}},
		{domain.CategoryHolidays, []string{"HOLIDAY"}},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		RenderHistory(&buf, 80, tt.category, history.Result{Month: 7, Day: 4})
		for _, header := range tt.headers {
			assert.Containsf(t, buf.String(), header, "category %s", tt.category)
		}
	}
}

func TestRenderHistoryEmptyPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	RenderHistory(&buf, 80, domain.CategoryHolidays, history.Result{Month: 7, Day: 4})
	assert.Contains(t, buf.String(), "No holidays were found")

	buf.Reset()
	RenderHistory(&buf, 80, domain.CategoryEvents, history.Result{Month: 7, Day: 4})
	assert.Contains(t, buf.String(), "No entries were found")
}

func TestRenderHistoryWrapsLongCells(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("word ", 40)
	res := history.Result{
		Response: domain.OnThisDayResponse{Events: []domain.TimedEntry{{Year: 2005, Text: long}}},
		Month:    2,
		Day:      29,
	}

	RenderHistory(&buf, 60, domain.CategoryEvents, res)

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 70, "line %q", line)
	}
}

func TestRenderCurrentTime(t *testing.T) {
	var buf bytes.Buffer
	RenderCurrentTime(&buf, time.Date(2025, 6, 15, 15, 4, 5, 0, time.UTC))

	assert.Contains(t, buf.String(), "The current time is:")
	assert.Contains(t, buf.String(), "Sunday, June 15, 2025 03:04:05 PM")
}

func TestRenderTimeStatistics(t *testing.T) {
	var buf bytes.Buffer
	RenderTimeStatistics(&buf, clock.Compute(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	out := buf.String()

	assert.Contains(t, out, "Time Statistics:")
	assert.Contains(t, out, "Day of the year: 61/366")
	assert.Contains(t, out, "Is it a leap year? Yes")
	assert.Contains(t, out, "Day is 0.00% complete")
}
