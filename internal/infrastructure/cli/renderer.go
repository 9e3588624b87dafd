package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/olekukonko/tablewriter"

	"github.com/halmos/timely/internal/application/history"
	"github.com/halmos/timely/internal/domain"
)

const (
	// Margins reserve room for table borders and padding; timed tables lose
	// extra columns to the year cell.
	timedTableMargin   = 14
	holidayTableMargin = 8
	minCellWidth       = 20

	clockFormat = "Monday, January 02, 2006 03:04:05 PM"
)

var bold = color.New(color.Bold).SprintFunc()

// RenderCurrentTime prints the plain clock line.
func RenderCurrentTime(out io.Writer, now time.Time) {
	fmt.Fprintln(out, bold("The current time is:"))
	fmt.Fprintln(out, now.Format(clockFormat))
}

// RenderTimeStatistics prints the statistics block. Progress percentages are
// rounded to two decimals here and nowhere earlier.
func RenderTimeStatistics(out io.Writer, stats domain.TimeStats) {
	fmt.Fprintln(out, bold("Time Statistics:"))
	fmt.Fprintln(out, "----------------")
	fmt.Fprintf(out, "Day of the year: %d/%d\n", stats.DayOfYear, stats.TotalDaysInYear)
	fmt.Fprintf(out, "Week of the year: %d\n", stats.WeekOfYear)
	leap := "No"
	if stats.IsLeap {
		leap = "Yes"
	}
	fmt.Fprintf(out, "Is it a leap year? %s\n", leap)
	fmt.Fprintf(out, "Seconds since Unix epoch: %d\n", stats.Unix)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Progress:")
	fmt.Fprintf(out, "Day is %.2f%% complete\n", stats.DayProgress)
	fmt.Fprintf(out, "Year is %.2f%% complete\n", stats.YearProgress)
}

// RenderHistory prints the selected category as a table under a "Month Day"
// heading. Timed categories are shown most recent first, reversing the feed's
// ascending-year order.
func RenderHistory(out io.Writer, width int, category domain.Category, res history.Result) {
	fmt.Fprintf(out, "%s %s\n", bold("--- On This Day:"), domain.DateHeading(res.Month, res.Day))

	table := tablewriter.NewWriter(out)
	table.SetAutoWrapText(false)

	if category.Timed() {
		renderTimed(table, width, category, res.Response)
	} else {
		renderHolidays(table, width, category, res.Response)
	}
	table.Render()
}

func renderTimed(table *tablewriter.Table, width int, category domain.Category, resp domain.OnThisDayResponse) {
	yearHeader, textHeader := category.Headers()
	table.SetHeader([]string{yearHeader, textHeader})

	rows := category.TimedEntries(resp)
	if len(rows) == 0 {
		table.Append([]string{"-", "No entries were found"})
		return
	}
	for i := len(rows) - 1; i >= 0; i-- {
		table.Append([]string{
			strconv.Itoa(rows[i].Year),
			wrapCell(rows[i].Text, width-timedTableMargin),
		})
	}
}

func renderHolidays(table *tablewriter.Table, width int, category domain.Category, resp domain.OnThisDayResponse) {
	_, textHeader := category.Headers()
	table.SetHeader([]string{textHeader})

	rows := category.PlainEntries(resp)
	if len(rows) == 0 {
		table.Append([]string{"No holidays were found"})
		return
	}
	for _, row := range rows {
		table.Append([]string{wrapCell(row.Text, width-holidayTableMargin)})
	}
}

func wrapCell(text string, width int) string {
	if width < minCellWidth {
		width = minCellWidth
	}
	return wordwrap.WrapString(text, uint(width))
}
