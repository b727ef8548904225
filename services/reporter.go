package services

import (
	"fmt"
	"io"
	"strings"

	"bikeshare-explorer/models"
)

const (
	reportWidth = 55
	noData      = "No data available for the selected filters."
)

// PrintReport formats the statistics of an analysis for the terminal
func PrintReport(w io.Writer, a *Analysis) {
	border := strings.Repeat("═", reportWidth)
	thin := strings.Repeat("─", reportWidth)
	r := a.Report

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("US BIKESHARE STATISTICS", reportWidth))
	fmt.Fprintf(w, "╚%s╝\n", border)
	fmt.Fprintf(w, "  City: %s | Month: %s | Day: %s | Trips: %d\n",
		models.Title(a.Spec.City), models.Title(a.Spec.Month), models.Title(a.Spec.Day), r.Rows)

	printTemporal(w, thin, a.Spec, r.Temporal)
	printStations(w, thin, r.Stations)
	printDuration(w, thin, r.Duration)
	printUsers(w, thin, r.Users)

	fmt.Fprintf(w, "\n%s\n\n", border)
}

func printTemporal(w io.Writer, thin string, spec models.FilterSpec, t models.TemporalReport) {
	fmt.Fprintf(w, "\n MOST FREQUENT TIMES OF TRAVEL\n%s\n", thin)
	switch {
	case t.MonthFiltered:
		fmt.Fprintf(w, "  You have chosen %s for analysis. No statistics on most frequent months.\n", models.Title(spec.Month))
	case t.Month.Available:
		fmt.Fprintf(w, "  Most common month       : %s\n", t.MonthName())
	default:
		fmt.Fprintf(w, "  Most common month       : %s\n", noData)
	}
	switch {
	case t.DayFiltered:
		fmt.Fprintf(w, "  You have chosen %s for analysis. No statistics on most frequent days of the week.\n", models.Title(spec.Day))
	case t.Day.Available:
		fmt.Fprintf(w, "  Most common day         : %s\n", t.Day.Value)
	default:
		fmt.Fprintf(w, "  Most common day         : %s\n", noData)
	}
	if t.Hour.Available {
		fmt.Fprintf(w, "  Most common start hour  : %d\n", t.Hour.Value)
	} else {
		fmt.Fprintf(w, "  Most common start hour  : %s\n", noData)
	}
	printElapsed(w, t.Elapsed.Seconds())
}

func printStations(w io.Writer, thin string, s models.StationReport) {
	fmt.Fprintf(w, "\n MOST POPULAR STATIONS AND TRIP\n%s\n", thin)
	fmt.Fprintf(w, "  Most common start station : %s\n", modeText(s.StartStation))
	fmt.Fprintf(w, "  Most common end station   : %s\n", modeText(s.EndStation))
	fmt.Fprintf(w, "  Most common trip          : %s\n", modeText(s.Trip))
	printElapsed(w, s.Elapsed.Seconds())
}

func printDuration(w io.Writer, thin string, d models.DurationReport) {
	fmt.Fprintf(w, "\n TRIP DURATION\n%s\n", thin)
	fmt.Fprintf(w, "  Total travel time (s)   : %s\n", formatSeconds(d.Total))
	tb := d.TotalBreakdown
	fmt.Fprintf(w, "  Total travel time       : %d hour(s), %d minute(s) and %.1f second(s)\n",
		tb.Hours, tb.Minutes, models.Round1(tb.Seconds))
	if d.MeanAvailable {
		mb := d.MeanBreakdown
		fmt.Fprintf(w, "  Mean trip duration      : %d minute(s) and %.1f second(s)\n", mb.Minutes, models.Round1(mb.Seconds))
	} else {
		fmt.Fprintf(w, "  Mean trip duration      : %s\n", noData)
	}
	printElapsed(w, d.Elapsed.Seconds())
}

func printUsers(w io.Writer, thin string, u models.UserReport) {
	fmt.Fprintf(w, "\n USER STATS\n%s\n", thin)
	if len(u.UserTypes) == 0 {
		fmt.Fprintf(w, "  User types: %s\n", noData)
	} else {
		fmt.Fprintln(w, "  User types and their counts:")
		printCounts(w, u.UserTypes)
	}

	if !u.GenderAvailable {
		fmt.Fprintln(w, "  There is no gender information for this city.")
	} else {
		fmt.Fprintln(w, "  Genders and their counts:")
		printCounts(w, u.Genders)
		if u.GenderMissing > 0 {
			fmt.Fprintf(w, "    %-25s %6d\n", "(not given)", u.GenderMissing)
		}
	}

	if !u.BirthYearAvailable {
		fmt.Fprintln(w, "  There is no birth year information for this city.")
	} else {
		fmt.Fprintf(w, "  Earliest year of birth  : %d\n", u.EarliestBirthYear)
		fmt.Fprintf(w, "  Most recent year of birth: %d\n", u.LatestBirthYear)
		fmt.Fprintf(w, "  Most common year of birth: %d\n", u.CommonBirthYear.Value)
	}
	printElapsed(w, u.Elapsed.Seconds())
}

func printCounts(w io.Writer, counts []models.CategoryCount) {
	for _, c := range counts {
		fmt.Fprintf(w, "    %-25s %6d\n", truncate(c.Value, 25), c.Count)
	}
}

func printElapsed(w io.Writer, seconds float64) {
	fmt.Fprintf(w, "  This took %.6f seconds.\n", seconds)
}

// PrintWindow renders a window of raw rows; offset numbers the first row
func PrintWindow(w io.Writer, rows []models.TripRecord, offset int) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No more raw data to display.")
		return
	}
	fmt.Fprintf(w, "%-6s %-19s %-19s %9s %-28s %-28s %-10s %-6s %-5s\n",
		"#", "Start Time", "End Time", "Duration", "Start Station", "End Station", "User Type", "Gender", "Born")
	for i, r := range rows {
		gender, born := "-", "-"
		if r.Gender != nil {
			gender = *r.Gender
		}
		if r.BirthYear != nil {
			born = fmt.Sprint(*r.BirthYear)
		}
		fmt.Fprintf(w, "%-6d %-19s %-19s %9s %-28s %-28s %-10s %-6s %-5s\n",
			offset+i,
			r.StartTime.Format("2006-01-02 15:04:05"),
			r.EndTime.Format("2006-01-02 15:04:05"),
			formatSeconds(r.DurationSeconds),
			truncate(r.StartStation, 28),
			truncate(r.EndStation, 28),
			truncate(r.UserType, 10),
			truncate(gender, 6),
			born)
	}
}

func modeText(m models.Mode[string]) string {
	if !m.Available {
		return noData
	}
	return fmt.Sprintf("%s (%d trips)", m.Value, m.Count)
}

// formatSeconds drops the decimals of whole numbers
func formatSeconds(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.3f", v)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
