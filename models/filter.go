package models

import "strings"

// All disables a month or day filter
const All = "all"

// FilterMonths is the month domain of the datasets, in calendar order
var FilterMonths = []string{"january", "february", "march", "april", "may", "june"}

// Weekdays in Monday-first order
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FilterSpec selects a city and narrows its trips by month and day of week.
// Values are lower-case; Month and Day are either All or a member of their domain.
type FilterSpec struct {
	City  string `validate:"required,city"`
	Month string `validate:"required,oneof=all january february march april may june"`
	Day   string `validate:"required,oneof=all monday tuesday wednesday thursday friday saturday sunday"`
}

// MonthOrdinal maps a month name in FilterMonths to 1..6
func MonthOrdinal(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, m := range FilterMonths {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// WeekdayIndex returns the Monday-first position of a weekday name
func WeekdayIndex(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, d := range Weekdays {
		if d == name {
			return i, true
		}
	}
	return 0, false
}

// Title returns "New York City" for "new york city"
func Title(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
