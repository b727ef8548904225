package models

import (
	"math"
	"time"
)

// Mode is the most frequent value of a column.
// Available is false when the table had no values to count.
type Mode[T comparable] struct {
	Value     T
	Count     int
	Available bool
}

// TemporalReport holds the most frequent travel times
type TemporalReport struct {
	MonthFiltered bool // month filter applied, Month not computed
	Month         Mode[int]
	DayFiltered   bool // day filter applied, Day not computed
	Day           Mode[string]
	Hour          Mode[int]
	Elapsed       time.Duration
}

// MonthName returns the display name of the most frequent month
func (r TemporalReport) MonthName() string {
	if !r.Month.Available {
		return ""
	}
	return time.Month(r.Month.Value).String()
}

// StationReport holds the most popular stations and trip
type StationReport struct {
	StartStation Mode[string]
	EndStation   Mode[string]
	Trip         Mode[string]
	Elapsed      time.Duration
}

// HMS is a duration split into hours, minutes and remaining seconds
type HMS struct {
	Hours   int64
	Minutes int64
	Seconds float64
}

// MS is a duration split into minutes and remaining seconds
type MS struct {
	Minutes int64
	Seconds float64
}

// DurationReport holds aggregate trip duration. Values are exact; rounding is display-only.
type DurationReport struct {
	Trips          int
	Total          float64 // seconds
	TotalBreakdown HMS
	Mean           float64 // seconds
	MeanAvailable  bool
	MeanBreakdown  MS
	Elapsed        time.Duration
}

// CategoryCount is one row of a frequency table
type CategoryCount struct {
	Value string
	Count int
}

// UserReport holds user demographics
type UserReport struct {
	UserTypes []CategoryCount // descending frequency

	GenderAvailable bool
	Genders         []CategoryCount // descending frequency
	GenderMissing   int             // rows without a gender

	BirthYearAvailable bool
	EarliestBirthYear  int
	LatestBirthYear    int
	CommonBirthYear    Mode[int]
	BirthYearMissing   int // rows without a birth year

	Elapsed time.Duration
}

// StatisticsReport bundles the four statistic groups of one run
type StatisticsReport struct {
	Rows     int
	Temporal TemporalReport
	Stations StationReport
	Duration DurationReport
	Users    UserReport
}

// Empty reports whether the analysed table had no rows
func (r *StatisticsReport) Empty() bool {
	return r.Rows == 0
}

// SplitHMS breaks seconds into floor hours, floor minutes and the true remainder
func SplitHMS(seconds float64) HMS {
	hours := math.Floor(seconds / 3600)
	rest := seconds - hours*3600
	minutes := math.Floor(rest / 60)
	return HMS{
		Hours:   int64(hours),
		Minutes: int64(minutes),
		Seconds: rest - minutes*60,
	}
}

// SplitMS breaks seconds into floor minutes and the true remainder
func SplitMS(seconds float64) MS {
	minutes := math.Floor(seconds / 60)
	return MS{Minutes: int64(minutes), Seconds: seconds - minutes*60}
}

// TotalSeconds reassembles the breakdown
func (h HMS) TotalSeconds() float64 {
	return float64(h.Hours)*3600 + float64(h.Minutes)*60 + h.Seconds
}

// TotalSeconds reassembles the breakdown
func (m MS) TotalSeconds() float64 {
	return float64(m.Minutes)*60 + m.Seconds
}

// Round1 rounds to one decimal place for display
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
