package services

import (
	"time"

	"bikeshare-explorer/models"
	"bikeshare-explorer/observability"
	"bikeshare-explorer/utils"
)

// StatsEngine computes the descriptive statistics of a trip table.
// It keeps no state between calls and never modifies the table.
type StatsEngine struct {
	logger *utils.Logger
}

// NewStatsEngine creates a new StatsEngine
func NewStatsEngine(logger *utils.Logger) *StatsEngine {
	return &StatsEngine{logger: logger}
}

// Run computes all four reports for t
func (s *StatsEngine) Run(t *models.Table, spec models.FilterSpec) *models.StatisticsReport {
	return &models.StatisticsReport{
		Rows:     t.Len(),
		Temporal: s.Temporal(t, spec),
		Stations: s.Stations(t),
		Duration: s.Duration(t),
		Users:    s.Users(t),
	}
}

// Temporal finds the most frequent month, day of week and start hour.
// Month and day are skipped when the filter already narrows them.
func (s *StatsEngine) Temporal(t *models.Table, spec models.FilterSpec) models.TemporalReport {
	start := time.Now()
	report := models.TemporalReport{
		MonthFiltered: spec.Month != "" && spec.Month != models.All,
		DayFiltered:   spec.Day != "" && spec.Day != models.All,
	}

	months := newTally[int]()
	days := newTally[string]()
	hours := newTally[int]()
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		months.add(r.Month)
		days.add(r.DayOfWeek)
		hours.add(r.Hour)
	}

	if !report.MonthFiltered {
		report.Month = months.mode(lessInt)
	}
	if !report.DayFiltered {
		report.Day = days.mode(lessWeekday)
	}
	report.Hour = hours.mode(lessInt)

	report.Elapsed = s.observe(observability.StageTemporal, start)
	return report
}

// Stations finds the most used start station, end station and trip.
// Ties go to the value seen first in table order.
func (s *StatsEngine) Stations(t *models.Table) models.StationReport {
	start := time.Now()

	starts := newTally[string]()
	ends := newTally[string]()
	trips := newTally[string]()
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		starts.add(r.StartStation)
		ends.add(r.EndStation)
		trips.add(r.TripLabel)
	}

	report := models.StationReport{
		StartStation: starts.mode(nil),
		EndStation:   ends.mode(nil),
		Trip:         trips.mode(nil),
	}
	report.Elapsed = s.observe(observability.StageStations, start)
	return report
}

// Duration sums and averages trip durations
func (s *StatsEngine) Duration(t *models.Table) models.DurationReport {
	start := time.Now()

	var total float64
	for i := 0; i < t.Len(); i++ {
		total += t.At(i).DurationSeconds
	}

	report := models.DurationReport{
		Trips:          t.Len(),
		Total:          total,
		TotalBreakdown: models.SplitHMS(total),
	}
	if report.Trips > 0 {
		report.Mean = total / float64(report.Trips)
		report.MeanAvailable = true
		report.MeanBreakdown = models.SplitMS(report.Mean)
	}

	report.Elapsed = s.observe(observability.StageDuration, start)
	return report
}

// Users counts user types and genders and summarises birth years.
// Gender and birth year are reported over the rows that carry them.
func (s *StatsEngine) Users(t *models.Table) models.UserReport {
	start := time.Now()
	var report models.UserReport

	userTypes := newTally[string]()
	genders := newTally[string]()
	years := newTally[int]()
	for i := 0; i < t.Len(); i++ {
		r := t.At(i)
		if r.UserType != "" {
			userTypes.add(r.UserType)
		}
		if r.Gender != nil {
			genders.add(*r.Gender)
		} else {
			report.GenderMissing++
		}
		if r.BirthYear != nil {
			y := *r.BirthYear
			if years.empty() || y < report.EarliestBirthYear {
				report.EarliestBirthYear = y
			}
			if years.empty() || y > report.LatestBirthYear {
				report.LatestBirthYear = y
			}
			years.add(y)
		} else {
			report.BirthYearMissing++
		}
	}

	report.UserTypes = userTypes.ranked(identity)
	if !genders.empty() {
		report.GenderAvailable = true
		report.Genders = genders.ranked(identity)
	}
	if !years.empty() {
		report.BirthYearAvailable = true
		report.CommonBirthYear = years.mode(lessInt)
	}

	report.Elapsed = s.observe(observability.StageUsers, start)
	return report
}

func (s *StatsEngine) observe(stage string, start time.Time) time.Duration {
	elapsed := time.Since(start)
	observability.ObserveStage(stage, elapsed)
	s.logger.Debug("Computed statistics", "stage", stage, "elapsed", elapsed)
	return elapsed
}
