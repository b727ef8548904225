package models

import "time"

// TripRecord is one bike-share trip with the fields derived at load time
type TripRecord struct {
	StartTime       time.Time
	EndTime         time.Time
	StartStation    string
	EndStation      string
	DurationSeconds float64 // not range-checked, passes through as written
	UserType        string  // empty when the source left it blank
	Gender          *string // nil when absent
	BirthYear       *int    // nil when absent

	// Derived from StartTime / stations
	Month     int    // 1-12
	DayOfWeek string // e.g. "Monday"
	Hour      int    // 0-23
	TripLabel string // "<start> to <end>"
}

// TripLabelSeparator joins start and end station into a trip label
const TripLabelSeparator = " to "

// NewTripRecord builds a record and fills in its derived fields
func NewTripRecord(start, end time.Time, startStation, endStation string, duration float64, userType string, gender *string, birthYear *int) TripRecord {
	return TripRecord{
		StartTime:       start,
		EndTime:         end,
		StartStation:    startStation,
		EndStation:      endStation,
		DurationSeconds: duration,
		UserType:        userType,
		Gender:          gender,
		BirthYear:       birthYear,
		Month:           int(start.Month()),
		DayOfWeek:       start.Weekday().String(),
		Hour:            start.Hour(),
		TripLabel:       startStation + TripLabelSeparator + endStation,
	}
}

// Table is an ordered, read-only sequence of trips.
// Filtering produces a new Table; nothing mutates an existing one.
type Table struct {
	trips []TripRecord

	HasGenderColumn    bool
	HasBirthYearColumn bool
}

// NewTable takes ownership of trips
func NewTable(trips []TripRecord, hasGender, hasBirthYear bool) *Table {
	if trips == nil {
		trips = []TripRecord{}
	}
	return &Table{trips: trips, HasGenderColumn: hasGender, HasBirthYearColumn: hasBirthYear}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.trips)
}

// At returns the i-th row
func (t *Table) At(i int) TripRecord {
	return t.trips[i]
}

// Slice returns a copy of rows [lo, hi)
func (t *Table) Slice(lo, hi int) []TripRecord {
	out := make([]TripRecord, hi-lo)
	copy(out, t.trips[lo:hi])
	return out
}

// Where returns a new table holding the rows keep accepts, in order
func (t *Table) Where(keep func(TripRecord) bool) *Table {
	out := make([]TripRecord, 0, t.Len())
	for _, r := range t.trips {
		if keep(r) {
			out = append(out, r)
		}
	}
	return NewTable(out, t.HasGenderColumn, t.HasBirthYearColumn)
}
