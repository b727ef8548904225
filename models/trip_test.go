package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTripRecord_DerivedFields(t *testing.T) {
	start := time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC)
	r := NewTripRecord(start, start.Add(321*time.Second), "Wood St & Hubbard St", "Damen Ave & Chicago Ave", 321, "Subscriber", nil, nil)

	assert.Equal(t, 6, r.Month)
	assert.Equal(t, "Friday", r.DayOfWeek)
	assert.Equal(t, 15, r.Hour)
	assert.Equal(t, "Wood St & Hubbard St to Damen Ave & Chicago Ave", r.TripLabel)
}

func TestTable_WhereReturnsNewTable(t *testing.T) {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	trips := []TripRecord{
		NewTripRecord(start, start, "A", "B", 60, "Subscriber", nil, nil),
		NewTripRecord(start, start, "C", "D", 120, "Customer", nil, nil),
	}
	table := NewTable(trips, true, false)

	sub := table.Where(func(r TripRecord) bool { return r.StartStation == "C" })

	require.Equal(t, 1, sub.Len())
	assert.Equal(t, "C", sub.At(0).StartStation)
	assert.True(t, sub.HasGenderColumn)
	assert.False(t, sub.HasBirthYearColumn)
	assert.Equal(t, 2, table.Len(), "source table untouched")
}

func TestTable_SliceCopies(t *testing.T) {
	start := time.Date(2017, time.January, 2, 8, 0, 0, 0, time.UTC)
	table := NewTable([]TripRecord{
		NewTripRecord(start, start, "A", "B", 60, "Subscriber", nil, nil),
	}, false, false)

	rows := table.Slice(0, 1)
	rows[0].StartStation = "changed"

	assert.Equal(t, "A", table.At(0).StartStation)
}

func TestTable_NilAndEmpty(t *testing.T) {
	var nilTable *Table
	assert.Equal(t, 0, nilTable.Len())
	assert.Equal(t, 0, NewTable(nil, false, false).Len())
}

func TestMonthOrdinalAndWeekdayIndex(t *testing.T) {
	m, ok := MonthOrdinal(" March ")
	assert.True(t, ok)
	assert.Equal(t, 3, m)

	_, ok = MonthOrdinal("july")
	assert.False(t, ok)

	d, ok := WeekdayIndex("SUNDAY")
	assert.True(t, ok)
	assert.Equal(t, 6, d)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New York City", Title("new york city"))
	assert.Equal(t, "All", Title("ALL"))
	assert.Equal(t, "", Title(""))
}

func TestSplitHMS(t *testing.T) {
	assert.Equal(t, HMS{Hours: 0, Minutes: 3, Seconds: 0}, SplitHMS(180))
	assert.Equal(t, HMS{Hours: 2, Minutes: 0, Seconds: 5}, SplitHMS(7205))

	h := SplitHMS(98765.4)
	assert.Equal(t, int64(27), h.Hours)
	assert.Equal(t, int64(26), h.Minutes)
	assert.InDelta(t, 5.4, h.Seconds, 1e-6)
}

func TestSplitHMS_RoundTrip(t *testing.T) {
	for _, total := range []float64{0, 59.99, 60, 3599.5, 3600, 86400.25, 1234567.891} {
		assert.InDelta(t, total, SplitHMS(total).TotalSeconds(), 1e-6, "total %v", total)
		assert.InDelta(t, total, SplitMS(total).TotalSeconds(), 1e-6, "total %v", total)
	}
}

func TestSplitMS(t *testing.T) {
	assert.Equal(t, MS{Minutes: 1, Seconds: 30}, SplitMS(90))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 5.4, Round1(5.36))
	assert.Equal(t, 0.0, Round1(0.04))
}

func TestRecordError(t *testing.T) {
	cause := errors.New(`parsing time "x"`)
	err := error(&RecordError{Row: 3, Field: "Start Time", Value: "x", Err: cause})

	assert.ErrorIs(t, err, ErrMalformedRecord)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, `malformed record: row 3, column "Start Time", value "x": parsing time "x"`, err.Error())

	header := &RecordError{Field: "User Type", Err: errors.New("required column missing")}
	assert.Equal(t, `malformed record: header, column "User Type": required column missing`, header.Error())
}

func TestValidationError(t *testing.T) {
	assert.Equal(t, `invalid month "july"`, (&ValidationError{Field: "month", Value: "july"}).Error())
	assert.Equal(t, "city is required", (&ValidationError{Field: "city"}).Error())
}

func TestTemporalReport_MonthName(t *testing.T) {
	r := TemporalReport{Month: Mode[int]{Value: 6, Count: 2, Available: true}}
	assert.Equal(t, "June", r.MonthName())
	assert.Equal(t, "", TemporalReport{}.MonthName())
}
