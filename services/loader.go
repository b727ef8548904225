package services

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"bikeshare-explorer/models"
	"bikeshare-explorer/observability"
	"bikeshare-explorer/storage"
	"bikeshare-explorer/utils"
)

// Column names of the trip datasets, compared case-insensitively
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime, ColEndTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType,
}

// timestampLayouts are tried in order; the last two cover what database/sql yields for timestamp columns
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

var errEmptyValue = errors.New("empty value")

// Opener returns the Source behind a dataset location
type Opener func(ctx context.Context, location string) (storage.Source, error)

// SourceOpener adapts storage.Open to an Opener
func SourceOpener(opts storage.OpenOptions) Opener {
	return func(ctx context.Context, location string) (storage.Source, error) {
		return storage.Open(ctx, location, opts)
	}
}

// RecordLoader turns a dataset into a normalized trip table
type RecordLoader struct {
	logger *utils.Logger
	open   Opener
}

// NewRecordLoader creates a new RecordLoader
func NewRecordLoader(logger *utils.Logger, open Opener) *RecordLoader {
	return &RecordLoader{logger: logger, open: open}
}

// Load reads location and normalizes every row. Any bad row fails the whole load.
func (l *RecordLoader) Load(ctx context.Context, location string) (*models.Table, error) {
	start := time.Now()

	src, err := l.open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	raw, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}

	table, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	kind := storage.Kind(location)
	observability.ObserveStage(observability.StageLoad, elapsed)
	observability.RecordRowsLoaded(kind, table.Len())
	l.logger.Info("Loaded trips",
		"source", kind,
		"rows", table.Len(),
		"gender_column", table.HasGenderColumn,
		"birth_year_column", table.HasBirthYearColumn,
		"elapsed", elapsed)
	return table, nil
}

// columnIndex holds header positions; -1 marks a missing column
type columnIndex struct {
	startTime, endTime, duration    int
	startStation, endStation, users int
	gender, birthYear               int
}

func mapColumns(header []string) (columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}
	lookup := func(name string) int {
		if i, ok := pos[strings.ToLower(name)]; ok {
			return i
		}
		return -1
	}

	for _, name := range requiredColumns {
		if lookup(name) == -1 {
			return columnIndex{}, &models.RecordError{Field: name, Err: errors.New("required column missing")}
		}
	}
	return columnIndex{
		startTime:    lookup(ColStartTime),
		endTime:      lookup(ColEndTime),
		duration:     lookup(ColTripDuration),
		startStation: lookup(ColStartStation),
		endStation:   lookup(ColEndStation),
		users:        lookup(ColUserType),
		gender:       lookup(ColGender),
		birthYear:    lookup(ColBirthYear),
	}, nil
}

// Normalize converts raw rows into trip records, preserving order
func Normalize(raw *storage.RawTable) (*models.Table, error) {
	cols, err := mapColumns(raw.Header)
	if err != nil {
		return nil, err
	}

	trips := make([]models.TripRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		trip, err := parseRow(row, cols, i+1)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return models.NewTable(trips, cols.gender != -1, cols.birthYear != -1), nil
}

func parseRow(row []string, cols columnIndex, rowNum int) (models.TripRecord, error) {
	fail := func(field, value string, err error) (models.TripRecord, error) {
		return models.TripRecord{}, &models.RecordError{Row: rowNum, Field: field, Value: value, Err: err}
	}

	start, err := parseTimestamp(row[cols.startTime])
	if err != nil {
		return fail(ColStartTime, row[cols.startTime], err)
	}
	end, err := parseTimestamp(row[cols.endTime])
	if err != nil {
		return fail(ColEndTime, row[cols.endTime], err)
	}
	duration, err := parseDuration(row[cols.duration])
	if err != nil {
		return fail(ColTripDuration, row[cols.duration], err)
	}
	startStation := strings.TrimSpace(row[cols.startStation])
	if isMissing(startStation) {
		return fail(ColStartStation, "", errEmptyValue)
	}
	endStation := strings.TrimSpace(row[cols.endStation])
	if isMissing(endStation) {
		return fail(ColEndStation, "", errEmptyValue)
	}

	userType := strings.TrimSpace(row[cols.users])
	if isMissing(userType) {
		userType = ""
	}

	var gender *string
	if cols.gender != -1 {
		gender = optionalText(row[cols.gender])
	}
	var birthYear *int
	if cols.birthYear != -1 {
		birthYear, err = parseBirthYear(row[cols.birthYear])
		if err != nil {
			return fail(ColBirthYear, row[cols.birthYear], err)
		}
	}

	return models.NewTripRecord(start, end, startStation, endStation, duration, userType, gender, birthYear), nil
}

// parseTimestamp reads a local date-time, keeping its wall-clock fields as written
func parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errEmptyValue
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// parseDuration reads seconds, integral or decimal
func parseDuration(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errEmptyValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// parseBirthYear accepts "1992" and "1992.0"; blank means absent
func parseBirthYear(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if isMissing(raw) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	if v != math.Trunc(v) {
		return nil, errors.New("not a whole year")
	}
	year := int(v)
	return &year, nil
}

func optionalText(raw string) *string {
	raw = strings.TrimSpace(raw)
	if isMissing(raw) {
		return nil
	}
	return &raw
}

// isMissing treats blanks and the NaN marker of exported data frames as absent
func isMissing(v string) bool {
	return v == "" || v == "NaN"
}
