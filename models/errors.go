package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the pipeline
var (
	ErrUnknownCity     = errors.New("unknown city")
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrMalformedRecord = errors.New("malformed record")
	ErrInvalidFilter   = errors.New("invalid filter")
)

// RecordError locates a malformed field in a dataset.
// Row is the 1-based data row; 0 means the header.
type RecordError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("malformed record: row %d, column %q", e.Row, e.Field)
	if e.Row == 0 {
		msg = fmt.Sprintf("malformed record: header, column %q", e.Field)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(", value %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RecordError) Unwrap() error { return e.Err }

// Is makes every RecordError match ErrMalformedRecord
func (e *RecordError) Is(target error) bool { return target == ErrMalformedRecord }

// ValidationError reports a filter value outside its domain
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
