package storage

import (
	"context"
	"path/filepath"
	"strings"

	"bikeshare-explorer/utils"
)

// Source kinds, also used as metric labels
const (
	KindCSV      = "csv"
	KindXLSX     = "xlsx"
	KindPostgres = "postgres"
)

// OpenOptions configures Open
type OpenOptions struct {
	ConnectRetries int
	Logger         *utils.Logger
}

// Open picks a Source for location: postgres URL, .xlsx workbook, or delimited file
func Open(ctx context.Context, location string, opts OpenOptions) (Source, error) {
	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	switch Kind(location) {
	case KindPostgres:
		src, err := OpenPostgres(ctx, location, opts.ConnectRetries, logger)
		if err != nil {
			return nil, err
		}
		return src, nil
	case KindXLSX:
		return NewXLSXSource(location), nil
	default:
		return NewCSVSource(location), nil
	}
}

// Kind classifies a dataset location
func Kind(location string) string {
	switch {
	case isPostgresURL(location):
		return KindPostgres
	case strings.EqualFold(filepath.Ext(location), ".xlsx"):
		return KindXLSX
	default:
		return KindCSV
	}
}
