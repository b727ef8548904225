package storage

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"bikeshare-explorer/models"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// CSVSource reads a delimited dataset file
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSVSource for path
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Read loads every column as text; type conversion is left to the loader
func (s *CSVSource) Read(ctx context.Context) (*RawTable, error) {
	file, err := openDataset(s.path)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedRecord, s.path, err)
	}

	// gota refuses a frame without rows, so a bare header is handled here
	if header, ok := headerOnly(data); ok {
		return newRawTable(header, nil), nil
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues([]string{"NaN"}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedRecord, s.path, df.Err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := df.Records()
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header", models.ErrMalformedRecord, s.path)
	}
	return newRawTable(records[0], records[1:]), nil
}

func (s *CSVSource) Close() error { return nil }

// headerOnly returns the header of a file holding exactly one record
func headerOnly(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil {
		return nil, false
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, false
	}
	return header, true
}

// openDataset maps a missing file to ErrDatasetNotFound
func openDataset(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", models.ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrDatasetNotFound, err)
	}
	return file, nil
}
