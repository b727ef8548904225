package storage

import (
	"context"
	"fmt"

	"bikeshare-explorer/models"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the first sheet of an Excel workbook, header in row 1
type XLSXSource struct {
	path string
}

// NewXLSXSource creates an XLSXSource for path
func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{path: path}
}

func (s *XLSXSource) Read(ctx context.Context) (*RawTable, error) {
	file, err := openDataset(s.path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: failed to open workbook: %v", models.ErrMalformedRecord, s.path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %s: workbook has no sheets", models.ErrMalformedRecord, s.path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", models.ErrMalformedRecord, sheets[0], err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header", models.ErrMalformedRecord, sheets[0])
	}
	// GetRows drops trailing empty cells; newRawTable pads them back
	return newRawTable(rows[0], rows[1:]), nil
}

func (s *XLSXSource) Close() error { return nil }
