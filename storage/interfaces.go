package storage

import "context"

// Source reads a city's raw trip table
type Source interface {
	Read(ctx context.Context) (*RawTable, error)
	Close() error
}

// RawTable is untyped tabular data; every row has len(Header) cells
type RawTable struct {
	Header []string
	Rows   [][]string
}

// newRawTable pads or truncates rows to the header width
func newRawTable(header []string, rows [][]string) *RawTable {
	width := len(header)
	for i, row := range rows {
		switch {
		case len(row) < width:
			padded := make([]string, width)
			copy(padded, row)
			rows[i] = padded
		case len(row) > width:
			rows[i] = row[:width]
		}
	}
	return &RawTable{Header: header, Rows: rows}
}
