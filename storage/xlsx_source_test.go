package storage

import (
	"context"
	"path/filepath"
	"testing"

	"bikeshare-explorer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "washington.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXSource_Read(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-06-21 08:36:34", "2017-06-21 08:44:43", "489.066", "14th & Belmont St NW", "15th & K St NW", "Subscriber"},
		{"2017-03-11 10:40:00", "2017-03-11 10:46:00", "402.549", "Yuma St & Tenley Circle NW", "Connecticut Ave & Yuma St NW"},
	})

	raw, err := NewXLSXSource(path).Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Start Time", raw.Header[0])
	require.Len(t, raw.Rows, 2)
	assert.Equal(t, "489.066", raw.Rows[0][2])
	require.Len(t, raw.Rows[1], 6, "short rows are padded to the header")
	assert.Equal(t, "", raw.Rows[1][5])
}

func TestXLSXSource_MissingFile(t *testing.T) {
	_, err := NewXLSXSource(filepath.Join(t.TempDir(), "nope.xlsx")).Read(context.Background())
	assert.ErrorIs(t, err, models.ErrDatasetNotFound)
}

func TestXLSXSource_NotAWorkbook(t *testing.T) {
	path := writeFile(t, "fake.xlsx", "Start Time\n")

	_, err := NewXLSXSource(path).Read(context.Background())
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}
