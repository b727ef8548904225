package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bikeshare-explorer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chicagoSample = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Customer,,
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func column(t *testing.T, raw *RawTable, name string) int {
	t.Helper()
	for i, h := range raw.Header {
		if h == name {
			return i
		}
	}
	t.Fatalf("column %q not in header %v", name, raw.Header)
	return -1
}

func TestCSVSource_Read(t *testing.T) {
	path := writeFile(t, "chicago.csv", chicagoSample)

	raw, err := NewCSVSource(path).Read(context.Background())
	require.NoError(t, err)

	require.Len(t, raw.Rows, 2)
	assert.Len(t, raw.Header, 9)
	for _, row := range raw.Rows {
		assert.Len(t, row, len(raw.Header))
	}

	start := column(t, raw, "Start Time")
	station := column(t, raw, "Start Station")
	duration := column(t, raw, "Trip Duration")
	gender := column(t, raw, "Gender")

	assert.Equal(t, "2017-06-23 15:09:32", raw.Rows[0][start])
	assert.Equal(t, "Theater on the Lake", raw.Rows[1][station])
	assert.Equal(t, "1610", raw.Rows[1][duration], "numbers stay text")
	assert.Equal(t, "Male", raw.Rows[0][gender])
	assert.Contains(t, []string{"", "NaN"}, raw.Rows[1][gender])
}

func TestCSVSource_MissingFile(t *testing.T) {
	_, err := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")).Read(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDatasetNotFound)
}

func TestCSVSource_RaggedRows(t *testing.T) {
	path := writeFile(t, "bad.csv", "Start Time,End Time\n2017-01-01 00:00:00\n")

	_, err := NewCSVSource(path).Read(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}

func TestCSVSource_HeaderOnly(t *testing.T) {
	path := writeFile(t, "empty.csv", "Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n")

	raw, err := NewCSVSource(path).Read(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}, raw.Header)
	assert.Empty(t, raw.Rows)
}

func TestCSVSource_KeepsNAText(t *testing.T) {
	path := writeFile(t, "na.csv", "Start Station,User Type,Gender\nNA,<nil>,NaN\n")

	raw, err := NewCSVSource(path).Read(context.Background())
	require.NoError(t, err)

	require.Len(t, raw.Rows, 1)
	assert.Equal(t, []string{"NA", "<nil>", "NaN"}, raw.Rows[0])
}
