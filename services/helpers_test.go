package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bikeshare-explorer/models"

	"github.com/stretchr/testify/require"
)

const tsLayout = "2006-01-02 15:04:05"

// trip builds a record starting at start ("2006-01-02 15:04:05")
func trip(t *testing.T, start, from, to string, duration float64) models.TripRecord {
	t.Helper()
	ts, err := time.Parse(tsLayout, start)
	require.NoError(t, err)
	return models.NewTripRecord(ts, ts.Add(time.Duration(duration)*time.Second), from, to, duration, "Subscriber", nil, nil)
}

func withUser(r models.TripRecord, userType string, gender *string, birthYear *int) models.TripRecord {
	r.UserType = userType
	r.Gender = gender
	r.BirthYear = birthYear
	return r
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func table(trips ...models.TripRecord) *models.Table {
	return models.NewTable(trips, true, true)
}

// sampleCSV has 7 trips across January, March and June 2017
const sampleCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:00:00,2017-01-02 08:01:00,60,A,B,Subscriber,Male,1985.0
2,2017-01-02 08:30:00,2017-01-02 08:32:00,120,A,C,Subscriber,Female,1990.0
3,2017-01-03 09:10:00,2017-01-03 09:15:00,300,B,A,Customer,,
4,2017-03-05 17:00:00,2017-03-05 17:10:00,600,C,A,Subscriber,Male,1990.0
5,2017-03-05 17:20:00,2017-03-05 17:21:30,90,A,B,Customer,,
6,2017-06-23 15:09:32,2017-06-23 15:14:53,321,A,B,Subscriber,Female,1975.0
7,2017-06-21 08:36:34,2017-06-21 08:44:43,489,B,C,,Male,2001.0
`

func writeDataset(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}
