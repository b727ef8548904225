package services

import (
	"fmt"
	"strings"

	"bikeshare-explorer/models"
)

// ApplyFilter keeps the rows matching both the month and the day filter, in order.
// "all" disables a filter. The input table is never modified.
func ApplyFilter(t *models.Table, month, day string) (*models.Table, error) {
	month = strings.ToLower(strings.TrimSpace(month))
	day = strings.ToLower(strings.TrimSpace(day))

	wantMonth := 0
	if month != models.All {
		m, ok := models.MonthOrdinal(month)
		if !ok {
			return nil, fmt.Errorf("%w: month %q", models.ErrInvalidFilter, month)
		}
		wantMonth = m
	}

	wantDay := ""
	if day != models.All {
		if _, ok := models.WeekdayIndex(day); !ok {
			return nil, fmt.Errorf("%w: day %q", models.ErrInvalidFilter, day)
		}
		wantDay = day
	}

	return t.Where(func(r models.TripRecord) bool {
		if wantMonth != 0 && r.Month != wantMonth {
			return false
		}
		if wantDay != "" && !strings.EqualFold(r.DayOfWeek, wantDay) {
			return false
		}
		return true
	}), nil
}
