package services

import "bikeshare-explorer/models"

// PageSize is the number of raw rows in one window
const PageSize = 5

// Window returns up to PageSize rows of t starting at offset, in table order.
// An offset past the end yields an empty window; a negative offset counts as 0.
func Window(t *models.Table, offset int) []models.TripRecord {
	if offset < 0 {
		offset = 0
	}
	n := t.Len()
	if offset >= n {
		return []models.TripRecord{}
	}
	return t.Slice(offset, min(offset+PageSize, n))
}

// NextOffset returns the offset after the window at offset and whether rows remain there
func NextOffset(t *models.Table, offset int) (int, bool) {
	if offset < 0 {
		offset = 0
	}
	next := offset + PageSize
	return next, next < t.Len()
}
