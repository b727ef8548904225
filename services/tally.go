package services

import (
	"sort"

	"bikeshare-explorer/models"
)

// tally counts values and remembers the order they were first seen in
type tally[T comparable] struct {
	counts map[T]int
	order  []T
}

func newTally[T comparable]() *tally[T] {
	return &tally[T]{counts: make(map[T]int)}
}

func (t *tally[T]) add(v T) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

func (t *tally[T]) empty() bool {
	return len(t.order) == 0
}

// mode returns the most frequent value. Ties go to the value less ranks first;
// with a nil less the first value seen wins.
func (t *tally[T]) mode(less func(a, b T) bool) models.Mode[T] {
	var best models.Mode[T]
	for _, v := range t.order {
		c := t.counts[v]
		switch {
		case !best.Available, c > best.Count:
			best = models.Mode[T]{Value: v, Count: c, Available: true}
		case c == best.Count && less != nil && less(v, best.Value):
			best.Value = v
		}
	}
	return best
}

// ranked lists values by descending count, ties in first-seen order
func (t *tally[T]) ranked(label func(T) string) []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(t.order))
	for _, v := range t.order {
		out = append(out, models.CategoryCount{Value: label(v), Count: t.counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

func lessInt(a, b int) bool { return a < b }

func lessWeekday(a, b string) bool {
	ai, _ := models.WeekdayIndex(a)
	bi, _ := models.WeekdayIndex(b)
	return ai < bi
}

func identity(s string) string { return s }
