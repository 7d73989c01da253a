package availability

import (
	"sort"
	"time"
)

// DateSet is an in-memory set of calendar dates. The zero value is usable.
// All helpers normalize their inputs with DateOf, so callers may pass
// timestamps from any zone.
type DateSet map[time.Time]struct{}

// NewDateSet builds a set from the given days, collapsing duplicates.
func NewDateSet(days ...time.Time) DateSet {
	s := make(DateSet, len(days))
	for _, d := range days {
		s[DateOf(d)] = struct{}{}
	}
	return s
}

// Contains reports whether the day is in the set.
func (s DateSet) Contains(day time.Time) bool {
	_, ok := s[DateOf(day)]
	return ok
}

// Add inserts the day into the set.
func (s DateSet) Add(day time.Time) {
	s[DateOf(day)] = struct{}{}
}

// Remove deletes the day from the set.
func (s DateSet) Remove(day time.Time) {
	delete(s, DateOf(day))
}

// Sorted returns the set's days in ascending order.
func (s DateSet) Sorted() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Within returns a new set containing only days inside [from, to] inclusive.
func (s DateSet) Within(from, to time.Time) DateSet {
	from, to = DateOf(from), DateOf(to)
	out := make(DateSet)
	for d := range s {
		if !d.Before(from) && !d.After(to) {
			out[d] = struct{}{}
		}
	}
	return out
}

// NextDays returns n consecutive days starting at from (inclusive). Used by
// the "mark next N days available" shortcut before an explicit save.
func NextDays(from time.Time, n int) []time.Time {
	start := DateOf(from)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// Merge returns a copy of the selection with the given days added.
func Merge(selection DateSet, days []time.Time) DateSet {
	out := make(DateSet, len(selection)+len(days))
	for d := range selection {
		out[d] = struct{}{}
	}
	for _, d := range days {
		out[DateOf(d)] = struct{}{}
	}
	return out
}

// ToggleMonth toggles the selectable remainder of a month. The target days
// run from max(today, first of month) through the end of the month: days
// already past are never touched. If every target day is selected they are
// all removed; otherwise the missing ones are added.
func ToggleMonth(selection DateSet, today, month time.Time) DateSet {
	today = DateOf(today)
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first
	if today.After(first) {
		start = today
	}
	if start.After(last) {
		// Month fully in the past; nothing to toggle.
		return Merge(selection, nil)
	}

	var target []time.Time
	for d := start; !d.After(last); d = d.AddDate(0, 0, 1) {
		target = append(target, d)
	}

	allSelected := true
	for _, d := range target {
		if !selection.Contains(d) {
			allSelected = false
			break
		}
	}

	out := Merge(selection, nil)
	if allSelected {
		for _, d := range target {
			out.Remove(d)
		}
		return out
	}
	for _, d := range target {
		out.Add(d)
	}
	return out
}
