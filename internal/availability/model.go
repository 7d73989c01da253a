package availability

import (
	"errors"
	"time"
)

var (
	ErrSitterRequired = errors.New("sitter id is required")
	ErrTooManyDates   = errors.New("too many dates in selection")
)

// WindowYears is how far into the future availability is tracked. Loads and
// saves both operate on [today, today + WindowYears]; dates outside the
// window are ignored.
const WindowYears = 1

// Window returns the inclusive date range availability operations cover,
// anchored at today.
func Window(today time.Time) (time.Time, time.Time) {
	start := DateOf(today)
	return start, start.AddDate(WindowYears, 0, 0)
}

// DateOf strips the time component, normalizing to midnight UTC. All dates in
// this package are compared after this normalization, so a set of available
// days behaves as a set of calendar dates regardless of input zone or hour.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
