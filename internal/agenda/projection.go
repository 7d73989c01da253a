package agenda

import (
	"sort"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/application"
	"github.com/pawnecta/petsitting-backend/internal/booking"
)

// Bucket classifies an agenda item relative to today.
type Bucket string

const (
	BucketInProgress  Bucket = "in_progress"  // started in the past
	BucketStartsToday Bucket = "starts_today" // starts on the current day
	BucketUpcoming    Bucket = "upcoming"     // starts on a future day
)

// Source records how the sitter got attached to the engagement.
type Source string

const (
	SourceDirect      Source = "direct"      // claimed or assigned booking
	SourceApplication Source = "application" // accepted application
)

// Item is one entry in a sitter's agenda.
type Item struct {
	BookingID      string
	ClientID       string
	ClientName     string
	Service        string
	StartDate      time.Time
	EndDate        *time.Time
	Status         booking.Status
	DaysUntilStart int
	Bucket         Bucket
	Source         Source
}

// EffectiveStatus resolves the status an agenda item displays. An accepted
// application means the engagement is confirmed from the sitter's point of
// view even while the booking row still reads reserved.
func EffectiveStatus(bookingStatus booking.Status, applicationStatus application.Status) booking.Status {
	if applicationStatus == application.StatusAccepted {
		return booking.StatusConfirmed
	}
	return bookingStatus
}

// daysBetween returns the calendar-day difference to - from, ignoring the
// time-of-day component of both arguments.
func daysBetween(from, to time.Time) int {
	fy, fm, fd := from.UTC().Date()
	ty, tm, td := to.UTC().Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func bucketFor(days int) Bucket {
	switch {
	case days < 0:
		return BucketInProgress
	case days == 0:
		return BucketStartsToday
	default:
		return BucketUpcoming
	}
}

// Build assembles a sitter's agenda from direct booking assignments and
// accepted applications. Both inputs may reference the same booking; the
// direct assignment wins the duplicate. Terminal bookings are excluded.
// The result depends only on the arguments: the same inputs always produce
// the same agenda.
func Build(direct []*booking.Booking, accepted []*application.WithBooking, today time.Time) []Item {
	seen := make(map[string]struct{}, len(direct))
	items := make([]Item, 0, len(direct)+len(accepted))

	for _, b := range direct {
		if booking.IsTerminal(b.Status) {
			continue
		}
		seen[b.ID] = struct{}{}

		days := daysBetween(today, b.StartDate)
		items = append(items, Item{
			BookingID:      b.ID,
			ClientID:       b.ClientID,
			ClientName:     b.ClientName,
			Service:        string(b.Service),
			StartDate:      b.StartDate,
			EndDate:        b.EndDate,
			Status:         b.Status,
			DaysUntilStart: days,
			Bucket:         bucketFor(days),
			Source:         SourceDirect,
		})
	}

	for _, w := range accepted {
		if _, dup := seen[w.Booking.ID]; dup {
			continue
		}
		status := booking.Status(w.Booking.Status)
		if booking.IsTerminal(status) {
			continue
		}

		days := daysBetween(today, w.Booking.StartDate)
		items = append(items, Item{
			BookingID:      w.Booking.ID,
			ClientID:       w.Booking.ClientID,
			ClientName:     w.Booking.ClientName,
			Service:        w.Booking.Service,
			StartDate:      w.Booking.StartDate,
			EndDate:        w.Booking.EndDate,
			Status:         EffectiveStatus(status, w.Status),
			DaysUntilStart: days,
			Bucket:         bucketFor(days),
			Source:         SourceApplication,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].StartDate.Equal(items[j].StartDate) {
			return items[i].StartDate.Before(items[j].StartDate)
		}
		return items[i].BookingID < items[j].BookingID
	})

	return items
}
