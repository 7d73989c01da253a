package agenda

import (
	"context"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/application"
	"github.com/pawnecta/petsitting-backend/internal/booking"
)

// BookingLister is the slice of the booking repository the agenda needs.
type BookingLister interface {
	List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, int, error)
}

// ApplicationLister provides the sitter's accepted applications.
type ApplicationLister interface {
	ListAccepted(ctx context.Context, sitterID string) ([]*application.WithBooking, error)
}

type Service interface {
	// ForSitter returns the sitter's agenda as of now.
	ForSitter(ctx context.Context, sitterID string) ([]Item, error)
}

type service struct {
	bookings     BookingLister
	applications ApplicationLister
	nowFn        func() time.Time
}

func NewService(bookings BookingLister, applications ApplicationLister) Service {
	return &service{bookings: bookings, applications: applications, nowFn: time.Now}
}

// agendaPageSize bounds the direct-booking fetch. A sitter with more than
// this many active engagements at once is not a case the product has.
const agendaPageSize = 200

func (s *service) ForSitter(ctx context.Context, sitterID string) ([]Item, error) {
	direct, _, err := s.bookings.List(ctx, booking.Filter{
		SitterID:  sitterID,
		Page:      1,
		PageSize:  agendaPageSize,
		SortBy:    "start_date",
		SortOrder: "ASC",
	})
	if err != nil {
		return nil, err
	}

	accepted, err := s.applications.ListAccepted(ctx, sitterID)
	if err != nil {
		return nil, err
	}

	return Build(direct, accepted, s.nowFn()), nil
}
