package application

import (
	"context"
	"strings"

	"github.com/pawnecta/petsitting-backend/internal/booking"
)

type ApplyRequest struct {
	Message      string
	OfferedPrice *int
}

// BookingReader is the slice of the booking repository this package needs.
type BookingReader interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
}

// Notifier receives application lifecycle events. Delivery is best-effort.
type Notifier interface {
	ApplicationReceived(ctx context.Context, a *Application, b *booking.Booking)
	ApplicationAccepted(ctx context.Context, a *Application, b *booking.Booking)
	ApplicationRejected(ctx context.Context, a *Application, b *booking.Booking)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) ApplicationReceived(context.Context, *Application, *booking.Booking) {}
func (NopNotifier) ApplicationAccepted(context.Context, *Application, *booking.Booking) {}
func (NopNotifier) ApplicationRejected(context.Context, *Application, *booking.Booking) {}

type Service interface {
	// Apply creates a pending application from a sitter to an open booking.
	Apply(ctx context.Context, bookingID, sitterID string, req ApplyRequest) (*Application, error)

	// ListForBooking returns a booking's applications. Only the booking's
	// client or an admin may list them.
	ListForBooking(ctx context.Context, bookingID, actorID string, isAdmin bool) ([]*Application, error)

	// ListMine returns the sitter's own applications with booking summaries.
	ListMine(ctx context.Context, sitterID string) ([]*WithBooking, error)

	// ListAccepted returns the sitter's accepted applications with booking
	// summaries. Used by the agenda projection.
	ListAccepted(ctx context.Context, sitterID string) ([]*WithBooking, error)

	// Accept decides an application in favour of its sitter. Client only.
	Accept(ctx context.Context, applicationID, actorID string) (*Application, error)

	// Reject declines a pending application. Client only.
	Reject(ctx context.Context, applicationID, actorID string) (*Application, error)
}

type service struct {
	repo     Repository
	bookings BookingReader
	notifier Notifier
}

func NewService(repo Repository, bookings BookingReader, notifier Notifier) Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &service{repo: repo, bookings: bookings, notifier: notifier}
}

func (s *service) Apply(ctx context.Context, bookingID, sitterID string, req ApplyRequest) (*Application, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrMessageRequired
	}
	if req.OfferedPrice == nil || *req.OfferedPrice < 0 {
		return nil, ErrInvalidPrice
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ClientID == sitterID {
		return nil, ErrOwnBooking
	}
	if b.Status != booking.StatusPublished {
		return nil, ErrBookingClosed
	}

	a := &Application{
		BookingID:    bookingID,
		SitterID:     sitterID,
		Message:      message,
		OfferedPrice: req.OfferedPrice,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notifier.ApplicationReceived(ctx, a, b)
	return a, nil
}

func (s *service) ListForBooking(ctx context.Context, bookingID, actorID string, isAdmin bool) ([]*Application, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.ClientID != actorID {
		return nil, ErrNotBookingOwner
	}
	return s.repo.ListForBooking(ctx, bookingID)
}

func (s *service) ListMine(ctx context.Context, sitterID string) ([]*WithBooking, error) {
	return s.repo.ListForSitter(ctx, sitterID, "")
}

func (s *service) ListAccepted(ctx context.Context, sitterID string) ([]*WithBooking, error) {
	return s.repo.ListForSitter(ctx, sitterID, StatusAccepted)
}

// loadDecidable fetches the application and its booking and verifies the
// actor is the booking's client.
func (s *service) loadDecidable(ctx context.Context, applicationID, actorID string) (*Application, *booking.Booking, error) {
	a, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}

	b, err := s.bookings.GetByID(ctx, a.BookingID)
	if err != nil {
		return nil, nil, err
	}
	if b.ClientID != actorID {
		return nil, nil, ErrNotBookingOwner
	}
	return a, b, nil
}

func (s *service) Accept(ctx context.Context, applicationID, actorID string) (*Application, error) {
	a, b, err := s.loadDecidable(ctx, applicationID, actorID)
	if err != nil {
		return nil, err
	}
	if a.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.Accept(ctx, a.ID, a.BookingID, a.SitterID); err != nil {
		return nil, err
	}

	a.Status = StatusAccepted
	s.notifier.ApplicationAccepted(ctx, a, b)
	return a, nil
}

func (s *service) Reject(ctx context.Context, applicationID, actorID string) (*Application, error) {
	a, b, err := s.loadDecidable(ctx, applicationID, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetStatus(ctx, a.ID, StatusPending, StatusRejected); err != nil {
		return nil, err
	}

	a.Status = StatusRejected
	s.notifier.ApplicationRejected(ctx, a, b)
	return a, nil
}
