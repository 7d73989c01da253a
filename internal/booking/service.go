package booking

import (
	"context"
	"time"

	"github.com/pawnecta/petsitting-backend/internal/address"
	"github.com/pawnecta/petsitting-backend/internal/pet"
)

type CreateRequest struct {
	Service   ServiceType
	StartDate time.Time
	EndDate   *time.Time
	PetIDs    []string
	AddressID *string
}

// Notifier receives booking lifecycle events. Implementations must not
// block; delivery is best-effort and failures never abort the operation
// that produced the event.
type Notifier interface {
	BookingClaimed(ctx context.Context, b *Booking)
	BookingConfirmed(ctx context.Context, b *Booking)
	BookingCancelled(ctx context.Context, b *Booking)
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) BookingClaimed(context.Context, *Booking)   {}
func (NopNotifier) BookingConfirmed(context.Context, *Booking) {}
func (NopNotifier) BookingCancelled(context.Context, *Booking) {}

type Service interface {
	Create(ctx context.Context, clientID string, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error)
	ListForClient(ctx context.Context, clientID string, page, pageSize int) ([]*Booking, int, error)
	ListForSitter(ctx context.Context, sitterID string, page, pageSize int) ([]*Booking, int, error)

	// ListOpen returns published unassigned bookings starting today or
	// later, excluding the caller's own requests.
	ListOpen(ctx context.Context, actorID string, page, pageSize int) ([]*Booking, int, error)

	// Claim assigns the calling sitter to an open booking and moves it to
	// reserved. Exactly one of two concurrent claims succeeds.
	Claim(ctx context.Context, id, sitterID string) (*Booking, error)

	// Confirm moves a reserved booking to confirmed. Only the assigned
	// sitter may confirm.
	Confirm(ctx context.Context, id, sitterID string) (*Booking, error)

	// Cancel terminates a non-terminal booking. Only the owning client or
	// an admin may cancel.
	Cancel(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error)

	// SetStatus forces a lifecycle step without actor checks. Admin only;
	// the transition itself must still be legal.
	SetStatus(ctx context.Context, id string, to Status) (*Booking, error)
}

type service struct {
	repo      Repository
	pets      pet.Service
	addresses address.Service
	notifier  Notifier
	nowFn     func() time.Time
}

func NewService(repo Repository, pets pet.Service, addresses address.Service, notifier Notifier) Service {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &service{
		repo:      repo,
		pets:      pets,
		addresses: addresses,
		notifier:  notifier,
		nowFn:     time.Now,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *service) Create(ctx context.Context, clientID string, req CreateRequest) (*Booking, error) {
	if !ValidService(req.Service) {
		return nil, ErrInvalidService
	}

	start := startOfDay(req.StartDate)
	if start.Before(startOfDay(s.nowFn())) {
		return nil, ErrStartDatePast
	}

	var end *time.Time
	if req.EndDate != nil {
		e := startOfDay(*req.EndDate)
		if e.Before(start) {
			return nil, ErrInvalidDateRange
		}
		end = &e
	}

	if len(req.PetIDs) == 0 {
		return nil, ErrNoPets
	}
	pets, err := s.pets.GetByIDs(ctx, req.PetIDs)
	if err != nil {
		return nil, err
	}
	if len(pets) != len(req.PetIDs) {
		return nil, ErrPetNotOwned
	}
	for _, p := range pets {
		if p.OwnerID != clientID {
			return nil, ErrPetNotOwned
		}
	}

	if req.AddressID != nil {
		owned, err := s.addresses.OwnedBy(ctx, *req.AddressID, clientID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrAddressNotOwned
		}
	}

	b := &Booking{
		ClientID:  clientID,
		Service:   req.Service,
		StartDate: start,
		EndDate:   end,
		Status:    StatusPublished,
		PetIDs:    req.PetIDs,
		AddressID: req.AddressID,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isAdmin || b.ClientID == actorID {
		return b, nil
	}
	if b.SitterID != nil && *b.SitterID == actorID {
		return b, nil
	}
	// Open requests are browsable by any authenticated user.
	if b.Status == StatusPublished {
		return b, nil
	}
	return nil, ErrNotFound
}

func (s *service) ListForClient(ctx context.Context, clientID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.List(ctx, Filter{
		ClientID:  clientID,
		Page:      page,
		PageSize:  pageSize,
		SortBy:    "start_date",
		SortOrder: "ASC",
	})
}

func (s *service) ListForSitter(ctx context.Context, sitterID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.List(ctx, Filter{
		SitterID:  sitterID,
		Page:      page,
		PageSize:  pageSize,
		SortBy:    "start_date",
		SortOrder: "ASC",
	})
}

func (s *service) ListOpen(ctx context.Context, actorID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.List(ctx, Filter{
		Unassigned:      true,
		ExcludeClientID: actorID,
		Status:          StatusPublished,
		StartFrom:       startOfDay(s.nowFn()),
		Page:            page,
		PageSize:        pageSize,
		SortBy:          "start_date",
		SortOrder:       "ASC",
	})
}

func (s *service) Claim(ctx context.Context, id, sitterID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.ClientID == sitterID {
		return nil, ErrOwnBooking
	}
	if b.Status != StatusPublished {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.Claim(ctx, id, sitterID); err != nil {
		return nil, err
	}

	b, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifier.BookingClaimed(ctx, b)
	return b, nil
}

func (s *service) Confirm(ctx context.Context, id, sitterID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.SitterID == nil || *b.SitterID != sitterID {
		return nil, ErrPermissionDenied
	}

	if err := s.repo.SetStatus(ctx, id, StatusReserved, StatusConfirmed); err != nil {
		return nil, err
	}

	b.Status = StatusConfirmed
	s.notifier.BookingConfirmed(ctx, b)
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id, actorID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.ClientID != actorID {
		return nil, ErrPermissionDenied
	}
	if IsTerminal(b.Status) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.SetStatus(ctx, id, b.Status, StatusCancelled); err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	s.notifier.BookingCancelled(ctx, b)
	return b, nil
}

func (s *service) SetStatus(ctx context.Context, id string, to Status) (*Booking, error) {
	if !ValidStatus(to) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(b.Status, to) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.SetStatus(ctx, id, b.Status, to); err != nil {
		return nil, err
	}

	b.Status = to
	return b, nil
}
