package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pawnecta/petsitting-backend/internal/booking"
)

// fakeStore backs both the application repository and the booking reader so
// the accept transaction can be observed end to end.
type fakeStore struct {
	apps     map[string]*Application
	bookings map[string]*booking.Booking
	nextID   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		apps:     make(map[string]*Application),
		bookings: make(map[string]*booking.Booking),
	}
}

func (f *fakeStore) addBooking(id, clientID string, status booking.Status) {
	f.bookings[id] = &booking.Booking{
		ID:        id,
		ClientID:  clientID,
		Service:   booking.ServiceBoarding,
		StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:    status,
	}
}

// fakeBookings adapts the shared store to the booking reader interface.
type fakeBookings struct {
	store *fakeStore
}

func (f *fakeBookings) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := f.store.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeStore) Create(_ context.Context, a *Application) error {
	for _, existing := range f.apps {
		if existing.BookingID == a.BookingID && existing.SitterID == a.SitterID {
			return ErrAlreadyApplied
		}
	}
	f.nextID++
	a.ID = fmt.Sprintf("app-%d", f.nextID)
	a.CreatedAt = time.Now()
	clone := *a
	f.apps[a.ID] = &clone
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (f *fakeStore) ListForBooking(_ context.Context, bookingID string) ([]*Application, error) {
	var out []*Application
	for _, a := range f.apps {
		if a.BookingID == bookingID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStore) ListForSitter(_ context.Context, sitterID string, status Status) ([]*WithBooking, error) {
	var out []*WithBooking
	for _, a := range f.apps {
		if a.SitterID != sitterID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		b := f.bookings[a.BookingID]
		out = append(out, &WithBooking{
			Application: *a,
			Booking: BookingSummary{
				ID:        b.ID,
				ClientID:  b.ClientID,
				Service:   string(b.Service),
				StartDate: b.StartDate,
				Status:    string(b.Status),
			},
		})
	}
	return out, nil
}

func (f *fakeStore) Accept(_ context.Context, applicationID, bookingID, sitterID string) error {
	b, ok := f.bookings[bookingID]
	if !ok || b.Status != booking.StatusPublished || b.SitterID != nil {
		return ErrBookingClosed
	}
	a, ok := f.apps[applicationID]
	if !ok || a.Status != StatusPending {
		return ErrNotPending
	}

	b.SitterID = &sitterID
	b.Status = booking.StatusReserved
	a.Status = StatusAccepted
	for _, sibling := range f.apps {
		if sibling.BookingID == bookingID && sibling.Status == StatusPending {
			sibling.Status = StatusRejected
		}
	}
	return nil
}

func (f *fakeStore) SetStatus(_ context.Context, id string, from, to Status) error {
	a, ok := f.apps[id]
	if !ok || a.Status != from {
		return ErrNotPending
	}
	a.Status = to
	return nil
}

func intPtr(v int) *int { return &v }

func apply(t *testing.T, svc Service, bookingID, sitterID string) *Application {
	t.Helper()
	a, err := svc.Apply(context.Background(), bookingID, sitterID, ApplyRequest{
		Message:      "happy to help",
		OfferedPrice: intPtr(15000),
	})
	require.NoError(t, err)
	return a
}

func TestApply(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)

	a := apply(t, svc, "booking-1", "sitter-1")
	require.Equal(t, StatusPending, a.Status)
	require.Equal(t, 15000, *a.OfferedPrice)
}

func TestApplyValidation(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-open", "client-1", booking.StatusPublished)
	store.addBooking("booking-reserved", "client-1", booking.StatusReserved)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	valid := ApplyRequest{Message: "hi", OfferedPrice: intPtr(100)}

	tests := []struct {
		name      string
		bookingID string
		sitterID  string
		req       ApplyRequest
		wantErr   error
	}{
		{
			name:      "blank message",
			bookingID: "booking-open",
			sitterID:  "sitter-1",
			req:       ApplyRequest{Message: "   ", OfferedPrice: intPtr(100)},
			wantErr:   ErrMessageRequired,
		},
		{
			name:      "missing price",
			bookingID: "booking-open",
			sitterID:  "sitter-1",
			req:       ApplyRequest{Message: "hi"},
			wantErr:   ErrInvalidPrice,
		},
		{
			name:      "negative price",
			bookingID: "booking-open",
			sitterID:  "sitter-1",
			req:       ApplyRequest{Message: "hi", OfferedPrice: intPtr(-1)},
			wantErr:   ErrInvalidPrice,
		},
		{
			name:      "own booking",
			bookingID: "booking-open",
			sitterID:  "client-1",
			req:       valid,
			wantErr:   ErrOwnBooking,
		},
		{
			name:      "booking no longer open",
			bookingID: "booking-reserved",
			sitterID:  "sitter-1",
			req:       valid,
			wantErr:   ErrBookingClosed,
		},
		{
			name:      "unknown booking",
			bookingID: "booking-404",
			sitterID:  "sitter-1",
			req:       valid,
			wantErr:   booking.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply(ctx, tt.bookingID, tt.sitterID, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApplyTwice(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)

	apply(t, svc, "booking-1", "sitter-1")
	_, err := svc.Apply(context.Background(), "booking-1", "sitter-1", ApplyRequest{
		Message:      "me again",
		OfferedPrice: intPtr(100),
	})
	require.ErrorIs(t, err, ErrAlreadyApplied)
	require.Len(t, store.apps, 1)
}

func TestAccept(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	winner := apply(t, svc, "booking-1", "sitter-1")
	loser := apply(t, svc, "booking-1", "sitter-2")

	accepted, err := svc.Accept(ctx, winner.ID, "client-1")
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, accepted.Status)

	// The booking was reserved for the winning sitter.
	b := store.bookings["booking-1"]
	require.Equal(t, booking.StatusReserved, b.Status)
	require.Equal(t, "sitter-1", *b.SitterID)

	// The pending sibling was rejected in the same step.
	require.Equal(t, StatusRejected, store.apps[loser.ID].Status)
}

func TestAcceptPermissions(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	a := apply(t, svc, "booking-1", "sitter-1")

	_, err := svc.Accept(ctx, a.ID, "client-2")
	require.ErrorIs(t, err, ErrNotBookingOwner)

	_, err = svc.Accept(ctx, "app-404", "client-1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAcceptDecidedApplication(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	a := apply(t, svc, "booking-1", "sitter-1")

	_, err := svc.Reject(ctx, a.ID, "client-1")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, a.ID, "client-1")
	require.ErrorIs(t, err, ErrNotPending)
}

func TestReject(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	a := apply(t, svc, "booking-1", "sitter-1")

	rejected, err := svc.Reject(ctx, a.ID, "client-1")
	require.NoError(t, err)
	require.Equal(t, StatusRejected, rejected.Status)

	// The booking stays open for other applicants.
	require.Equal(t, booking.StatusPublished, store.bookings["booking-1"].Status)

	_, err = svc.Reject(ctx, a.ID, "client-1")
	require.ErrorIs(t, err, ErrNotPending)
}

func TestListForBooking(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	apply(t, svc, "booking-1", "sitter-1")
	apply(t, svc, "booking-1", "sitter-2")

	apps, err := svc.ListForBooking(ctx, "booking-1", "client-1", false)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	// Admins see any booking's applications.
	apps, err = svc.ListForBooking(ctx, "booking-1", "someone-else", true)
	require.NoError(t, err)
	require.Len(t, apps, 2)

	_, err = svc.ListForBooking(ctx, "booking-1", "someone-else", false)
	require.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestListAccepted(t *testing.T) {
	store := newFakeStore()
	store.addBooking("booking-1", "client-1", booking.StatusPublished)
	store.addBooking("booking-2", "client-2", booking.StatusPublished)
	svc := NewService(store, &fakeBookings{store}, nil)
	ctx := context.Background()

	a := apply(t, svc, "booking-1", "sitter-1")
	apply(t, svc, "booking-2", "sitter-1")

	_, err := svc.Accept(ctx, a.ID, "client-1")
	require.NoError(t, err)

	accepted, err := svc.ListAccepted(ctx, "sitter-1")
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, "booking-1", accepted[0].Booking.ID)

	mine, err := svc.ListMine(ctx, "sitter-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
}
