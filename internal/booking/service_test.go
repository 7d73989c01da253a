package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pawnecta/petsitting-backend/internal/address"
	"github.com/pawnecta/petsitting-backend/internal/pet"
)

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	f.nextID++
	b.ID = fmt.Sprintf("booking-%d", f.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if filter.ClientID != "" && b.ClientID != filter.ClientID {
			continue
		}
		if filter.SitterID != "" && (b.SitterID == nil || *b.SitterID != filter.SitterID) {
			continue
		}
		if filter.Unassigned && b.SitterID != nil {
			continue
		}
		if filter.ExcludeClientID != "" && b.ClientID == filter.ExcludeClientID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if !filter.StartFrom.IsZero() && b.StartDate.Before(filter.StartFrom) {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Claim(_ context.Context, id string, sitterID string) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != StatusPublished || b.SitterID != nil {
		return ErrAlreadyAssigned
	}
	b.SitterID = &sitterID
	b.Status = StatusReserved
	return nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id string, from, to Status) error {
	b, ok := f.bookings[id]
	if !ok || b.Status != from {
		return ErrInvalidTransition
	}
	b.Status = to
	return nil
}

// fakePets answers ownership queries from a fixed owner map.
type fakePets struct {
	pet.Service
	owners map[string]string // pet id -> owner id
}

func (f *fakePets) GetByIDs(_ context.Context, ids []string) ([]*pet.Pet, error) {
	var out []*pet.Pet
	for _, id := range ids {
		owner, ok := f.owners[id]
		if !ok {
			continue
		}
		out = append(out, &pet.Pet{ID: id, OwnerID: owner})
	}
	return out, nil
}

type fakeAddresses struct {
	address.Service
	owners map[string]string // address id -> owner id
}

func (f *fakeAddresses) OwnedBy(_ context.Context, id, ownerID string) (bool, error) {
	return f.owners[id] == ownerID, nil
}

type recordingNotifier struct {
	claimed, confirmed, cancelled int
}

func (n *recordingNotifier) BookingClaimed(context.Context, *Booking)   { n.claimed++ }
func (n *recordingNotifier) BookingConfirmed(context.Context, *Booking) { n.confirmed++ }
func (n *recordingNotifier) BookingCancelled(context.Context, *Booking) { n.cancelled++ }

func fixedNow() time.Time {
	return time.Date(2026, 5, 15, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeRepo, notifier Notifier) Service {
	pets := &fakePets{owners: map[string]string{
		"pet-1": "client-1",
		"pet-2": "client-1",
		"pet-3": "client-2",
	}}
	addresses := &fakeAddresses{owners: map[string]string{
		"addr-1": "client-1",
	}}

	svc := NewService(repo, pets, addresses, notifier).(*service)
	svc.nowFn = fixedNow
	return svc
}

func validCreate() CreateRequest {
	end := time.Date(2026, 5, 22, 0, 0, 0, 0, time.UTC)
	return CreateRequest{
		Service:   ServiceBoarding,
		StartDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		PetIDs:    []string{"pet-1", "pet-2"},
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)
	require.Equal(t, StatusPublished, b.Status)
	require.Nil(t, b.SitterID)
	require.NotEmpty(t, b.ID)
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantErr error
	}{
		{
			name:    "unknown service type",
			mutate:  func(r *CreateRequest) { r.Service = "grooming" },
			wantErr: ErrInvalidService,
		},
		{
			name:    "start date in the past",
			mutate:  func(r *CreateRequest) { r.StartDate = time.Date(2026, 5, 14, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrStartDatePast,
		},
		{
			name: "end before start",
			mutate: func(r *CreateRequest) {
				end := time.Date(2026, 5, 19, 0, 0, 0, 0, time.UTC)
				r.EndDate = &end
			},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "no pets",
			mutate:  func(r *CreateRequest) { r.PetIDs = nil },
			wantErr: ErrNoPets,
		},
		{
			name:    "pet owned by someone else",
			mutate:  func(r *CreateRequest) { r.PetIDs = []string{"pet-3"} },
			wantErr: ErrPetNotOwned,
		},
		{
			name:    "unknown pet",
			mutate:  func(r *CreateRequest) { r.PetIDs = []string{"pet-404"} },
			wantErr: ErrPetNotOwned,
		},
		{
			name: "address owned by someone else",
			mutate: func(r *CreateRequest) {
				addr := "addr-404"
				r.AddressID = &addr
			},
			wantErr: ErrAddressNotOwned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			tt.mutate(&req)
			_, err := svc.Create(ctx, "client-1", req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAllowsSameDaySingleDay(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)

	req := validCreate()
	req.Service = ServiceWalk
	req.StartDate = time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC) // today
	req.EndDate = nil

	b, err := svc.Create(context.Background(), "client-1", req)
	require.NoError(t, err)
	require.Nil(t, b.EndDate)
}

func TestClaim(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	claimed, err := svc.Claim(ctx, b.ID, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, StatusReserved, claimed.Status)
	require.Equal(t, "sitter-1", *claimed.SitterID)
	require.Equal(t, 1, notifier.claimed)

	// Second claim loses the race.
	_, err = svc.Claim(ctx, b.ID, "sitter-2")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestClaimOwnBooking(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	_, err = svc.Claim(ctx, b.ID, "client-1")
	require.ErrorIs(t, err, ErrOwnBooking)
}

func TestConfirm(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)
	_, err = svc.Claim(ctx, b.ID, "sitter-1")
	require.NoError(t, err)

	// A stranger cannot confirm.
	_, err = svc.Confirm(ctx, b.ID, "sitter-2")
	require.ErrorIs(t, err, ErrPermissionDenied)

	confirmed, err := svc.Confirm(ctx, b.ID, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, confirmed.Status)
	require.Equal(t, 1, notifier.confirmed)

	// Confirming twice hits the transition guard.
	_, err = svc.Confirm(ctx, b.ID, "sitter-1")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, notifier)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	// Only the client or an admin may cancel.
	_, err = svc.Cancel(ctx, b.ID, "someone-else", false)
	require.ErrorIs(t, err, ErrPermissionDenied)

	cancelled, err := svc.Cancel(ctx, b.ID, "client-1", false)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	_, err = svc.Cancel(ctx, b.ID, "client-1", false)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelAsAdmin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, b.ID, "admin-1", true)
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, cancelled.Status)
}

func TestSetStatusEnforcesLifecycle(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	// published -> completed is not a legal step.
	_, err = svc.SetStatus(ctx, b.ID, StatusCompleted)
	require.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.SetStatus(ctx, b.ID, Status("bogus"))
	require.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.SetStatus(ctx, b.ID, StatusReserved)
	require.NoError(t, err)
	require.Equal(t, StatusReserved, updated.Status)
}

func TestListOpenExcludesOwnAndPast(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "client-1", validCreate())
	require.NoError(t, err)

	other := validCreate()
	other.PetIDs = []string{"pet-3"}
	theirs, err := newTestService(repo, nil).Create(ctx, "client-2", other)
	require.NoError(t, err)

	open, total, err := svc.ListOpen(ctx, "client-1", 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, theirs.ID, open[0].ID)
	require.NotEqual(t, mine.ID, open[0].ID)
}
