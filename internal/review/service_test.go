package review

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	reviews map[string]*Review
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{reviews: make(map[string]*Review)}
}

func (f *fakeRepo) Create(_ context.Context, rv *Review) error {
	f.nextID++
	rv.ID = fmt.Sprintf("review-%d", f.nextID)
	rv.CreatedAt = time.Date(2026, 5, 15, 10, 0, 0, 0, time.UTC).Add(time.Duration(f.nextID) * time.Minute)
	stored := *rv
	f.reviews[rv.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Review, error) {
	rv, ok := f.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rv
	return &copied, nil
}

func (f *fakeRepo) ListForSitter(_ context.Context, sitterID string, status Status) ([]*Review, error) {
	var out []*Review
	for _, rv := range f.reviews {
		if rv.SitterID == sitterID && rv.Status == status {
			copied := *rv
			out = append(out, &copied)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeRepo) ListByStatus(_ context.Context, status Status, page, pageSize int) ([]*Review, int, error) {
	var all []*Review
	for _, rv := range f.reviews {
		if rv.Status == status {
			copied := *rv
			all = append(all, &copied)
		}
	}
	sortNewestFirst(all)
	total := len(all)
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := min(start+pageSize, total)
	return all[start:end], total, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id string, to Status) error {
	rv, ok := f.reviews[id]
	if !ok {
		return ErrNotFound
	}
	if rv.Status != StatusPending {
		return ErrNotPending
	}
	rv.Status = to
	return nil
}

func sortNewestFirst(reviews []*Review) {
	for i := range reviews {
		for j := i + 1; j < len(reviews); j++ {
			if reviews[j].CreatedAt.After(reviews[i].CreatedAt) {
				reviews[i], reviews[j] = reviews[j], reviews[i]
			}
		}
	}
}

func create(t *testing.T, svc Service, sitterID, clientID string, rating int) *Review {
	t.Helper()
	rv, err := svc.Create(context.Background(), sitterID, clientID, CreateRequest{
		Rating:  rating,
		Comment: "great with our dog",
	})
	require.NoError(t, err)
	return rv
}

func TestCreateReview(t *testing.T) {
	svc := NewService(newFakeRepo())

	rv, err := svc.Create(context.Background(), "sitter-1", "client-1", CreateRequest{
		Rating:   5,
		Comment:  "  took wonderful care of Luna  ",
		PhotoIDs: []string{"photo-1"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, rv.ID)
	require.Equal(t, "sitter-1", rv.SitterID)
	require.Equal(t, "client-1", rv.ClientID)
	require.Equal(t, 5, rv.Rating)
	require.Equal(t, "took wonderful care of Luna", rv.Comment)
	require.Equal(t, StatusPending, rv.Status)
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name    string
		sitter  string
		client  string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "rating too low",
			sitter:  "sitter-1",
			client:  "client-1",
			req:     CreateRequest{Rating: 0, Comment: "fine"},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "rating too high",
			sitter:  "sitter-1",
			client:  "client-1",
			req:     CreateRequest{Rating: 6, Comment: "fine"},
			wantErr: ErrInvalidRating,
		},
		{
			name:    "blank comment",
			sitter:  "sitter-1",
			client:  "client-1",
			req:     CreateRequest{Rating: 4, Comment: "   "},
			wantErr: ErrCommentRequired,
		},
		{
			name:    "own profile",
			sitter:  "user-1",
			client:  "user-1",
			req:     CreateRequest{Rating: 4, Comment: "fine"},
			wantErr: ErrOwnProfile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeRepo())
			_, err := svc.Create(context.Background(), tt.sitter, tt.client, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListForSitterReturnsApprovedOnly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	approved := create(t, svc, "sitter-1", "client-1", 5)
	create(t, svc, "sitter-1", "client-2", 1)
	rejected := create(t, svc, "sitter-1", "client-3", 2)
	create(t, svc, "sitter-2", "client-1", 4)

	_, err := svc.Approve(context.Background(), approved.ID)
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), rejected.ID)
	require.NoError(t, err)

	reviews, err := svc.ListForSitter(context.Background(), "sitter-1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, approved.ID, reviews[0].ID)
	require.Equal(t, StatusApproved, reviews[0].Status)
}

func TestListPendingQueue(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	first := create(t, svc, "sitter-1", "client-1", 5)
	second := create(t, svc, "sitter-2", "client-2", 3)

	_, err := svc.Approve(context.Background(), first.ID)
	require.NoError(t, err)

	pending, total, err := svc.ListPending(context.Background(), 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Len(t, pending, 1)
	require.Equal(t, second.ID, pending[0].ID)
}

func TestModerateDecidedReview(t *testing.T) {
	svc := NewService(newFakeRepo())

	rv := create(t, svc, "sitter-1", "client-1", 4)

	_, err := svc.Approve(context.Background(), rv.ID)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), rv.ID)
	require.ErrorIs(t, err, ErrNotPending)

	_, err = svc.Approve(context.Background(), rv.ID)
	require.ErrorIs(t, err, ErrNotPending)
}

func TestModerateUnknownReview(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Approve(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
