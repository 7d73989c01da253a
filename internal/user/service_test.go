package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pawnecta/petsitting-backend/internal/auth"
)

type fakeRepo struct {
	users  map[string]*User // keyed by id
	nextID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[string]*User)}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	f.nextID++
	u.ID = fmt.Sprintf("user-%d", f.nextID)
	u.CreatedAt = time.Now()
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id string, t time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastLoginAt = &t
	}
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range f.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return ErrNotFound
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepo) Deactivate(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	return nil
}

func newTestService(repo *fakeRepo) Service {
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Email:       "  Ana@Example.COM ",
		Password:    "supersecret",
		DisplayName: "Ana",
	})
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", u.Email)
	require.True(t, u.IsActive)
	require.False(t, u.IsSitter)

	logged, err := svc.Login(ctx, "ana@example.com", "supersecret")
	require.NoError(t, err)
	require.Equal(t, u.ID, logged.ID)

	_, err = svc.Login(ctx, "ana@example.com", "wrongpassword")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "supersecret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "   ", Password: "supersecret"})
	require.Error(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "short"})
	require.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	// Same address with different casing is still a duplicate.
	_, err = svc.Register(ctx, RegisterRequest{Email: "A@B.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestRegisterAsSitterStartsUnapproved(t *testing.T) {
	svc := newTestService(newFakeRepo())

	u, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "sitter@example.com",
		Password: "supersecret",
		AsSitter: true,
	})
	require.NoError(t, err)
	require.True(t, u.IsSitter)
	require.False(t, u.SitterApproved)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{Email: "a@b.com", Password: "supersecret"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, u.ID))

	_, err = svc.Login(ctx, "a@b.com", "supersecret")
	require.ErrorIs(t, err, ErrInactiveUser)
}

func TestUpdateRoleFlags(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterRequest{
		Email:    "sitter@example.com",
		Password: "supersecret",
		AsSitter: true,
	})
	require.NoError(t, err)

	approved := true
	u, err = svc.Update(ctx, u.ID, UpdateRequest{SitterApproved: &approved})
	require.NoError(t, err)
	require.True(t, u.SitterApproved)

	// Dropping the sitter role clears the approval.
	notSitter := false
	u, err = svc.Update(ctx, u.ID, UpdateRequest{IsSitter: &notSitter})
	require.NoError(t, err)
	require.False(t, u.IsSitter)
	require.False(t, u.SitterApproved)
}
