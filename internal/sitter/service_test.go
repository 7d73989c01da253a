package sitter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles map[string]*Profile
	searches int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]*Profile)}
}

func (f *fakeRepo) Upsert(_ context.Context, p *Profile) error {
	clone := *p
	f.profiles[p.UserID] = &clone
	return nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, userID string) (*Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeRepo) Search(_ context.Context, filter SearchFilter) ([]*Profile, int, error) {
	f.searches++
	var out []*Profile
	for _, p := range f.profiles {
		if filter.City != "" && (p.City == nil || *p.City != filter.City) {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestUpsertProfile(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil, time.Minute)
	ctx := context.Background()

	p, err := svc.UpsertProfile(ctx, "sitter-1", UpsertRequest{
		Bio:         "  dog person  ",
		Services:    []string{"boarding", "walk"},
		NightlyRate: intPtr(20000),
		CaresDogs:   true,
		City:        "Santiago",
	})
	require.NoError(t, err)
	require.Equal(t, "dog person", *p.Bio)
	require.Equal(t, []string{"boarding", "walk"}, p.Services)
	require.Equal(t, "Santiago", *p.City)

	// A second upsert fully replaces the profile.
	p, err = svc.UpsertProfile(ctx, "sitter-1", UpsertRequest{
		Services: []string{"daycare"},
	})
	require.NoError(t, err)
	require.Nil(t, p.Bio)
	require.Nil(t, p.NightlyRate)
	require.Equal(t, []string{"daycare"}, p.Services)

	stored, err := svc.Get(ctx, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, []string{"daycare"}, stored.Services)
}

func TestUpsertProfileValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, time.Minute)
	ctx := context.Background()

	_, err := svc.UpsertProfile(ctx, "sitter-1", UpsertRequest{
		Services: []string{"grooming"},
	})
	require.ErrorIs(t, err, ErrInvalidService)

	_, err = svc.UpsertProfile(ctx, "sitter-1", UpsertRequest{
		NightlyRate: intPtr(-1),
	})
	require.ErrorIs(t, err, ErrInvalidRate)
}

func TestSearchValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nil, time.Minute)
	ctx := context.Background()

	_, _, err := svc.Search(ctx, SearchFilter{Service: "boarding"})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = svc.Search(ctx, SearchFilter{
		Service: "grooming",
		Date:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInvalidService)
}

func TestSearchWithoutCache(t *testing.T) {
	repo := newFakeRepo()
	repo.profiles["sitter-1"] = &Profile{UserID: "sitter-1", City: strPtr("Santiago")}
	repo.profiles["sitter-2"] = &Profile{UserID: "sitter-2", City: strPtr("Valparaiso")}

	// A nil redis client disables the cache; every search hits the repo.
	svc := NewService(repo, nil, time.Minute)
	ctx := context.Background()

	filter := SearchFilter{
		Date: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		City: "Santiago",
	}

	profiles, total, err := svc.Search(ctx, filter)
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "sitter-1", profiles[0].UserID)

	_, _, err = svc.Search(ctx, filter)
	require.NoError(t, err)
	require.Equal(t, 2, repo.searches)
}
