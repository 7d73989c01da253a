package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRepo stores dates in memory with ReplaceDates semantics matching the
// real repository: delete the window, insert the given dates.
type fakeRepo struct {
	dates   map[string][]time.Time
	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{dates: make(map[string][]time.Time)}
}

func (f *fakeRepo) ListDates(_ context.Context, sitterID string, from, to time.Time) ([]time.Time, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []time.Time
	for _, d := range f.dates[sitterID] {
		if !d.Before(from) && !d.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) ReplaceDates(_ context.Context, sitterID string, from, to time.Time, dates []time.Time) error {
	var kept []time.Time
	for _, d := range f.dates[sitterID] {
		if d.Before(from) || d.After(to) {
			kept = append(kept, d)
		}
	}
	f.dates[sitterID] = append(kept, dates...)
	return nil
}

func (f *fakeRepo) CountFrom(_ context.Context, sitterID string, from time.Time) (int, error) {
	count := 0
	for _, d := range f.dates[sitterID] {
		if !d.Before(from) {
			count++
		}
	}
	return count, nil
}

func fixedNow() time.Time {
	return time.Date(2026, 5, 15, 10, 30, 0, 0, time.UTC)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	selection := []time.Time{
		day(2026, 5, 20),
		day(2026, 5, 21),
		day(2026, 5, 20), // duplicate collapses
	}

	require.NoError(t, svc.Save(ctx, "sitter-1", selection))

	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, []time.Time{day(2026, 5, 20), day(2026, 5, 21)}, got)
}

func TestSaveIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	selection := NextDays(day(2026, 6, 1), 5)
	require.NoError(t, svc.Save(ctx, "sitter-1", selection))
	require.NoError(t, svc.Save(ctx, "sitter-1", selection))

	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Len(t, got, 5)
}

func TestSaveDropsDatesOutsideWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	selection := []time.Time{
		day(2026, 5, 14), // yesterday
		day(2026, 5, 16),
		day(2027, 5, 16), // past window end
	}

	require.NoError(t, svc.Save(ctx, "sitter-1", selection))

	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, []time.Time{day(2026, 5, 16)}, got)
}

func TestSaveReplacesPriorSelection(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "sitter-1", NextDays(day(2026, 6, 1), 10)))
	require.NoError(t, svc.Save(ctx, "sitter-1", []time.Time{day(2026, 7, 1)}))

	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, []time.Time{day(2026, 7, 1)}, got)
}

func TestToggleThenSave(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	// Start from the stored state, toggle June, save the result.
	stored, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)

	selection := ToggleMonth(NewDateSet(stored...), fixedNow(), day(2026, 6, 1))
	require.NoError(t, svc.Save(ctx, "sitter-1", selection.Sorted()))

	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Len(t, got, 30)

	// Toggling again clears the month.
	selection = ToggleMonth(NewDateSet(got...), fixedNow(), day(2026, 6, 1))
	require.NoError(t, svc.Save(ctx, "sitter-1", selection.Sorted()))

	got, err = svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSaveRejectsOversizedSelection(t *testing.T) {
	svc := NewService(newFakeRepo(), fixedNow)

	err := svc.Save(context.Background(), "sitter-1", NextDays(day(2026, 5, 15), maxSelection+1))
	require.ErrorIs(t, err, ErrTooManyDates)
}

func TestLoadFailsOpen(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")
	svc := NewService(repo, fixedNow)

	got, err := svc.Load(context.Background(), "sitter-1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSitterIDRequired(t *testing.T) {
	svc := NewService(newFakeRepo(), fixedNow)
	ctx := context.Background()

	_, err := svc.Load(ctx, "")
	require.ErrorIs(t, err, ErrSitterRequired)

	err = svc.Save(ctx, "", nil)
	require.ErrorIs(t, err, ErrSitterRequired)
}

func TestBulkMergesWithStoredSelection(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "sitter-1", []time.Time{day(2026, 7, 1)}))

	got, err := svc.Bulk(ctx, "sitter-1", func(selection DateSet, today time.Time) DateSet {
		return Merge(selection, NextDays(today, 2))
	})
	require.NoError(t, err)
	require.Equal(t, []time.Time{day(2026, 5, 15), day(2026, 5, 16), day(2026, 7, 1)}, got)
}

func TestBulkAbortsWhenLoadFails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "sitter-1", NextDays(day(2026, 6, 1), 10)))

	// A transient read failure must not let a shortcut run against an
	// empty set and wipe the stored calendar on save.
	repo.listErr = errors.New("connection refused")
	_, err := svc.Bulk(ctx, "sitter-1", func(selection DateSet, today time.Time) DateSet {
		return Merge(selection, NextDays(today, 3))
	})
	require.Error(t, err)

	repo.listErr = nil
	got, err := svc.Load(ctx, "sitter-1")
	require.NoError(t, err)
	require.Len(t, got, 10)
}

func TestBulkUsesServiceClock(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)

	got, err := svc.Bulk(context.Background(), "sitter-1", func(selection DateSet, today time.Time) DateSet {
		return ToggleMonth(selection, today, day(2026, 5, 1))
	})
	require.NoError(t, err)
	// fixedNow is May 15: the toggle covers the 15th through the 31st.
	require.Len(t, got, 17)
	require.Equal(t, day(2026, 5, 15), got[0])
}

func TestUpcomingCount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fixedNow)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "sitter-1", NextDays(day(2026, 5, 16), 4)))

	count, err := svc.UpcomingCount(ctx, "sitter-1")
	require.NoError(t, err)
	require.Equal(t, 4, count)
}
