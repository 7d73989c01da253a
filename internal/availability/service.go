package availability

import (
	"context"
	"fmt"
	"log"
	"time"
)

// maxSelection caps a single save. One year has at most 366 selectable days;
// anything beyond that means the client sent garbage.
const maxSelection = 400

// Service exposes the availability calendar operations for a sitter.
type Service interface {
	// Load returns the sitter's available dates inside the current window,
	// sorted ascending. Store failures are logged and yield an empty set:
	// a calendar that fails to load renders as "no availability" rather
	// than an error page.
	Load(ctx context.Context, sitterID string) ([]time.Time, error)

	// Save replaces the sitter's availability inside the current window
	// with the given selection. Duplicates collapse, dates outside the
	// window are dropped. Full-replace semantics: the stored set after a
	// successful save is exactly the normalized selection.
	Save(ctx context.Context, sitterID string, selection []time.Time) error

	// Bulk loads the stored selection, applies a calendar shortcut to it,
	// and saves the result, returning the new selection. Unlike Load, a
	// read failure here aborts the whole operation: a shortcut applied on
	// top of a phantom empty set would wipe the stored calendar on save.
	Bulk(ctx context.Context, sitterID string, apply func(selection DateSet, today time.Time) DateSet) ([]time.Time, error)

	// UpcomingCount returns the number of available days from today onward.
	UpcomingCount(ctx context.Context, sitterID string) (int, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates the availability service. nowFn is injectable for tests;
// pass nil for the real clock.
func NewService(repo Repository, nowFn func() time.Time) Service {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &service{repo: repo, now: nowFn}
}

func (s *service) Load(ctx context.Context, sitterID string) ([]time.Time, error) {
	if sitterID == "" {
		return nil, ErrSitterRequired
	}

	from, to := Window(s.now())
	dates, err := s.repo.ListDates(ctx, sitterID, from, to)
	if err != nil {
		log.Printf("failed to load availability for sitter %s: %v", sitterID, err)
		return []time.Time{}, nil
	}

	return NewDateSet(dates...).Sorted(), nil
}

func (s *service) Save(ctx context.Context, sitterID string, selection []time.Time) error {
	if sitterID == "" {
		return ErrSitterRequired
	}
	if len(selection) > maxSelection {
		return ErrTooManyDates
	}

	from, to := Window(s.now())
	normalized := NewDateSet(selection...).Within(from, to)

	return s.repo.ReplaceDates(ctx, sitterID, from, to, normalized.Sorted())
}

func (s *service) Bulk(ctx context.Context, sitterID string, apply func(selection DateSet, today time.Time) DateSet) ([]time.Time, error) {
	if sitterID == "" {
		return nil, ErrSitterRequired
	}

	now := s.now()
	from, to := Window(now)

	stored, err := s.repo.ListDates(ctx, sitterID, from, to)
	if err != nil {
		return nil, fmt.Errorf("load availability for bulk edit: %w", err)
	}

	// Clamping to the window bounds the result, so no size check is
	// needed here the way Save needs one for raw client input.
	updated := apply(NewDateSet(stored...), now).Within(from, to)

	sorted := updated.Sorted()
	if err := s.repo.ReplaceDates(ctx, sitterID, from, to, sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}

func (s *service) UpcomingCount(ctx context.Context, sitterID string) (int, error) {
	if sitterID == "" {
		return 0, ErrSitterRequired
	}
	return s.repo.CountFrom(ctx, sitterID, DateOf(s.now()))
}
