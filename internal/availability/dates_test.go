package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateSetNormalizesInputs(t *testing.T) {
	// Same calendar day expressed with different hours and zones.
	loc := time.FixedZone("UTC+5", 5*3600)
	s := NewDateSet(
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 8, 0, 0, 0, loc),
	)

	require.Len(t, s, 1)
	require.True(t, s.Contains(day(2026, 3, 10)))
}

func TestDateSetWithin(t *testing.T) {
	s := NewDateSet(
		day(2026, 1, 1),
		day(2026, 6, 15),
		day(2027, 6, 15),
	)

	got := s.Within(day(2026, 1, 1), day(2027, 1, 1))
	require.Len(t, got, 2)
	require.False(t, got.Contains(day(2027, 6, 15)), "day past window end should be dropped")
}

func TestNextDays(t *testing.T) {
	got := NextDays(time.Date(2026, 2, 27, 15, 30, 0, 0, time.UTC), 3)
	require.Equal(t, []time.Time{
		day(2026, 2, 27),
		day(2026, 2, 28),
		day(2026, 3, 1),
	}, got)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	base := NewDateSet(day(2026, 4, 1))
	merged := Merge(base, NextDays(day(2026, 4, 2), 2))

	require.Len(t, base, 1, "input selection must not be mutated")
	require.Len(t, merged, 3)
}

func TestToggleMonth(t *testing.T) {
	today := day(2026, 5, 15)

	tests := []struct {
		name      string
		selection DateSet
		month     time.Time
		check     func(t *testing.T, got DateSet)
	}{
		{
			name:      "mid-month toggle selects today through month end",
			selection: NewDateSet(),
			month:     day(2026, 5, 1),
			check: func(t *testing.T, got DateSet) {
				// 15th..31st inclusive: 17 days.
				require.Len(t, got, 17)
				require.False(t, got.Contains(day(2026, 5, 14)), "past day must not be selected")
				require.True(t, got.Contains(day(2026, 5, 15)))
				require.True(t, got.Contains(day(2026, 5, 31)))
			},
		},
		{
			name:      "repeat toggle deselects the same range",
			selection: NewDateSet(NextDays(day(2026, 5, 15), 17)...),
			month:     day(2026, 5, 1),
			check: func(t *testing.T, got DateSet) {
				require.Empty(t, got)
			},
		},
		{
			name:      "partial selection fills the gaps instead of clearing",
			selection: NewDateSet(day(2026, 5, 20)),
			month:     day(2026, 5, 1),
			check: func(t *testing.T, got DateSet) {
				require.Len(t, got, 17)
			},
		},
		{
			name:      "future month toggles from the first",
			selection: NewDateSet(),
			month:     day(2026, 6, 1),
			check: func(t *testing.T, got DateSet) {
				require.Len(t, got, 30)
				require.True(t, got.Contains(day(2026, 6, 1)))
			},
		},
		{
			name:      "fully past month is a no-op",
			selection: NewDateSet(day(2026, 5, 20)),
			month:     day(2026, 4, 1),
			check: func(t *testing.T, got DateSet) {
				require.Len(t, got, 1)
				require.True(t, got.Contains(day(2026, 5, 20)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleMonth(tt.selection, today, tt.month)
			tt.check(t, got)
		})
	}
}
