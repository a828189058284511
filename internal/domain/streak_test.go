package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNextStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		last    string
		today   string
		current int64
		want    int64
	}{
		{"same day is a no-op", "2025-03-10", "2025-03-10", 4, 4},
		{"consecutive day increments", "2025-03-10", "2025-03-11", 4, 5},
		{"gap resets to one", "2025-03-10", "2025-03-13", 4, 1},
		{"first activity starts at one", "", "2025-03-10", 0, 1},
		{"malformed stored date heals to one", "yesterday", "2025-03-10", 7, 1},
		{"month boundary counts as consecutive", "2025-03-31", "2025-04-01", 2, 3},
		{"year boundary counts as consecutive", "2024-12-31", "2025-01-01", 9, 10},
		{"consecutive day with zero streak starts at one", "2025-03-10", "2025-03-11", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextStreak(tt.last, tt.today, tt.current))
		})
	}
}

func TestLocalDate(t *testing.T) {
	t.Parallel()

	// The date is taken from the time's own location, not UTC. Late evening
	// in a positive-offset zone is already "tomorrow" locally.
	loc := time.FixedZone("UTC+10", 10*60*60)
	late := time.Date(2025, 3, 10, 23, 30, 0, 0, loc)

	require.Equal(t, "2025-03-10", LocalDate(late))
	require.Equal(t, "2025-03-10", LocalDate(late.Add(10*time.Minute)))
	require.Equal(t, "2025-03-09", LocalDate(late.UTC())) // same instant, different wall clock
}
