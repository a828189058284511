package service

import (
	"context"
	"testing"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
	"github.com/stretchr/testify/require"
)

func TestRecordActivity(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	streaks := &StreakService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// First ever activity starts the streak at 1.
	streak, err := streaks.RecordActivity(ctx, user.ID, day1)
	require.NoError(t, err)
	require.Equal(t, int64(1), streak)

	// A repeat visit the same day is a no-op.
	streak, err = streaks.RecordActivity(ctx, user.ID, day1.Add(8*time.Hour))
	require.NoError(t, err)
	require.Equal(t, int64(1), streak)

	// The next calendar day extends the streak.
	streak, err = streaks.RecordActivity(ctx, user.ID, day1.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, int64(2), streak)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stored.Streak)
	require.Equal(t, "2025-03-11", stored.LastActiveDate)

	// Skipping a day resets to 1.
	streak, err = streaks.RecordActivity(ctx, user.ID, day1.AddDate(0, 0, 3))
	require.NoError(t, err)
	require.Equal(t, int64(1), streak)
}

func TestRecordActivityUsesLocalDay(t *testing.T) {
	st := newTestStore(t)
	auth := &AuthService{Store: st}
	streaks := &StreakService{Store: st}
	ctx := context.Background()

	user := signUp(t, auth, "Alice", "alice@example.com", "password123").User

	zone := time.FixedZone("AEST", 10*60*60)

	// 23:30 and 00:30 local are different days even though they are an
	// hour apart on the clock.
	_, err := streaks.RecordActivity(ctx, user.ID, time.Date(2025, 3, 10, 23, 30, 0, 0, zone))
	require.NoError(t, err)

	streak, err := streaks.RecordActivity(ctx, user.ID, time.Date(2025, 3, 11, 0, 30, 0, 0, zone))
	require.NoError(t, err)
	require.Equal(t, int64(2), streak)

	stored, err := st.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.LocalDate(time.Date(2025, 3, 11, 0, 30, 0, 0, zone)), stored.LastActiveDate)
}

func TestRecordActivityUnknownUser(t *testing.T) {
	st := newTestStore(t)
	streaks := &StreakService{Store: st}

	_, err := streaks.RecordActivity(context.Background(), "missing", time.Now())
	require.ErrorIs(t, err, store.ErrNotFound)
}
