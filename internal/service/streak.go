package service

import (
	"context"
	"time"

	"github.com/rdmapp/rdm-server/internal/domain"
	"github.com/rdmapp/rdm-server/internal/store"
)

// StreakService maintains the consecutive-active-days counter. Dates are
// compared as YYYY-MM-DD strings in the caller's local timezone.
type StreakService struct {
	Store store.Store
}

// RecordActivity marks the user active at now and returns the resulting
// streak: unchanged for a repeat visit on the same day, incremented for a
// consecutive day, reset to 1 after a gap.
func (s *StreakService) RecordActivity(
	ctx context.Context,
	userID string,
	now time.Time,
) (int64, error) {
	today := domain.LocalDate(now)

	var streak int64
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		user, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			return err
		}

		streak = domain.NextStreak(user.LastActiveDate, today, user.Streak)
		if streak == user.Streak && user.LastActiveDate == today {
			return nil // same-day repeat, nothing to persist
		}
		return tx.Users().UpdateStreak(ctx, userID, streak, today)
	})
	return streak, err
}
