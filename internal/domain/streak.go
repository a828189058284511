package domain

import "time"

// DateLayout is the calendar-date format used for streak comparisons.
// Dates are computed in the caller's local timezone, not UTC, so the
// mobile client and server agree on what "today" means.
const DateLayout = "2006-01-02"

// LocalDate formats t as YYYY-MM-DD in t's own location.
func LocalDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NextStreak applies the streak rule given the stored last-active date, the
// current date (both YYYY-MM-DD) and the current streak count:
//
//	same day         -> unchanged
//	consecutive day  -> +1
//	gap or first use -> reset to 1 (today's activity counts)
//
// A malformed stored date is treated as a first activity rather than an
// error; the streak restarts at 1 and the date field heals itself.
func NextStreak(lastActiveDate, today string, current int64) int64 {
	if lastActiveDate == today {
		return current
	}

	last, err := time.Parse(DateLayout, lastActiveDate)
	if err != nil {
		return 1
	}
	cur, err := time.Parse(DateLayout, today)
	if err != nil {
		return 1
	}

	if cur.Sub(last) == 24*time.Hour {
		if current < 1 {
			return 1
		}
		return current + 1
	}
	return 1
}
