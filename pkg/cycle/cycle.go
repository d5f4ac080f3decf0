// Package cycle maps calendar dates onto the recurring 10-day school
// cycle. The cycle advances only on weekdays, anchored to the first
// known school day.
package cycle

import (
	"fmt"
	"time"
)

// Length is the number of days in the recurring cycle.
const Length = 10

// Anchor is the first known school day. It must be a weekday.
var Anchor = time.Date(2026, time.January, 27, 0, 0, 0, 0, time.Local)

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// DayForDate returns the cycle day in [1, Length] for the given date.
// It counts weekdays from the anchor up to (not including) the date.
func DayForDate(t time.Time) int {
	weekdays := 0
	cur := Anchor
	end := midnight(t)
	for cur.Before(end) {
		if !IsWeekend(cur) {
			weekdays++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	n := weekdays % Length
	if n < 0 {
		n += Length
	}
	return n + 1
}

// CurrentDay resolves now to a cycle day. Weekends borrow the most
// recent Friday so the grid keeps showing the last school day.
func CurrentDay(now time.Time) int {
	switch now.Weekday() {
	case time.Saturday:
		now = now.AddDate(0, 0, -1)
	case time.Sunday:
		now = now.AddDate(0, 0, -2)
	}
	return DayForDate(now)
}

// DayKey renders a calendar date as the stable key used by the
// once-per-day onboarding flags.
func DayKey(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d", t.Year(), int(t.Month()), t.Day())
}

// NextMidnight returns the first instant of the day after now, for
// scheduling the midnight rollover timer.
func NextMidnight(now time.Time) time.Time {
	return midnight(now).AddDate(0, 0, 1)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
