package cycle

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

func TestDayForDateCountsWeekdaysFromAnchor(t *testing.T) {
	// Anchor is Tuesday 2026-01-27.
	cases := []struct {
		date time.Time
		want int
	}{
		{date(2026, time.January, 27), 1},
		{date(2026, time.January, 28), 2},
		{date(2026, time.January, 30), 4},
		// The weekend does not advance the cycle.
		{date(2026, time.February, 2), 5},
		{date(2026, time.February, 6), 9},
		{date(2026, time.February, 9), 10},
		// Wraps back to day 1 after ten school days.
		{date(2026, time.February, 10), 1},
	}
	for _, tc := range cases {
		if got := DayForDate(tc.date); got != tc.want {
			t.Fatalf("DayForDate(%s) = %d, want %d", tc.date.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestCurrentDayWeekendBorrowsFriday(t *testing.T) {
	friday := date(2026, time.January, 30)
	saturday := date(2026, time.January, 31)
	sunday := date(2026, time.February, 1)

	want := DayForDate(friday)
	if got := CurrentDay(saturday); got != want {
		t.Fatalf("saturday: got day %d, want %d", got, want)
	}
	if got := CurrentDay(sunday); got != want {
		t.Fatalf("sunday: got day %d, want %d", got, want)
	}
	if got := CurrentDay(friday); got != want {
		t.Fatalf("friday: got day %d, want %d", got, want)
	}
}

func TestIsWeekend(t *testing.T) {
	if IsWeekend(date(2026, time.January, 30)) {
		t.Fatal("friday reported as weekend")
	}
	if !IsWeekend(date(2026, time.January, 31)) {
		t.Fatal("saturday not reported as weekend")
	}
	if !IsWeekend(date(2026, time.February, 1)) {
		t.Fatal("sunday not reported as weekend")
	}
}

func TestDayKeyIsStableWithinADay(t *testing.T) {
	morning := time.Date(2026, time.March, 5, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, time.March, 5, 23, 59, 59, 0, time.Local)
	if DayKey(morning) != DayKey(night) {
		t.Fatalf("keys differ within one day: %q vs %q", DayKey(morning), DayKey(night))
	}
	if got, want := DayKey(morning), "2026-3-5"; got != want {
		t.Fatalf("DayKey = %q, want %q", got, want)
	}
}

func TestNextMidnight(t *testing.T) {
	now := time.Date(2026, time.March, 5, 18, 45, 12, 0, time.Local)
	next := NextMidnight(now)
	want := time.Date(2026, time.March, 6, 0, 0, 0, 0, time.Local)
	if !next.Equal(want) {
		t.Fatalf("NextMidnight = %v, want %v", next, want)
	}
	if !next.After(now) {
		t.Fatal("NextMidnight not after now")
	}
}
