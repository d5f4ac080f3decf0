package schedule

import "time"

// Period is one timed slot of the school day.
type Period struct {
	Start string // "HH:MM"
	End   string
}

// PeriodTimes lists the wall-clock window for P0 through P6.
var PeriodTimes = [Slots]Period{
	{"08:05", "08:55"},
	{"09:15", "10:05"},
	{"10:05", "10:55"},
	{"11:25", "12:15"},
	{"12:15", "13:05"},
	{"13:55", "14:45"},
	{"14:45", "15:35"},
}

// PeriodAt returns the slot index active at t, or -1 when no period is
// running. Both endpoints are inclusive, matching the displayed times.
func PeriodAt(t time.Time) int {
	mins := t.Hour()*60 + t.Minute()
	for i, p := range PeriodTimes {
		if mins >= clockMinutes(p.Start) && mins <= clockMinutes(p.End) {
			return i
		}
	}
	return -1
}

func clockMinutes(hhmm string) int {
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return h*60 + m
}
