package membership

import "time"

// PeriodEnd returns when a subscription starting at start runs out.
// Daily passes last exactly 24 hours. Monthly plans last one calendar
// month, clamped to the end of the target month: Jan 31 -> Feb 28/29,
// never Mar 2.
func PeriodEnd(plan PlanType, start time.Time) time.Time {
	if plan == PlanDaily {
		return start.AddDate(0, 0, 1)
	}
	return addCalendarMonth(start)
}

func addCalendarMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	lastDay := daysInMonth(y, m+1)
	if d > lastDay {
		d = lastDay
	}
	return time.Date(y, m+1, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
