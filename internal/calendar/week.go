package calendar

import "time"

// WeekNumber returns the ISO-8601 week number of a date. The biweekly
// alternant overlay keys off its parity.
func WeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}
