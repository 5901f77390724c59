package calendar

import (
	"time"

	"maintenance-dashboard-backend/internal/model"
)

// Alternant overlay classes toggled on month cells. The overlay is a
// styling hint, not an event.
const (
	AlternantWork = "alternant-work"
	AlternantOff  = "alternant-off"
)

// DayCell is one cell of the 42-cell month grid.
type DayCell struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Day            int     `json:"day"`
	OtherMonth     bool    `json:"otherMonth,omitempty"`
	Today          bool    `json:"today,omitempty"`
	Holiday        bool    `json:"holiday,omitempty"`
	Weekend        bool    `json:"weekend,omitempty"`
	AlternantClass string  `json:"alternantClass,omitempty"`
	Events         []Event `json:"events"`
}

// MonthGrid builds the visible grid for a month view: always exactly
// six full weeks starting from the Sunday on or before the 1st. Cells
// outside the target month are flagged other-month but still carry
// their own events.
func (a *Aggregator) MonthGrid(data model.Dataset, year int, month time.Month, f Filter) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := dayKey(a.now())

	alternant := alternantUser(data, f)

	cells := make([]DayCell, 0, 42)
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		key := dayKey(date)
		weekday := date.Weekday()
		isWeekend := weekday == time.Saturday || weekday == time.Sunday
		isHoliday := false
		for _, h := range data.Holidays {
			if h.Date == key {
				isHoliday = true
				break
			}
		}

		cell := DayCell{
			Date:       key,
			Day:        date.Day(),
			OtherMonth: date.Month() != month,
			Today:      key == today,
			Holiday:    isHoliday,
			Weekend:    isWeekend,
			Events:     a.EventsForDate(data, date, f),
		}

		if alternant != nil && !isHoliday && !isWeekend {
			if alternantWorks(alternant, date) {
				cell.AlternantClass = AlternantWork
			} else {
				cell.AlternantClass = AlternantOff
			}
		}

		cells = append(cells, cell)
	}
	return cells
}

// alternantUser returns the alternant employee whose overlay should be
// drawn, given the user filter, or nil.
func alternantUser(data model.Dataset, f Filter) *model.User {
	for i := range data.Users {
		u := &data.Users[i]
		if u.EmployeeType == model.EmployeeAlternant && f.wantsUser(u.ID) {
			return u
		}
	}
	return nil
}

// alternantWorks reports whether the biweekly pattern marks the date
// as a working day: Monday through Wednesday on odd ISO weeks, Thursday
// and Friday on even ones, unless the user carries an explicit pattern.
func alternantWorks(u *model.User, date time.Time) bool {
	week1, week2 := []int{1, 2, 3}, []int{4, 5}
	if u.Alternant != nil {
		if len(u.Alternant.Week1) > 0 {
			week1 = u.Alternant.Week1
		}
		if len(u.Alternant.Week2) > 0 {
			week2 = u.Alternant.Week2
		}
	}

	days := week2
	if WeekNumber(date)%2 == 1 {
		days = week1
	}
	weekday := int(date.Weekday())
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}
