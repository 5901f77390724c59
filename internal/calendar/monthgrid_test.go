package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-dashboard-backend/internal/model"
	"maintenance-dashboard-backend/internal/tenant"
)

func TestMonthGridShape(t *testing.T) {
	agg := NewAggregatorAt(fixedClock(day(2025, time.October, 8)))
	data := tenant.SeedDataset()

	cells := agg.MonthGrid(data, 2025, time.October, Filter{})
	require.Len(t, cells, 42)

	// October 2025 starts on a Wednesday; the grid starts on the
	// Sunday before, September 28.
	assert.Equal(t, "2025-09-28", cells[0].Date)
	assert.True(t, cells[0].OtherMonth)
	assert.Equal(t, 28, cells[0].Day)

	// The 1st sits at index 3 (Sunday..Wednesday).
	assert.Equal(t, "2025-10-01", cells[3].Date)
	assert.False(t, cells[3].OtherMonth)

	// Grid runs into November.
	last := cells[41]
	assert.Equal(t, "2025-11-08", last.Date)
	assert.True(t, last.OtherMonth)
}

func TestMonthGridStartsOnSundayWhenFirstIsSunday(t *testing.T) {
	agg := NewAggregator()

	// June 2025 starts on a Sunday: no leading other-month cells.
	cells := agg.MonthGrid(model.Dataset{}, 2025, time.June, Filter{})
	require.Len(t, cells, 42)
	assert.Equal(t, "2025-06-01", cells[0].Date)
	assert.False(t, cells[0].OtherMonth)
}

func TestMonthGridFlags(t *testing.T) {
	agg := NewAggregatorAt(fixedClock(day(2025, time.December, 10)))
	data := tenant.SeedDataset()

	cells := agg.MonthGrid(data, 2025, time.December, Filter{})
	byDate := make(map[string]DayCell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.True(t, byDate["2025-12-10"].Today)
	assert.True(t, byDate["2025-12-25"].Holiday)
	assert.True(t, byDate["2025-12-27"].Weekend)
	assert.False(t, byDate["2025-12-22"].Weekend)

	// Cells carry their events.
	holidayCell := byDate["2025-12-25"]
	assert.Contains(t, eventTypes(holidayCell.Events), "holiday")
}

func TestMonthGridAlternantOverlay(t *testing.T) {
	agg := NewAggregatorAt(fixedClock(day(2025, time.October, 1)))
	data := tenant.SeedDataset()

	// Seed user 2 (David) is the alternant: Mon-Wed on odd ISO weeks,
	// Thu-Fri on even ones.
	cells := agg.MonthGrid(data, 2025, time.October, Filter{})
	byDate := make(map[string]DayCell, len(cells))
	for _, c := range cells {
		byDate[c.Date] = c
	}

	// Week 41 (odd): Monday Oct 6 through Wednesday Oct 8 working.
	assert.Equal(t, AlternantWork, byDate["2025-10-06"].AlternantClass)
	assert.Equal(t, AlternantWork, byDate["2025-10-07"].AlternantClass)
	assert.Equal(t, AlternantWork, byDate["2025-10-08"].AlternantClass)
	assert.Equal(t, AlternantOff, byDate["2025-10-09"].AlternantClass)
	assert.Equal(t, AlternantOff, byDate["2025-10-10"].AlternantClass)

	// Week 42 (even): Thursday and Friday working.
	assert.Equal(t, AlternantOff, byDate["2025-10-13"].AlternantClass)
	assert.Equal(t, AlternantWork, byDate["2025-10-16"].AlternantClass)
	assert.Equal(t, AlternantWork, byDate["2025-10-17"].AlternantClass)

	// Weekends never carry the overlay.
	assert.Empty(t, byDate["2025-10-11"].AlternantClass)
}

func TestMonthGridAlternantOverlaySkipsHolidays(t *testing.T) {
	agg := NewAggregator()
	data := model.Dataset{
		Users: []model.User{
			{ID: 2, Name: "David Dubois", EmployeeType: model.EmployeeAlternant},
		},
		Holidays: []model.Holiday{
			{ID: 1, Name: "Fête Nationale", Date: "2025-07-14", Type: "holiday"},
		},
	}

	cells := agg.MonthGrid(data, 2025, time.July, Filter{})
	for _, c := range cells {
		if c.Date == "2025-07-14" {
			// July 14 2025 is a Monday in an odd ISO week, but the
			// holiday suppresses the overlay.
			assert.True(t, c.Holiday)
			assert.Empty(t, c.AlternantClass)
		}
	}
}

func TestMonthGridAlternantOverlayRespectsUserFilter(t *testing.T) {
	agg := NewAggregator()
	data := tenant.SeedDataset()

	cells := agg.MonthGrid(data, 2025, time.October, Filter{UserID: 1})
	for _, c := range cells {
		assert.Empty(t, c.AlternantClass)
	}
}
