package calendar

import (
	"fmt"
	"time"

	"maintenance-dashboard-backend/internal/model"
)

// Aggregator merges the six calendar event sources of a dataset into
// per-day event lists. It holds no state besides the clock; every call
// recomputes from the dataset it is handed.
type Aggregator struct {
	now func() time.Time
}

// NewAggregator returns an Aggregator using the wall clock.
func NewAggregator() *Aggregator {
	return &Aggregator{now: time.Now}
}

// NewAggregatorAt returns an Aggregator with a fixed clock, for tests
// and deterministic rendering.
func NewAggregatorAt(now func() time.Time) *Aggregator {
	return &Aggregator{now: now}
}

// dayKey truncates a time to its local calendar day.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// EventsForDate returns every event of the dataset relevant to the
// given date, in fixed source order: scheduled maintenance, repairs,
// tickets, holidays, weekend marker, user schedule entries. Events are
// never deduplicated or capped.
func (a *Aggregator) EventsForDate(data model.Dataset, date time.Time, f Filter) []Event {
	events := []Event{}
	key := dayKey(date)

	// 1. Scheduled maintenance.
	if f.wantsType("maintenance") {
		for _, m := range data.ScheduledMaintenances {
			if m.ScheduledDate != key || !f.wantsUser(m.TechnicianID) {
				continue
			}
			priority := m.Priority
			if priority == "" {
				priority = model.PriorityMedium
			}
			events = append(events, Event{
				Type:        "maintenance",
				Title:       fmt.Sprintf("Maintenance: %s", machineName(data, m.MachineID)),
				Description: m.Description,
				Color:       "maintenance",
				Priority:    priority,
			})
		}
	}

	// 2. Repairs.
	if f.wantsType("repair") {
		for _, r := range data.Repairs {
			if r.Date == "" || r.Date != key || !f.wantsUser(r.TechnicianID) {
				continue
			}
			events = append(events, Event{
				Type:        "repair",
				Title:       fmt.Sprintf("Réparation: %s", machineName(data, r.MachineID)),
				Description: r.Description,
				Color:       "repair",
				Priority:    r.Priority,
			})
		}
	}

	// 3. Tickets with expected dates.
	if f.wantsType("ticket") {
		for _, t := range data.Tickets {
			if t.ExpectedDate == nil || dayKey(*t.ExpectedDate) != key || !f.wantsUser(t.AssigneeID) {
				continue
			}
			color := "ticket"
			if t.Priority == model.PriorityUrgent {
				color = "urgent"
			}
			events = append(events, Event{
				Type:        "ticket",
				Title:       fmt.Sprintf("Ticket: %s", t.Title),
				Description: fmt.Sprintf("Échéance: %s", t.TicketNumber),
				Color:       color,
				Priority:    t.Priority,
				Overdue:     t.ExpectedDate.Before(a.now()),
			})
		}
	}

	// 4. Holidays. Immune to the user filter: only an explicit
	// non-matching event-type filter suppresses them.
	if f.wantsType("holiday") {
		for _, h := range data.Holidays {
			if h.Date != key {
				continue
			}
			events = append(events, Event{
				Type:        "holiday",
				Title:       h.Name,
				Description: "Jour férié",
				Color:       "holiday",
				Priority:    "holiday",
			})
		}
	}

	// 5. Weekend marker.
	if f.wantsType("weekend") {
		switch date.Weekday() {
		case time.Saturday:
			events = append(events, weekendEvent("Samedi"))
		case time.Sunday:
			events = append(events, weekendEvent("Dimanche"))
		}
	}

	// 6. Per-user schedule entries.
	if f.AllTypes() || scheduleTypes[f.EventType] {
		for _, entry := range data.UserSchedules {
			if entry.Date != key || !f.wantsUser(entry.UserID) {
				continue
			}
			if !f.AllTypes() && f.EventType != entry.Type {
				continue
			}
			events = append(events, scheduleEvent(data, entry))
		}
	}

	return events
}

func weekendEvent(title string) Event {
	return Event{
		Type:        "weekend",
		Title:       title,
		Description: "Weekend",
		Color:       "weekend",
		Priority:    "weekend",
	}
}

func scheduleEvent(data model.Dataset, entry model.ScheduleEntry) Event {
	label, ok := scheduleTypeLabels[entry.Type]
	if !ok {
		label = "Événement"
	}

	userName := "Utilisateur"
	for _, u := range data.Users {
		if u.ID == entry.UserID {
			userName = u.Name
			break
		}
	}

	title := fmt.Sprintf("%s: %s", label, userName)
	if entry.StartTime != "" && entry.EndTime != "" {
		title += fmt.Sprintf(" (%s-%s)", entry.StartTime, entry.EndTime)
	}

	return Event{
		Type:        entry.Type,
		Title:       title,
		Description: entry.Description,
		Color:       entry.Type,
		Priority:    entry.Type,
		UserColor:   UserColor(entry.UserID),
		UserID:      entry.UserID,
		StartTime:   entry.StartTime,
		EndTime:     entry.EndTime,
	}
}

// machineName resolves a machine soft reference for display. Dangling
// references render as "N/A" rather than failing.
func machineName(data model.Dataset, machineID int64) string {
	for _, m := range data.Machines {
		if m.ID == machineID {
			return m.Name
		}
	}
	return "N/A"
}
