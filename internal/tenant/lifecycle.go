package tenant

import (
	"fmt"
	"time"

	"maintenance-dashboard-backend/internal/model"
)

// --- Repairs ---

// repairNext lists the statuses reachable from each repair status.
// The lifecycle is strictly forward: once completed or cancelled a
// repair never moves again.
var repairNext = map[string][]string{
	model.RepairPending:    {model.RepairInProgress, model.RepairCancelled},
	model.RepairInProgress: {model.RepairCompleted, model.RepairCancelled},
}

func allows(next map[string][]string, from, to string) bool {
	for _, s := range next[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *Store) AddRepair(r model.Repair) (model.Repair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Repair{}, err
	}
	r.ID = s.nextID()
	r.Status = model.RepairPending
	r.CreatedAt = time.Now()
	r.StartedAt = nil
	r.CompletedAt = nil
	s.data.Repairs = append(s.data.Repairs, r)
	if err := s.persistDataset(); err != nil {
		return model.Repair{}, err
	}
	s.notify("repairs")
	return r, nil
}

// UpdateRepair replaces the editable fields of a repair without
// touching its lifecycle state.
func (s *Store) UpdateRepair(r model.Repair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Repairs, func(x model.Repair) bool { return x.ID == r.ID })
	if i < 0 {
		return fmt.Errorf("repair %d: %w", r.ID, ErrNotFound)
	}
	cur := &s.data.Repairs[i]
	cur.MachineID = r.MachineID
	cur.Title = r.Title
	cur.Description = r.Description
	cur.Priority = r.Priority
	cur.Technician = r.Technician
	cur.TechnicianID = r.TechnicianID
	cur.EstimatedCost = r.EstimatedCost
	cur.EstimatedDuration = r.EstimatedDuration
	cur.Date = r.Date
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("repairs")
	return nil
}

// StartRepair moves a pending repair to in_progress.
func (s *Store) StartRepair(id int64) error {
	return s.transitionRepair(id, model.RepairInProgress, func(r *model.Repair) {
		now := time.Now()
		r.StartedAt = &now
	})
}

// CompleteRepair finishes an in-progress repair, records actuals and
// archives a repair history record.
func (s *Store) CompleteRepair(id int64, actualCost, actualDuration float64, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Repairs, func(x model.Repair) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("repair %d: %w", id, ErrNotFound)
	}
	r := &s.data.Repairs[i]
	if !allows(repairNext, r.Status, model.RepairCompleted) {
		return fmt.Errorf("repair %d: %s -> %s: %w", id, r.Status, model.RepairCompleted, ErrInvalidTransition)
	}
	now := time.Now()
	r.Status = model.RepairCompleted
	r.CompletedAt = &now
	r.ActualCost = actualCost
	r.ActualDuration = actualDuration
	r.Notes = notes

	// Repair history is session-scoped: unlike the twelve collections
	// it is not part of the persisted dataset.
	s.repairHistory = append([]model.RepairRecord{{
		ID:             s.nextID(),
		RepairID:       r.ID,
		MachineID:      r.MachineID,
		Title:          r.Title,
		Technician:     r.Technician,
		CompletedAt:    now,
		ActualCost:     actualCost,
		ActualDuration: actualDuration,
		Notes:          notes,
	}}, s.repairHistory...)
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("repairs")
	return nil
}

// CancelRepair abandons a repair that has not completed yet.
func (s *Store) CancelRepair(id int64) error {
	return s.transitionRepair(id, model.RepairCancelled, func(r *model.Repair) {
		now := time.Now()
		r.CompletedAt = &now
	})
}

func (s *Store) transitionRepair(id int64, to string, apply func(*model.Repair)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Repairs, func(x model.Repair) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("repair %d: %w", id, ErrNotFound)
	}
	r := &s.data.Repairs[i]
	if !allows(repairNext, r.Status, to) {
		return fmt.Errorf("repair %d: %s -> %s: %w", id, r.Status, to, ErrInvalidTransition)
	}
	r.Status = to
	apply(r)
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("repairs")
	return nil
}

// --- Tickets ---

// ticketNext lists the statuses reachable from each ticket status:
// open -> in_progress -> resolved -> closed, with in_progress and
// pending looping into each other.
var ticketNext = map[string][]string{
	model.TicketOpen:       {model.TicketInProgress},
	model.TicketInProgress: {model.TicketResolved, model.TicketPending},
	model.TicketPending:    {model.TicketInProgress},
	model.TicketResolved:   {model.TicketClosed},
}

func (s *Store) AddTicket(t model.Ticket) (model.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Ticket{}, err
	}
	now := time.Now()
	t.ID = s.nextID()
	t.TicketNumber = fmt.Sprintf("TKT-%03d", len(s.data.Tickets)+1)
	t.Status = model.TicketOpen
	t.CreatedAt = now
	t.UpdatedAt = now
	t.ResolvedAt = nil
	t.ClosedAt = nil
	if t.Comments == nil {
		t.Comments = []model.Comment{}
	}
	s.data.Tickets = append(s.data.Tickets, t)
	if err := s.persistDataset(); err != nil {
		return model.Ticket{}, err
	}
	s.notify("tickets")
	return t, nil
}

// UpdateTicketStatus moves a ticket along its lifecycle, stamping
// resolvedAt/closedAt as the terminal states are reached.
func (s *Store) UpdateTicketStatus(id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Tickets, func(x model.Ticket) bool { return x.ID == id })
	if i < 0 {
		return fmt.Errorf("ticket %d: %w", id, ErrNotFound)
	}
	t := &s.data.Tickets[i]
	if !allows(ticketNext, t.Status, status) {
		return fmt.Errorf("ticket %d: %s -> %s: %w", id, t.Status, status, ErrInvalidTransition)
	}
	now := time.Now()
	t.Status = status
	t.UpdatedAt = now
	switch status {
	case model.TicketResolved:
		t.ResolvedAt = &now
	case model.TicketClosed:
		t.ClosedAt = &now
	}
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("tickets")
	return nil
}

// AddTicketComment appends a comment and bumps updatedAt.
func (s *Store) AddTicketComment(ticketID int64, author, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Tickets, func(x model.Ticket) bool { return x.ID == ticketID })
	if i < 0 {
		return fmt.Errorf("ticket %d: %w", ticketID, ErrNotFound)
	}
	now := time.Now()
	t := &s.data.Tickets[i]
	t.Comments = append(t.Comments, model.Comment{
		ID:        s.nextID(),
		Author:    author,
		Text:      text,
		CreatedAt: now,
	})
	t.UpdatedAt = now
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("tickets")
	return nil
}

func (s *Store) DeleteTicket(id int64) error {
	return s.deleteByID("tickets", id, func() int {
		i := indexOf(s.data.Tickets, func(x model.Ticket) bool { return x.ID == id })
		if i >= 0 {
			s.data.Tickets = removeAt(s.data.Tickets, i)
		}
		return i
	})
}

// --- Maintenance alerts ---

func (s *Store) AddMaintenanceAlert(a model.MaintenanceAlert) (model.MaintenanceAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.MaintenanceAlert{}, err
	}
	a.ID = s.nextID()
	a.Completed = false
	a.CompletedAt = nil
	a.CreatedAt = time.Now()
	s.data.MaintenanceAlerts = append(s.data.MaintenanceAlerts, a)
	if err := s.persistDataset(); err != nil {
		return model.MaintenanceAlert{}, err
	}
	s.notify("maintenanceAlerts")
	return a, nil
}

// CompleteMaintenance marks an alert done, archives a history record
// and, for periodic frequencies, schedules the next occurrence.
func (s *Store) CompleteMaintenance(alertID int64, technician string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.MaintenanceAlerts, func(x model.MaintenanceAlert) bool { return x.ID == alertID })
	if i < 0 {
		return fmt.Errorf("maintenance alert %d: %w", alertID, ErrNotFound)
	}
	a := &s.data.MaintenanceAlerts[i]
	if a.Completed {
		return fmt.Errorf("maintenance alert %d already completed: %w", alertID, ErrInvalidTransition)
	}

	machineName := "Machine supprimée"
	if j := indexOf(s.data.Machines, func(m model.Machine) bool { return m.ID == a.MachineID }); j >= 0 {
		machineName = s.data.Machines[j].Name
	}

	now := time.Now()
	record := model.MaintenanceRecord{
		ID:          s.nextID(),
		MachineID:   a.MachineID,
		MachineName: machineName,
		Date:        now.Format("2006-01-02"),
		Description: a.Description,
		Technician:  technician,
		CompletedAt: now,
	}
	// Newest first, matching the displayed history order.
	s.data.MaintenanceHistory = append([]model.MaintenanceRecord{record}, s.data.MaintenanceHistory...)

	a.Completed = true
	a.CompletedAt = &now
	a.Technician = technician

	if a.Frequency != "" && a.Frequency != model.FrequencyCustom {
		if next, ok := nextOccurrence(*a); ok {
			next.ID = s.nextID()
			s.data.MaintenanceAlerts = append(s.data.MaintenanceAlerts, next)
		}
	}

	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("maintenanceAlerts")
	return nil
}

// nextOccurrence derives the follow-up alert implied by a periodic
// alert's frequency. Unknown frequencies produce nothing.
func nextOccurrence(a model.MaintenanceAlert) (model.MaintenanceAlert, bool) {
	day, err := time.ParseInLocation("2006-01-02", a.Date, time.Local)
	if err != nil {
		return model.MaintenanceAlert{}, false
	}
	switch a.Frequency {
	case model.FrequencyMonthly:
		day = day.AddDate(0, 1, 0)
	case model.FrequencyQuarterly:
		day = day.AddDate(0, 3, 0)
	case model.FrequencyBiannually:
		day = day.AddDate(0, 6, 0)
	case model.FrequencyAnnually:
		day = day.AddDate(1, 0, 0)
	default:
		return model.MaintenanceAlert{}, false
	}
	return model.MaintenanceAlert{
		MachineID:   a.MachineID,
		Date:        day.Format("2006-01-02"),
		Time:        a.Time,
		Description: a.Description,
		Frequency:   a.Frequency,
		CreatedAt:   time.Now(),
	}, true
}

// RescheduleMaintenance moves a pending alert to a new day.
func (s *Store) RescheduleMaintenance(alertID int64, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.MaintenanceAlerts, func(x model.MaintenanceAlert) bool { return x.ID == alertID })
	if i < 0 {
		return fmt.Errorf("maintenance alert %d: %w", alertID, ErrNotFound)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid maintenance date %q: %w", date, err)
	}
	s.data.MaintenanceAlerts[i].Date = date
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("maintenanceAlerts")
	return nil
}

func (s *Store) DeleteMaintenanceAlert(id int64) error {
	return s.deleteByID("maintenanceAlerts", id, func() int {
		i := indexOf(s.data.MaintenanceAlerts, func(x model.MaintenanceAlert) bool { return x.ID == id })
		if i >= 0 {
			s.data.MaintenanceAlerts = removeAt(s.data.MaintenanceAlerts, i)
		}
		return i
	})
}
