package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-dashboard-backend/internal/model"
)

func TestRepairLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	r, err := s.AddRepair(model.Repair{
		MachineID: 1,
		Title:     "Fuite hydraulique",
		Priority:  model.PriorityHigh,
		Status:    model.RepairCompleted, // ignored, repairs always start pending
	})
	require.NoError(t, err)
	assert.Equal(t, model.RepairPending, r.Status)

	// Cannot complete straight from pending.
	err = s.CompleteRepair(r.ID, 100, 2, "")
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, s.StartRepair(r.ID))
	require.NoError(t, s.CompleteRepair(r.ID, 350.50, 4.5, "Joint remplacé"))

	data, err := s.Dataset()
	require.NoError(t, err)
	var got model.Repair
	for _, x := range data.Repairs {
		if x.ID == r.ID {
			got = x
		}
	}
	assert.Equal(t, model.RepairCompleted, got.Status)
	assert.Equal(t, 350.50, got.ActualCost)
	require.NotNil(t, got.CompletedAt)

	// Completed repairs are frozen.
	err = s.StartRepair(r.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	err = s.CancelRepair(r.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteRepairRecordsSessionHistory(t *testing.T) {
	s, kv := newTestStore(t)

	r, err := s.AddRepair(model.Repair{MachineID: 1, Title: "Courroie usée", Technician: "Jean Dupont"})
	require.NoError(t, err)
	require.NoError(t, s.StartRepair(r.ID))
	require.NoError(t, s.CompleteRepair(r.ID, 80, 1, "Courroie neuve"))

	history := s.RepairHistory()
	require.Len(t, history, 1)
	assert.Equal(t, r.ID, history[0].RepairID)
	assert.Equal(t, "Courroie usée", history[0].Title)

	// History is session-scoped: a fresh store over the same storage
	// starts with an empty history.
	restarted := NewStore(kv)
	assert.Empty(t, restarted.RepairHistory())
}

func TestTicketLifecycle(t *testing.T) {
	s, _ := newTestStore(t)

	tk, err := s.AddTicket(model.Ticket{Title: "Écran fissuré", Priority: model.PriorityLow})
	require.NoError(t, err)
	assert.Equal(t, model.TicketOpen, tk.Status)
	assert.Equal(t, "TKT-005", tk.TicketNumber) // four seeded tickets

	// open -> resolved is not allowed.
	err = s.UpdateTicketStatus(tk.ID, model.TicketResolved)
	require.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, s.UpdateTicketStatus(tk.ID, model.TicketInProgress))

	// Side loop: in_progress <-> pending.
	require.NoError(t, s.UpdateTicketStatus(tk.ID, model.TicketPending))
	require.NoError(t, s.UpdateTicketStatus(tk.ID, model.TicketInProgress))

	require.NoError(t, s.UpdateTicketStatus(tk.ID, model.TicketResolved))
	require.NoError(t, s.UpdateTicketStatus(tk.ID, model.TicketClosed))

	data, err := s.Dataset()
	require.NoError(t, err)
	var got model.Ticket
	for _, x := range data.Tickets {
		if x.ID == tk.ID {
			got = x
		}
	}
	assert.Equal(t, model.TicketClosed, got.Status)
	require.NotNil(t, got.ResolvedAt)
	require.NotNil(t, got.ClosedAt)

	err = s.UpdateTicketStatus(tk.ID, model.TicketOpen)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAddTicketComment(t *testing.T) {
	s, _ := newTestStore(t)

	tk, err := s.AddTicket(model.Ticket{Title: "Bruit anormal"})
	require.NoError(t, err)

	require.NoError(t, s.AddTicketComment(tk.ID, "Marie Martin", "Pièce commandée"))

	data, err := s.Dataset()
	require.NoError(t, err)
	for _, x := range data.Tickets {
		if x.ID == tk.ID {
			require.Len(t, x.Comments, 1)
			assert.Equal(t, "Marie Martin", x.Comments[0].Author)
			assert.Equal(t, "Pièce commandée", x.Comments[0].Text)
		}
	}

	err = s.AddTicketComment(999999, "x", "y")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompleteMaintenanceSchedulesNextOccurrence(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.AddMaintenanceAlert(model.MaintenanceAlert{
		MachineID:   1,
		Date:        "2025-10-10",
		Time:        "09:00",
		Description: "Graissage",
		Frequency:   model.FrequencyMonthly,
	})
	require.NoError(t, err)

	before, err := s.Dataset()
	require.NoError(t, err)
	alertCount := len(before.MaintenanceAlerts)
	historyCount := len(before.MaintenanceHistory)

	require.NoError(t, s.CompleteMaintenance(a.ID, "Jean Dupont"))

	after, err := s.Dataset()
	require.NoError(t, err)

	// One follow-up alert one month out.
	require.Len(t, after.MaintenanceAlerts, alertCount+1)
	next := after.MaintenanceAlerts[len(after.MaintenanceAlerts)-1]
	assert.Equal(t, "2025-11-10", next.Date)
	assert.Equal(t, "09:00", next.Time)
	assert.False(t, next.Completed)

	// History record prepended, newest first.
	require.Len(t, after.MaintenanceHistory, historyCount+1)
	assert.Equal(t, "Graissage", after.MaintenanceHistory[0].Description)
	assert.Equal(t, "Presse Hydraulique #1", after.MaintenanceHistory[0].MachineName)
	assert.Equal(t, "Jean Dupont", after.MaintenanceHistory[0].Technician)

	// Completing twice is rejected.
	err = s.CompleteMaintenance(a.ID, "Jean Dupont")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteMaintenanceCustomFrequencyDoesNotRepeat(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.AddMaintenanceAlert(model.MaintenanceAlert{
		MachineID:   2,
		Date:        "2025-10-01",
		Description: "Nettoyage ponctuel",
		Frequency:   model.FrequencyCustom,
	})
	require.NoError(t, err)

	before, err := s.Dataset()
	require.NoError(t, err)
	count := len(before.MaintenanceAlerts)

	require.NoError(t, s.CompleteMaintenance(a.ID, "Pierre Leroy"))

	after, err := s.Dataset()
	require.NoError(t, err)
	assert.Len(t, after.MaintenanceAlerts, count)
}

func TestCompleteMaintenanceDeletedMachine(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.AddMaintenanceAlert(model.MaintenanceAlert{
		MachineID:   777,
		Date:        "2025-10-01",
		Description: "Contrôle",
	})
	require.NoError(t, err)

	require.NoError(t, s.CompleteMaintenance(a.ID, "Jean Dupont"))

	data, err := s.Dataset()
	require.NoError(t, err)
	assert.Equal(t, "Machine supprimée", data.MaintenanceHistory[0].MachineName)
}

func TestRescheduleMaintenance(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.AddMaintenanceAlert(model.MaintenanceAlert{
		MachineID: 1,
		Date:      "2025-10-10",
	})
	require.NoError(t, err)

	err = s.RescheduleMaintenance(a.ID, "pas-une-date")
	require.Error(t, err)

	require.NoError(t, s.RescheduleMaintenance(a.ID, "2025-10-24"))

	data, err := s.Dataset()
	require.NoError(t, err)
	for _, x := range data.MaintenanceAlerts {
		if x.ID == a.ID {
			assert.Equal(t, "2025-10-24", x.Date)
		}
	}
}
