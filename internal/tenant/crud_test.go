package tenant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maintenance-dashboard-backend/internal/model"
)

func TestInventoryStockStatusDerivation(t *testing.T) {
	s, _ := newTestStore(t)

	cases := []struct {
		name     string
		quantity int
		minStock int
		want     string
	}{
		{"above minimum", 10, 3, model.StockIn},
		{"at minimum", 3, 3, model.StockIn},
		{"below minimum", 2, 3, model.StockLow},
		{"zero", 0, 3, model.StockOut},
		{"negative", -1, 3, model.StockOut},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := s.AddInventoryItem(model.InventoryItem{
				Name:     "Filtre",
				Quantity: tc.quantity,
				MinStock: tc.minStock,
				Status:   "whatever the caller sent",
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, item.Status)
		})
	}
}

func TestUpdateInventoryRecomputesStatus(t *testing.T) {
	s, _ := newTestStore(t)

	item, err := s.AddInventoryItem(model.InventoryItem{Name: "Courroie", Quantity: 10, MinStock: 4})
	require.NoError(t, err)
	require.Equal(t, model.StockIn, item.Status)

	item.Quantity = 0
	require.NoError(t, s.UpdateInventoryItem(item))

	data, err := s.Dataset()
	require.NoError(t, err)
	for _, x := range data.Inventory {
		if x.ID == item.ID {
			assert.Equal(t, model.StockOut, x.Status)
		}
	}
}

func TestFullDayScheduleEntryClearsTimes(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.AddScheduleEntry(model.ScheduleEntry{
		UserID:    1,
		Date:      "2025-11-03",
		Type:      model.ScheduleVacation,
		IsFullDay: true,
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	assert.Empty(t, e.StartTime)
	assert.Empty(t, e.EndTime)

	timed, err := s.AddScheduleEntry(model.ScheduleEntry{
		UserID:    1,
		Date:      "2025-11-04",
		Type:      model.ScheduleMeeting,
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", timed.StartTime)
}

func TestUpdateUserPreservesCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	u, err := s.AddUser(model.User{Name: "Claire Morel", Email: "claire@maintenance.com"})
	require.NoError(t, err)

	updated := u
	updated.Name = "Claire Morel-Petit"
	updated.CreatedAt = u.CreatedAt.AddDate(-1, 0, 0)
	require.NoError(t, s.UpdateUser(updated))

	data, err := s.Dataset()
	require.NoError(t, err)
	for _, x := range data.Users {
		if x.ID == u.ID {
			assert.Equal(t, "Claire Morel-Petit", x.Name)
			assert.Equal(t, u.CreatedAt, x.CreatedAt)
		}
	}
}

func TestDeleteUnknownEntity(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.DeleteMachine(987654), ErrNotFound)
	assert.ErrorIs(t, s.DeleteCategory(987654), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTechnician(987654), ErrNotFound)
	assert.ErrorIs(t, s.DeleteInventoryItem(987654), ErrNotFound)
	assert.ErrorIs(t, s.DeleteScheduleEntry(987654), ErrNotFound)
	assert.ErrorIs(t, s.DeleteTicket(987654), ErrNotFound)
}

func TestUpdateMachinePreservesCreatedAt(t *testing.T) {
	s, _ := newTestStore(t)

	m, err := s.AddMachine(model.Machine{Name: "Robot Soudure", Location: "Atelier D"})
	require.NoError(t, err)

	changed := m
	changed.Location = "Atelier E"
	require.NoError(t, s.UpdateMachine(changed))

	data, err := s.Dataset()
	require.NoError(t, err)
	for _, x := range data.Machines {
		if x.ID == m.ID {
			assert.Equal(t, "Atelier E", x.Location)
			assert.Equal(t, m.CreatedAt, x.CreatedAt)
		}
	}
}
