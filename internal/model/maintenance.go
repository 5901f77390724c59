package model

import "time"

// Maintenance alert frequencies.
const (
	FrequencyMonthly    = "monthly"
	FrequencyQuarterly  = "quarterly"
	FrequencyBiannually = "biannually"
	FrequencyAnnually   = "annually"
	FrequencyCustom     = "custom"
)

// MaintenanceAlert is a planned preventive maintenance on a machine.
// Completing it archives a MaintenanceRecord and, for periodic
// frequencies, schedules the next occurrence.
type MaintenanceAlert struct {
	ID          int64      `json:"id"`
	MachineID   int64      `json:"machineId"`
	Date        string     `json:"date"` // YYYY-MM-DD
	Time        string     `json:"time"`
	Description string     `json:"description"`
	Frequency   string     `json:"frequency"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Technician  string     `json:"technician,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// MaintenanceRecord is a maintenance history entry.
type MaintenanceRecord struct {
	ID          int64     `json:"id"`
	MachineID   int64     `json:"machineId"`
	MachineName string    `json:"machineName,omitempty"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Technician  string    `json:"technician"`
	Duration    float64   `json:"duration,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

// ScheduledMaintenance is a calendar-visible maintenance appointment
// with an assigned technician.
type ScheduledMaintenance struct {
	ID            int64     `json:"id"`
	MachineID     int64     `json:"machineId"`
	TechnicianID  int64     `json:"technicianId,omitempty"`
	ScheduledDate string    `json:"scheduledDate"` // YYYY-MM-DD
	Time          string    `json:"time,omitempty"`
	Type          string    `json:"type,omitempty"`
	Description   string    `json:"description"`
	Duration      float64   `json:"duration,omitempty"`
	Priority      string    `json:"priority,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
