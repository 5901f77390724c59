package model

import "time"

// Repair priority levels.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Repair statuses. The lifecycle is strictly linear:
// pending -> in_progress -> completed or cancelled.
const (
	RepairPending    = "pending"
	RepairInProgress = "in_progress"
	RepairCompleted  = "completed"
	RepairCancelled  = "cancelled"
)

// Repair is a corrective intervention on a machine.
type Repair struct {
	ID                int64      `json:"id"`
	MachineID         int64      `json:"machineId"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	Technician        string     `json:"technician"`
	TechnicianID      int64      `json:"technicianId,omitempty"`
	EstimatedCost     float64    `json:"estimatedCost"`
	ActualCost        float64    `json:"actualCost"`
	EstimatedDuration float64    `json:"estimatedDuration"`
	ActualDuration    float64    `json:"actualDuration"`
	Date              string     `json:"date,omitempty"` // planned day, YYYY-MM-DD
	CreatedAt         time.Time  `json:"createdAt"`
	StartedAt         *time.Time `json:"startedAt,omitempty"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	Notes             string     `json:"notes"`
}

// RepairRecord is the archived trace of a completed repair.
type RepairRecord struct {
	ID             int64     `json:"id"`
	RepairID       int64     `json:"repairId"`
	MachineID      int64     `json:"machineId"`
	Title          string    `json:"title"`
	Technician     string    `json:"technician"`
	CompletedAt    time.Time `json:"completedAt"`
	ActualCost     float64   `json:"actualCost"`
	ActualDuration float64   `json:"actualDuration"`
	Notes          string    `json:"notes"`
}
