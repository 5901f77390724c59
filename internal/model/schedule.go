package model

// Schedule entry types accepted by the calendar.
const (
	ScheduleVacation       = "vacation"
	ScheduleSick           = "sick"
	ScheduleTraining       = "training"
	ScheduleMeeting        = "meeting"
	ScheduleMachineArrival = "machine_arrival"
	SchedulePreventive     = "maintenance_preventive"
	ScheduleAudit          = "audit"
	ScheduleEquipmentTest  = "equipment_test"
	ScheduleInspection     = "inspection"
	ScheduleInstallation   = "installation"
	ScheduleRepair         = "repair_scheduled"
	ScheduleOther          = "other"
)

// ScheduleEntry is one per-user calendar entry. Entries are not
// deduplicated: several entries per user and day are all rendered.
type ScheduleEntry struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Date        string `json:"date"` // YYYY-MM-DD
	Type        string `json:"type"`
	Description string `json:"description"`
	IsFullDay   bool   `json:"isFullDay"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Holiday is static reference data. Holidays are jurisdiction-wide, so
// unlike the other collections they are not partitioned per tenant in
// spirit; each dataset simply carries the same seed list.
type Holiday struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"` // YYYY-MM-DD
	Type string `json:"type"`
}
