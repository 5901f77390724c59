package model

import "time"

// Enterprise is a tenant: the owner of one isolated dataset of
// machines, tickets, schedules and so on.
type Enterprise struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"createdAt"`
	IsDefault  bool      `json:"isDefault,omitempty"`
}

// Dataset groups every enterprise-scoped collection. One dataset is
// persisted per enterprise id and swapped wholesale on tenant switch.
type Dataset struct {
	Machines              []Machine              `json:"machines"`
	Categories            []Category             `json:"categories"`
	SubCategories         []SubCategory          `json:"subCategories"`
	Repairs               []Repair               `json:"repairs"`
	MaintenanceAlerts     []MaintenanceAlert     `json:"maintenanceAlerts"`
	MaintenanceHistory    []MaintenanceRecord    `json:"maintenanceHistory"`
	Technicians           []Technician           `json:"technicians"`
	Inventory             []InventoryItem        `json:"inventory"`
	Tickets               []Ticket               `json:"tickets"`
	Users                 []User                 `json:"users"`
	Holidays              []Holiday              `json:"holidays"`
	UserSchedules         []ScheduleEntry        `json:"userSchedules"`
	ScheduledMaintenances []ScheduledMaintenance `json:"scheduledMaintenances,omitempty"`
}
