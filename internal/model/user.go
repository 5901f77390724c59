package model

import "time"

// Employee types. Alternant employees follow a biweekly working
// pattern rendered as an overlay on the calendar grid.
const (
	EmployeeFullTime  = "full-time"
	EmployeeAlternant = "alternant"
)

// User is a dashboard account. Role is informational only: the client
// role check it feeds is cosmetic and must not be treated as a
// security boundary; authorization belongs to the external backend.
type User struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Username     string             `json:"username"`
	Role         string             `json:"role"`
	Department   string             `json:"department"`
	Phone        string             `json:"phone"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	WorkingHours WorkingHours       `json:"workingHours"`
	WorkingDays  []int              `json:"workingDays,omitempty"`
	EmployeeType string             `json:"employeeType,omitempty"`
	WeekendDays  []int              `json:"weekendDays,omitempty"`
	Alternant    *AlternantSchedule `json:"alternantSchedule,omitempty"`
}

// WorkingHours is a daily start/end window.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AlternantSchedule lists the working weekdays of odd and even ISO
// weeks for an alternant employee. Weekdays use 0=Sunday .. 6=Saturday.
type AlternantSchedule struct {
	Week1 []int `json:"week1"`
	Week2 []int `json:"week2"`
}

// Technician is a maintenance operative tracked for workload and
// availability, independent of dashboard accounts.
type Technician struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Specialty    string    `json:"specialty"`
	Level        string    `json:"level"`
	Availability string    `json:"availability"`
	Status       string    `json:"status"`
	Workload     int       `json:"workload"`
	CreatedAt    time.Time `json:"createdAt"`
}
