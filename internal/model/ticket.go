package model

import "time"

// Ticket statuses. Progression is open -> in_progress -> resolved ->
// closed, with in_progress <-> pending allowed as a side loop.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketPending    = "pending"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// Ticket is a work request raised against a machine or the site in
// general. MachineID and AssigneeID are soft references.
type Ticket struct {
	ID           int64      `json:"id"`
	TicketNumber string     `json:"ticketNumber"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	Category     string     `json:"category"`
	MachineID    int64      `json:"machineId,omitempty"`
	AssigneeID   int64      `json:"assigneeId,omitempty"`
	CreatedBy    int64      `json:"createdBy"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	ClosedAt     *time.Time `json:"closedAt,omitempty"`
	Comments     []Comment  `json:"comments"`
}

// Comment is a note appended to a ticket.
type Comment struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
