package calendar

// Event is one displayable calendar entry for a given day.
type Event struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	Priority    string `json:"priority"`
	UserColor   string `json:"userColor,omitempty"`
	UserID      int64  `json:"userId,omitempty"`
	Overdue     bool   `json:"overdue,omitempty"`
	StartTime   string `json:"startTime,omitempty"`
	EndTime     string `json:"endTime,omitempty"`
}

// Filter narrows a day's events. A zero UserID means every user; an
// empty or "all" EventType means every source.
type Filter struct {
	UserID    int64
	EventType string
}

// AllUsers reports whether the filter keeps every user.
func (f Filter) AllUsers() bool { return f.UserID == 0 }

// AllTypes reports whether the filter keeps every event source.
func (f Filter) AllTypes() bool { return f.EventType == "" || f.EventType == "all" }

func (f Filter) wantsType(t string) bool { return f.AllTypes() || f.EventType == t }

func (f Filter) wantsUser(id int64) bool { return f.AllUsers() || f.UserID == id }

// scheduleTypes is the whitelist of per-user schedule entry types the
// event-type filter recognizes.
var scheduleTypes = map[string]bool{
	"vacation":               true,
	"sick":                   true,
	"training":               true,
	"meeting":                true,
	"machine_arrival":        true,
	"maintenance_preventive": true,
	"audit":                  true,
	"equipment_test":         true,
	"inspection":             true,
	"installation":           true,
	"repair_scheduled":       true,
}

// scheduleTypeLabels maps schedule types to their displayed labels.
var scheduleTypeLabels = map[string]string{
	"vacation":               "Congés",
	"sick":                   "Arrêt maladie",
	"training":               "Formation",
	"meeting":                "Réunion",
	"machine_arrival":        "Arrivage Machine",
	"maintenance_preventive": "Maintenance Préventive",
	"audit":                  "Audit",
	"equipment_test":         "Test Équipement",
	"inspection":             "Inspection",
	"installation":           "Installation",
	"repair_scheduled":       "Réparation Programmée",
	"other":                  "Autre",
}

// userColors is the fixed presentation palette of the four seed users.
// Unknown ids fall back to neutral gray. This must be reproduced
// exactly for visual parity with existing clients.
var userColors = map[int64]string{
	1: "#3b82f6", // Patrice - Bleu
	2: "#10b981", // David - Vert
	3: "#8b5cf6", // Sophie - Violet
	4: "#f59e0b", // Thomas - Orange
}

const defaultUserColor = "#6b7280"

// UserColor returns the fixed display color of a user id.
func UserColor(userID int64) string {
	if c, ok := userColors[userID]; ok {
		return c
	}
	return defaultUserColor
}
