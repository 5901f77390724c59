package backend

// Stats is the dashboard counter block served by the external backend.
type Stats struct {
	TotalMachines        int `json:"totalMachines"`
	OpenTickets          int `json:"openTickets"`
	PendingMaintenance   int `json:"pendingMaintenance"`
	ActiveRepairs        int `json:"activeRepairs"`
	CompletedMaintenance int `json:"completedMaintenance"`
	UrgentTickets        int `json:"urgentTickets"`
}

// RemoteEnterprise is an enterprise record as listed by the backend.
type RemoteEnterprise struct {
	ID   string `json:"id"`
	Name string `json:"nom"`
}

// Alert is a verification alert managed server-side. Timestamps are
// epoch milliseconds, mirroring the backend's wire format.
type Alert struct {
	AlerteID         string `json:"alerteId,omitempty"`
	EntrepriseID     string `json:"entrepriseId"`
	MachineID        string `json:"machineId"`
	MachineNom       string `json:"machineNom"`
	Description      string `json:"description"`
	DateVerification int64  `json:"dateVerification"`
	Envoye           bool   `json:"envoye"`
	ActiverRelance   bool   `json:"activerRelance"`
	NombreRelances   int    `json:"nombreRelances"`
	Verifie          bool   `json:"verifie"`
	CreePar          string `json:"creePar,omitempty"`
	CreeParNom       string `json:"creeParNom,omitempty"`
	DateCreation     int64  `json:"dateCreation,omitempty"`
	DateModification int64  `json:"dateModification,omitempty"`
}

// RemoteUser is a backend user account.
type RemoteUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RoleCheck is the backend's answer to a role lookup. The check is
// UX-only: real authorization is enforced server-side on every call.
type RoleCheck struct {
	Role         string `json:"role"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}
