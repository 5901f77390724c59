package tenant

import (
	"time"

	"maintenance-dashboard-backend/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func ptr(t time.Time) *time.Time { return &t }

// SeedEnterprise is the deterministic demo enterprise created when
// storage holds no enterprise list at all.
func SeedEnterprise() model.Enterprise {
	return model.Enterprise{
		ID:         1,
		Name:       "Entreprise Exemple 1",
		Address:    "123 Rue Example",
		City:       "Paris",
		PostalCode: "75000",
		Phone:      "+33 1 23 45 67 89",
		Email:      "contact@exemple1.fr",
		CreatedAt:  day(2023, time.January, 1),
		IsDefault:  true,
	}
}

// SeedDataset builds the demo dataset an enterprise starts with on
// first entry. Every call returns fresh slices so datasets never share
// backing arrays across tenants.
func SeedDataset() model.Dataset {
	return model.Dataset{
		Categories: []model.Category{
			{ID: 1, Name: "Machines Industrielles", Description: "Machines de production industrielle"},
			{ID: 2, Name: "Équipements IT", Description: "Serveurs, ordinateurs, réseau"},
			{ID: 3, Name: "Machines de Production", Description: "Machines de fabrication"},
		},
		SubCategories: []model.SubCategory{
			{ID: 1, Name: "Presse Hydraulique", ParentID: 1, Description: "Presses pour formage"},
			{ID: 2, Name: "Serveurs", ParentID: 2, Description: "Serveurs de données"},
			{ID: 3, Name: "Ordinateurs", ParentID: 2, Description: "PC de bureau et portables"},
			{ID: 4, Name: "Convoyeur", ParentID: 3, Description: "Systèmes de convoyage"},
		},
		Machines: []model.Machine{
			{
				ID: 1, Name: "Presse Hydraulique #1", Location: "Atelier A",
				SerialNumber: "PH-001-2023", CategoryID: 1, SubCategoryID: 1,
				CustomFields: map[string]string{"poids": "2500 kg", "puissance": "15 kW"},
				CreatedAt:    day(2023, time.January, 15),
			},
			{
				ID: 2, Name: "Serveur Principal", Location: "Salle Serveur",
				SerialNumber: "SRV-001-2023", CategoryID: 2, SubCategoryID: 2,
				CustomFields: map[string]string{"ram": "64 GB", "stockage": "2 TB SSD"},
				CreatedAt:    day(2023, time.February, 20),
			},
		},
		Repairs: []model.Repair{
			{
				ID: 1, MachineID: 1, Title: "Panne moteur",
				Description: "Le moteur de la presse hydraulique ne démarre plus. Bruit anormal au démarrage.",
				Priority:    model.PriorityHigh, Status: model.RepairInProgress,
				Technician: "Jean Dupont", EstimatedCost: 850, EstimatedDuration: 4,
				CreatedAt: day(2023, time.December, 1), StartedAt: ptr(day(2023, time.December, 2)),
			},
			{
				ID: 2, MachineID: 2, Title: "Ventilateur défaillant",
				Description: "Le ventilateur du serveur fait un bruit anormal et la température monte.",
				Priority:    model.PriorityMedium, Status: model.RepairCompleted,
				Technician: "Marie Martin", EstimatedCost: 120, ActualCost: 95,
				EstimatedDuration: 2, ActualDuration: 1.5,
				CreatedAt: day(2023, time.November, 28), StartedAt: ptr(day(2023, time.November, 28)),
				CompletedAt: ptr(day(2023, time.November, 28)),
				Notes:       "Ventilateur remplacé avec succès. Température normale.",
			},
		},
		MaintenanceAlerts: []model.MaintenanceAlert{
			{
				ID: 1, MachineID: 1, Date: "2023-12-15", Time: "09:00",
				Description: "Maintenance préventive mensuelle - Vérification des niveaux hydrauliques et lubrifiants",
				Frequency:   model.FrequencyMonthly, CreatedAt: day(2023, time.November, 15),
			},
			{
				ID: 2, MachineID: 2, Date: "2023-12-20", Time: "14:00",
				Description: "Maintenance trimestrielle - Nettoyage des ventilateurs et vérification des connexions",
				Frequency:   model.FrequencyQuarterly, CreatedAt: day(2023, time.September, 20),
			},
			{
				ID: 3, MachineID: 1, Date: "2023-12-05", Time: "10:00",
				Description: "Maintenance urgente - Réparation du système de refroidissement",
				Frequency:   model.FrequencyCustom, CreatedAt: day(2023, time.December, 1),
			},
		},
		MaintenanceHistory: []model.MaintenanceRecord{
			{
				ID: 1, MachineID: 1, Date: "2023-11-15",
				Description: "Maintenance préventive mensuelle - Vérification des niveaux hydrauliques",
				Technician:  "Jean Dupont", Duration: 2.5,
				Notes:       "Maintenance effectuée avec succès. Niveaux corrects.",
				CompletedAt: day(2023, time.November, 15),
			},
			{
				ID: 2, MachineID: 2, Date: "2023-11-10",
				Description: "Maintenance trimestrielle - Nettoyage des ventilateurs",
				Technician:  "Marie Martin", Duration: 1.5,
				Notes:       "Ventilateurs nettoyés. Température optimale.",
				CompletedAt: day(2023, time.November, 10),
			},
		},
		Technicians: []model.Technician{
			{
				ID: 1, Name: "Jean Dupont", Email: "jean.dupont@maintenance.com",
				Phone: "01 23 45 67 89", Specialty: "mechanical", Level: "senior",
				Availability: "full_time", Status: "available", Workload: 75,
				CreatedAt: day(2023, time.January, 15),
			},
			{
				ID: 2, Name: "Marie Martin", Email: "marie.martin@maintenance.com",
				Phone: "01 23 45 67 90", Specialty: "electrical", Level: "expert",
				Availability: "full_time", Status: "available", Workload: 60,
				CreatedAt: day(2023, time.February, 1),
			},
			{
				ID: 3, Name: "Pierre Leroy", Email: "pierre.leroy@maintenance.com",
				Phone: "01 23 45 67 91", Specialty: "hydraulic", Level: "junior",
				Availability: "part_time", Status: "busy", Workload: 90,
				CreatedAt: day(2023, time.March, 1),
			},
		},
		Inventory: []model.InventoryItem{
			{
				ID: 1, Name: "Moteur Électrique 5kW", PartNumber: "MOT-5KW-001",
				Category: "electrical", Quantity: 12, MinStock: 5, Price: 850,
				Supplier: "ElectroParts", Location: "Rack A, Étagère 2", Status: model.StockIn,
			},
			{
				ID: 2, Name: "Pompe Hydraulique", PartNumber: "POM-HYD-002",
				Category: "hydraulic", Quantity: 3, MinStock: 5, Price: 1200,
				Supplier: "HydraTech", Location: "Rack B, Étagère 1", Status: model.StockLow,
			},
			{
				ID: 3, Name: "Capteur de Pression", PartNumber: "CAP-PRESS-003",
				Category: "electrical", Quantity: 0, MinStock: 10, Price: 150,
				Supplier: "SensorPro", Location: "Rack C, Étagère 3", Status: model.StockOut,
			},
			{
				ID: 4, Name: "Joint d'Étanchéité", PartNumber: "JOINT-004",
				Category: "mechanical", Quantity: 50, MinStock: 20, Price: 25,
				Supplier: "SealMaster", Location: "Rack D, Étagère 1", Status: model.StockIn,
			},
		},
		Tickets: []model.Ticket{
			{
				ID: 1, TicketNumber: "TKT-001", Title: "Panne moteur presse hydraulique",
				Description: "Le moteur de la presse hydraulique ne démarre plus. Bruit anormal au démarrage.",
				Priority:    model.PriorityHigh, Status: model.TicketInProgress, Category: "repair",
				MachineID: 1, AssigneeID: 1, CreatedBy: 1,
				CreatedAt: day(2023, time.December, 1), UpdatedAt: day(2023, time.December, 2),
				ExpectedDate: ptr(day(2023, time.December, 5)), Comments: []model.Comment{},
			},
			{
				ID: 2, TicketNumber: "TKT-002", Title: "Maintenance préventive serveur",
				Description: "Maintenance préventive programmée pour le serveur principal.",
				Priority:    model.PriorityMedium, Status: model.TicketOpen, Category: "maintenance",
				MachineID: 2, AssigneeID: 2, CreatedBy: 1,
				CreatedAt: day(2023, time.December, 2), UpdatedAt: day(2023, time.December, 2),
				ExpectedDate: ptr(day(2023, time.December, 10)), Comments: []model.Comment{},
			},
			{
				ID: 3, TicketNumber: "TKT-003", Title: "Réparation urgente machine #003",
				Description: "Panne critique nécessitant intervention immédiate",
				Priority:    model.PriorityUrgent, Status: model.TicketOpen, Category: "repair",
				MachineID: 3, AssigneeID: 4, CreatedBy: 4,
				CreatedAt: day(2024, time.March, 5), UpdatedAt: day(2024, time.March, 5),
				ExpectedDate: ptr(day(2024, time.March, 7)), Comments: []model.Comment{},
			},
			{
				ID: 4, TicketNumber: "TKT-004", Title: "Audit sécurité équipements",
				Description: "Audit trimestriel de sécurité des équipements",
				Priority:    model.PriorityHigh, Status: model.TicketOpen, Category: "audit",
				AssigneeID: 3, CreatedBy: 3,
				CreatedAt: day(2024, time.April, 1), UpdatedAt: day(2024, time.April, 1),
				ExpectedDate: ptr(day(2024, time.April, 15)), Comments: []model.Comment{},
			},
		},
		Users: []model.User{
			{
				ID: 1, Name: "Patrice Martin", Email: "patrice@maintenance.com", Username: "patrice",
				Role: "technician", Department: "Maintenance", Phone: "01 23 45 67 88",
				Status: "active", CreatedAt: day(2023, time.January, 1),
				WorkingHours: model.WorkingHours{Start: "08:00", End: "17:00"},
				WorkingDays:  []int{1, 2, 3, 4, 5}, EmployeeType: model.EmployeeFullTime,
				WeekendDays: []int{0, 6},
			},
			{
				ID: 2, Name: "David Dubois", Email: "david@maintenance.com", Username: "david",
				Role: "technician", Department: "Maintenance", Phone: "01 23 45 67 89",
				Status: "active", CreatedAt: day(2023, time.January, 15),
				WorkingHours: model.WorkingHours{Start: "09:00", End: "18:00"},
				WorkingDays:  []int{1, 2, 3, 4, 5}, EmployeeType: model.EmployeeAlternant,
				WeekendDays: []int{0, 6},
				Alternant:   &model.AlternantSchedule{Week1: []int{1, 2, 3}, Week2: []int{4, 5}},
			},
			{
				ID: 3, Name: "Sophie Leroy", Email: "sophie@maintenance.com", Username: "sophie",
				Role: "manager", Department: "Maintenance", Phone: "01 23 45 67 90",
				Status: "active", CreatedAt: day(2023, time.February, 1),
				WorkingHours: model.WorkingHours{Start: "08:30", End: "17:30"},
				WorkingDays:  []int{1, 2, 3, 4, 5}, EmployeeType: model.EmployeeFullTime,
				WeekendDays: []int{0, 6},
			},
			{
				ID: 4, Name: "Thomas Bernard", Email: "thomas@maintenance.com", Username: "thomas",
				Role: "technician", Department: "Maintenance", Phone: "01 23 45 67 91",
				Status: "active", CreatedAt: day(2023, time.February, 15),
				WorkingHours: model.WorkingHours{Start: "07:00", End: "16:00"},
				WorkingDays:  []int{1, 2, 3, 4, 5, 6}, EmployeeType: model.EmployeeFullTime,
				WeekendDays: []int{0},
			},
		},
		// Jours fériés 2025. Static reference data shared by every
		// tenant's seed.
		Holidays: []model.Holiday{
			{ID: 1, Name: "Jour de l'An", Date: "2025-01-01", Type: "holiday"},
			{ID: 2, Name: "Lundi de Pâques", Date: "2025-04-21", Type: "holiday"},
			{ID: 3, Name: "Fête du Travail", Date: "2025-05-01", Type: "holiday"},
			{ID: 4, Name: "Victoire 1945", Date: "2025-05-08", Type: "holiday"},
			{ID: 5, Name: "Ascension", Date: "2025-05-29", Type: "holiday"},
			{ID: 6, Name: "Lundi de Pentecôte", Date: "2025-06-09", Type: "holiday"},
			{ID: 7, Name: "Fête Nationale", Date: "2025-07-14", Type: "holiday"},
			{ID: 8, Name: "Assomption", Date: "2025-08-15", Type: "holiday"},
			{ID: 9, Name: "Toussaint", Date: "2025-11-01", Type: "holiday"},
			{ID: 10, Name: "Armistice", Date: "2025-11-11", Type: "holiday"},
			{ID: 11, Name: "Noël", Date: "2025-12-25", Type: "holiday"},
		},
		UserSchedules: []model.ScheduleEntry{
			{ID: 1, UserID: 1, Date: "2025-10-02", Type: model.ScheduleTraining, Description: "Formation sécurité", IsFullDay: true},
			{ID: 2, UserID: 1, Date: "2025-10-08", Type: model.SchedulePreventive, Description: "Maintenance machine #001", StartTime: "08:00", EndTime: "12:00"},
			{ID: 3, UserID: 1, Date: "2025-10-15", Type: model.ScheduleVacation, Description: "Congés Toussaint", IsFullDay: true},
			{ID: 4, UserID: 1, Date: "2025-10-16", Type: model.ScheduleVacation, Description: "Congés Toussaint", IsFullDay: true},
			{ID: 5, UserID: 2, Date: "2025-10-03", Type: model.ScheduleEquipmentTest, Description: "Test nouveau équipement", StartTime: "14:00", EndTime: "18:00"},
			{ID: 6, UserID: 2, Date: "2025-10-10", Type: model.ScheduleTraining, Description: "Formation technique", IsFullDay: true},
			{ID: 7, UserID: 2, Date: "2025-10-17", Type: model.ScheduleSick, Description: "Arrêt maladie", IsFullDay: true},
			{ID: 8, UserID: 3, Date: "2025-10-01", Type: model.ScheduleAudit, Description: "Audit Q4", StartTime: "08:30", EndTime: "17:30"},
			{ID: 9, UserID: 3, Date: "2025-10-09", Type: model.ScheduleMeeting, Description: "Réunion direction", StartTime: "14:00", EndTime: "18:00"},
			{ID: 10, UserID: 4, Date: "2025-10-04", Type: model.ScheduleRepair, Description: "Réparation urgente", StartTime: "07:00", EndTime: "14:00"},
			{ID: 11, UserID: 4, Date: "2025-10-11", Type: model.SchedulePreventive, Description: "Maintenance mensuelle", StartTime: "07:00", EndTime: "12:00"},
			{ID: 12, UserID: 1, Date: "2025-12-23", Type: model.ScheduleVacation, Description: "Congés Noël", IsFullDay: true},
			{ID: 13, UserID: 1, Date: "2025-12-24", Type: model.ScheduleVacation, Description: "Congés Noël", IsFullDay: true},
			{ID: 14, UserID: 3, Date: "2025-12-26", Type: model.ScheduleVacation, Description: "Congés post-Noël", IsFullDay: true},
			{ID: 15, UserID: 3, Date: "2025-12-27", Type: model.ScheduleVacation, Description: "Congés post-Noël", IsFullDay: true},
			{ID: 16, UserID: 2, Date: "2025-12-31", Type: model.ScheduleVacation, Description: "Congés réveillon", IsFullDay: true},
		},
	}
}
