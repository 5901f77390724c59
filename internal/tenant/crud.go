package tenant

import (
	"fmt"
	"time"

	"maintenance-dashboard-backend/internal/model"
)

// indexOf returns the position of the first item matching the
// predicate, or -1.
func indexOf[T any](items []T, match func(T) bool) int {
	for i := range items {
		if match(items[i]) {
			return i
		}
	}
	return -1
}

// removeAt deletes the element at index i, preserving order.
func removeAt[T any](items []T, i int) []T {
	return append(items[:i], items[i+1:]...)
}

// --- Machines ---

func (s *Store) AddMachine(m model.Machine) (model.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Machine{}, err
	}
	m.ID = s.nextID()
	m.CreatedAt = time.Now()
	s.data.Machines = append(s.data.Machines, m)
	if err := s.persistDataset(); err != nil {
		return model.Machine{}, err
	}
	s.notify("machines")
	return m, nil
}

func (s *Store) UpdateMachine(m model.Machine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Machines, func(x model.Machine) bool { return x.ID == m.ID })
	if i < 0 {
		return fmt.Errorf("machine %d: %w", m.ID, ErrNotFound)
	}
	m.CreatedAt = s.data.Machines[i].CreatedAt
	s.data.Machines[i] = m
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("machines")
	return nil
}

func (s *Store) DeleteMachine(id int64) error {
	return s.deleteByID("machines", id, func() int {
		i := indexOf(s.data.Machines, func(x model.Machine) bool { return x.ID == id })
		if i >= 0 {
			s.data.Machines = removeAt(s.data.Machines, i)
		}
		return i
	})
}

// --- Categories ---

func (s *Store) AddCategory(c model.Category) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Category{}, err
	}
	c.ID = s.nextID()
	s.data.Categories = append(s.data.Categories, c)
	if err := s.persistDataset(); err != nil {
		return model.Category{}, err
	}
	s.notify("categories")
	return c, nil
}

func (s *Store) UpdateCategory(c model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Categories, func(x model.Category) bool { return x.ID == c.ID })
	if i < 0 {
		return fmt.Errorf("category %d: %w", c.ID, ErrNotFound)
	}
	s.data.Categories[i] = c
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("categories")
	return nil
}

// DeleteCategory removes a category. Machines referencing it keep
// their dangling CategoryID; lookups resolve it to nothing.
func (s *Store) DeleteCategory(id int64) error {
	return s.deleteByID("categories", id, func() int {
		i := indexOf(s.data.Categories, func(x model.Category) bool { return x.ID == id })
		if i >= 0 {
			s.data.Categories = removeAt(s.data.Categories, i)
		}
		return i
	})
}

func (s *Store) AddSubCategory(c model.SubCategory) (model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.SubCategory{}, err
	}
	c.ID = s.nextID()
	s.data.SubCategories = append(s.data.SubCategories, c)
	if err := s.persistDataset(); err != nil {
		return model.SubCategory{}, err
	}
	s.notify("subCategories")
	return c, nil
}

func (s *Store) UpdateSubCategory(c model.SubCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.SubCategories, func(x model.SubCategory) bool { return x.ID == c.ID })
	if i < 0 {
		return fmt.Errorf("sub-category %d: %w", c.ID, ErrNotFound)
	}
	s.data.SubCategories[i] = c
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("subCategories")
	return nil
}

func (s *Store) DeleteSubCategory(id int64) error {
	return s.deleteByID("subCategories", id, func() int {
		i := indexOf(s.data.SubCategories, func(x model.SubCategory) bool { return x.ID == id })
		if i >= 0 {
			s.data.SubCategories = removeAt(s.data.SubCategories, i)
		}
		return i
	})
}

// --- Technicians ---

func (s *Store) AddTechnician(t model.Technician) (model.Technician, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Technician{}, err
	}
	t.ID = s.nextID()
	t.CreatedAt = time.Now()
	s.data.Technicians = append(s.data.Technicians, t)
	if err := s.persistDataset(); err != nil {
		return model.Technician{}, err
	}
	s.notify("technicians")
	return t, nil
}

func (s *Store) UpdateTechnician(t model.Technician) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Technicians, func(x model.Technician) bool { return x.ID == t.ID })
	if i < 0 {
		return fmt.Errorf("technician %d: %w", t.ID, ErrNotFound)
	}
	t.CreatedAt = s.data.Technicians[i].CreatedAt
	s.data.Technicians[i] = t
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("technicians")
	return nil
}

func (s *Store) DeleteTechnician(id int64) error {
	return s.deleteByID("technicians", id, func() int {
		i := indexOf(s.data.Technicians, func(x model.Technician) bool { return x.ID == id })
		if i >= 0 {
			s.data.Technicians = removeAt(s.data.Technicians, i)
		}
		return i
	})
}

// --- Inventory ---

// stockStatus derives the displayed stock status from quantities.
func stockStatus(item model.InventoryItem) string {
	switch {
	case item.Quantity <= 0:
		return model.StockOut
	case item.Quantity < item.MinStock:
		return model.StockLow
	default:
		return model.StockIn
	}
}

func (s *Store) AddInventoryItem(item model.InventoryItem) (model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.InventoryItem{}, err
	}
	item.ID = s.nextID()
	item.Status = stockStatus(item)
	s.data.Inventory = append(s.data.Inventory, item)
	if err := s.persistDataset(); err != nil {
		return model.InventoryItem{}, err
	}
	s.notify("inventory")
	return item, nil
}

func (s *Store) UpdateInventoryItem(item model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Inventory, func(x model.InventoryItem) bool { return x.ID == item.ID })
	if i < 0 {
		return fmt.Errorf("inventory item %d: %w", item.ID, ErrNotFound)
	}
	item.Status = stockStatus(item)
	s.data.Inventory[i] = item
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("inventory")
	return nil
}

func (s *Store) DeleteInventoryItem(id int64) error {
	return s.deleteByID("inventory", id, func() int {
		i := indexOf(s.data.Inventory, func(x model.InventoryItem) bool { return x.ID == id })
		if i >= 0 {
			s.data.Inventory = removeAt(s.data.Inventory, i)
		}
		return i
	})
}

// --- Users ---

func (s *Store) AddUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.User{}, err
	}
	u.ID = s.nextID()
	u.CreatedAt = time.Now()
	s.data.Users = append(s.data.Users, u)
	if err := s.persistDataset(); err != nil {
		return model.User{}, err
	}
	s.notify("users")
	return u, nil
}

func (s *Store) UpdateUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	i := indexOf(s.data.Users, func(x model.User) bool { return x.ID == u.ID })
	if i < 0 {
		return fmt.Errorf("user %d: %w", u.ID, ErrNotFound)
	}
	u.CreatedAt = s.data.Users[i].CreatedAt
	s.data.Users[i] = u
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify("users")
	return nil
}

func (s *Store) DeleteUser(id int64) error {
	return s.deleteByID("users", id, func() int {
		i := indexOf(s.data.Users, func(x model.User) bool { return x.ID == id })
		if i >= 0 {
			s.data.Users = removeAt(s.data.Users, i)
		}
		return i
	})
}

// --- User schedules ---

func (s *Store) AddScheduleEntry(e model.ScheduleEntry) (model.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.ScheduleEntry{}, err
	}
	e.ID = s.nextID()
	if e.IsFullDay {
		e.StartTime, e.EndTime = "", ""
	}
	s.data.UserSchedules = append(s.data.UserSchedules, e)
	if err := s.persistDataset(); err != nil {
		return model.ScheduleEntry{}, err
	}
	s.notify("userSchedules")
	return e, nil
}

func (s *Store) DeleteScheduleEntry(id int64) error {
	return s.deleteByID("userSchedules", id, func() int {
		i := indexOf(s.data.UserSchedules, func(x model.ScheduleEntry) bool { return x.ID == id })
		if i >= 0 {
			s.data.UserSchedules = removeAt(s.data.UserSchedules, i)
		}
		return i
	})
}

// --- Scheduled maintenances ---

func (s *Store) AddScheduledMaintenance(m model.ScheduledMaintenance) (model.ScheduledMaintenance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.ScheduledMaintenance{}, err
	}
	m.ID = s.nextID()
	m.CreatedAt = time.Now()
	s.data.ScheduledMaintenances = append(s.data.ScheduledMaintenances, m)
	if err := s.persistDataset(); err != nil {
		return model.ScheduledMaintenance{}, err
	}
	s.notify("scheduledMaintenances")
	return m, nil
}

func (s *Store) DeleteScheduledMaintenance(id int64) error {
	return s.deleteByID("scheduledMaintenances", id, func() int {
		i := indexOf(s.data.ScheduledMaintenances, func(x model.ScheduledMaintenance) bool { return x.ID == id })
		if i >= 0 {
			s.data.ScheduledMaintenances = removeAt(s.data.ScheduledMaintenances, i)
		}
		return i
	})
}

// deleteByID runs a removal closure under the lock, persists and
// notifies. The closure returns the removed index, or -1.
func (s *Store) deleteByID(collection string, id int64, remove func() int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if remove() < 0 {
		return fmt.Errorf("%s %d: %w", collection, id, ErrNotFound)
	}
	if err := s.persistDataset(); err != nil {
		return err
	}
	s.notify(collection)
	return nil
}
