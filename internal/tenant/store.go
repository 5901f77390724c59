package tenant

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"maintenance-dashboard-backend/internal/kvstore"
	"maintenance-dashboard-backend/internal/model"
)

// Storage keys. Datasets are stored one blob per enterprise id; there
// is no atomicity across keys, so every write is ordered so that a
// crash between writes leaves storage loadable.
const (
	keyEnterprises = "enterprises"
	keyCurrent     = "current_enterprise"
)

func datasetKey(enterpriseID int64) string {
	return fmt.Sprintf("enterprise_data_%d", enterpriseID)
}

// Store owns the enterprise list, the current-enterprise pointer and
// the enterprise-scoped collections. Exactly one enterprise is current
// at any time, and the in-memory collections always mirror the
// persisted dataset of that enterprise after every exported operation.
type Store struct {
	mu sync.Mutex
	kv kvstore.Store

	enterprises []model.Enterprise
	current     *model.Enterprise
	data        model.Dataset

	// repairHistory is session-scoped and intentionally outside the
	// persisted dataset.
	repairHistory []model.RepairRecord

	lastID int64
	subs   []func(collection string)
	loaded bool
}

// RepairHistory returns the repairs completed during this session,
// newest first.
func (s *Store) RepairHistory() []model.RepairRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.RepairRecord, len(s.repairHistory))
	copy(out, s.repairHistory)
	return out
}

// NewStore creates a Store over the given key-value storage. Nothing
// is read until the first operation.
func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Subscribe registers a callback invoked after a collection mutates.
// The callback receives the collection name, or "dataset" when the
// whole dataset was swapped by an enterprise switch.
func (s *Store) Subscribe(fn func(collection string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify(collection string) {
	for _, fn := range s.subs {
		fn(collection)
	}
}

// nextID returns a new entity id. Ids are seeded from wall-clock
// milliseconds but strictly increase, so rapid creation in the same
// millisecond cannot collide.
func (s *Store) nextID() int64 {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return now
}

// ListEnterprises returns the known enterprises, seeding storage with
// the demo enterprise when nothing is persisted yet. Absence of data
// is the seed case, never an error.
func (s *Store) ListEnterprises() ([]model.Enterprise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]model.Enterprise, len(s.enterprises))
	copy(out, s.enterprises)
	return out, nil
}

// CurrentEnterprise returns the active enterprise. When no selection
// is persisted, the enterprise flagged default (or the first one) is
// selected and the selection is persisted as a side effect.
func (s *Store) CurrentEnterprise() (model.Enterprise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Enterprise{}, err
	}
	return *s.current, nil
}

// Dataset returns a snapshot of the current enterprise's collections.
// The snapshot is isolated from the store: collection mutations after
// the call never show through it, and it is safe to read from other
// goroutines while the store keeps mutating.
func (s *Store) Dataset() (model.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Dataset{}, err
	}
	return cloneDataset(s.data), nil
}

// cloneDataset deep-copies every collection so the result shares no
// mutable memory with the store.
func cloneDataset(d model.Dataset) model.Dataset {
	out := d
	out.Machines = cloneSlice(d.Machines)
	for i := range out.Machines {
		out.Machines[i].CustomFields = cloneMap(out.Machines[i].CustomFields)
	}
	out.Categories = cloneSlice(d.Categories)
	out.SubCategories = cloneSlice(d.SubCategories)
	out.Repairs = cloneSlice(d.Repairs)
	out.MaintenanceAlerts = cloneSlice(d.MaintenanceAlerts)
	out.MaintenanceHistory = cloneSlice(d.MaintenanceHistory)
	out.Technicians = cloneSlice(d.Technicians)
	out.Inventory = cloneSlice(d.Inventory)
	out.Tickets = cloneSlice(d.Tickets)
	for i := range out.Tickets {
		out.Tickets[i].Comments = cloneSlice(out.Tickets[i].Comments)
	}
	out.Users = cloneSlice(d.Users)
	for i := range out.Users {
		u := &out.Users[i]
		u.WorkingDays = cloneSlice(u.WorkingDays)
		u.WeekendDays = cloneSlice(u.WeekendDays)
		if u.Alternant != nil {
			alt := *u.Alternant
			alt.Week1 = cloneSlice(alt.Week1)
			alt.Week2 = cloneSlice(alt.Week2)
			u.Alternant = &alt
		}
	}
	out.Holidays = cloneSlice(d.Holidays)
	out.UserSchedules = cloneSlice(d.UserSchedules)
	out.ScheduledMaintenances = cloneSlice(d.ScheduledMaintenances)
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneMap(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// AddEnterprise assigns an id, appends the enterprise and persists the
// full list. It does not switch the current enterprise.
func (s *Store) AddEnterprise(e model.Enterprise) (model.Enterprise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return model.Enterprise{}, err
	}
	e.ID = s.nextID()
	e.CreatedAt = time.Now()
	e.IsDefault = false
	s.enterprises = append(s.enterprises, e)
	if err := s.persistEnterprises(); err != nil {
		return model.Enterprise{}, err
	}
	s.notify("enterprises")
	return e, nil
}

// SwitchEnterprise makes the enterprise with the given id current.
// The outgoing dataset is persisted before anything else changes, so
// after a switch the previous enterprise's stored dataset equals what
// was in memory just before the call. An unknown id returns
// ErrNotFound and leaves every piece of state untouched.
func (s *Store) SwitchEnterprise(targetID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	// Persist the outgoing dataset first. This must precede target
	// resolution and pointer updates.
	if err := s.persistDataset(); err != nil {
		return err
	}

	target := s.findEnterprise(targetID)
	if target == nil {
		return fmt.Errorf("enterprise %d: %w", targetID, ErrNotFound)
	}

	s.current = target
	if err := s.persistCurrent(); err != nil {
		return err
	}
	if err := s.loadDataset(); err != nil {
		return err
	}
	s.notify("dataset")
	return nil
}

// SaveCurrentDataset serializes the twelve collections into one blob
// keyed by the current enterprise id. Every mutating operation calls
// it; the endpoint exposing it only forces an extra persist.
func (s *Store) SaveCurrentDataset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	return s.persistDataset()
}

// --- internal, caller holds the lock ---

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	if err := s.loadEnterprises(); err != nil {
		return err
	}
	if err := s.loadCurrent(); err != nil {
		return err
	}
	if err := s.loadDataset(); err != nil {
		return err
	}
	s.loaded = true
	return nil
}

func (s *Store) findEnterprise(id int64) *model.Enterprise {
	for i := range s.enterprises {
		if s.enterprises[i].ID == id {
			return &s.enterprises[i]
		}
	}
	return nil
}

// loadEnterprises reads the enterprise list, seeding it when storage
// is empty or the blob fails to decode.
func (s *Store) loadEnterprises() error {
	raw, ok, err := s.kv.Get(keyEnterprises)
	if err != nil {
		return err
	}
	if ok {
		var list []model.Enterprise
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			log.Printf("enterprise list unreadable, reseeding: %v", fmt.Errorf("%w: %v", ErrStorageCorrupt, err))
		} else if len(list) > 0 {
			s.enterprises = list
			return nil
		}
	}
	s.enterprises = []model.Enterprise{SeedEnterprise()}
	return s.persistEnterprises()
}

// loadCurrent resolves the current-enterprise pointer: the persisted
// selection when it still resolves, else the default enterprise, else
// the first one. The resolution is persisted.
func (s *Store) loadCurrent() error {
	raw, ok, err := s.kv.Get(keyCurrent)
	if err != nil {
		return err
	}
	if ok {
		var e model.Enterprise
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			log.Printf("current enterprise unreadable, falling back to default: %v", fmt.Errorf("%w: %v", ErrStorageCorrupt, err))
		} else if found := s.findEnterprise(e.ID); found != nil {
			s.current = found
			return nil
		}
	}
	s.current = &s.enterprises[0]
	for i := range s.enterprises {
		if s.enterprises[i].IsDefault {
			s.current = &s.enterprises[i]
			break
		}
	}
	return s.persistCurrent()
}

// loadDataset replaces the in-memory collections with the persisted
// dataset of the current enterprise, seeding demo data on first entry
// and persisting immediately so a dataset exists for that id.
func (s *Store) loadDataset() error {
	raw, ok, err := s.kv.Get(datasetKey(s.current.ID))
	if err != nil {
		return err
	}
	if ok {
		var data model.Dataset
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			log.Printf("dataset for enterprise %d unreadable, reseeding: %v", s.current.ID, fmt.Errorf("%w: %v", ErrStorageCorrupt, err))
		} else {
			s.data = data
			return nil
		}
	}
	s.data = SeedDataset()
	return s.persistDataset()
}

func (s *Store) persistEnterprises() error {
	raw, err := json.Marshal(s.enterprises)
	if err != nil {
		return fmt.Errorf("failed to encode enterprise list: %w", err)
	}
	return s.kv.Set(keyEnterprises, string(raw))
}

func (s *Store) persistCurrent() error {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("failed to encode current enterprise: %w", err)
	}
	return s.kv.Set(keyCurrent, string(raw))
}

func (s *Store) persistDataset() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode dataset for enterprise %d: %w", s.current.ID, err)
	}
	return s.kv.Set(datasetKey(s.current.ID), string(raw))
}
