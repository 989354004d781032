// Package fleet holds the in-memory fleet record store. The store is
// ordered, mutable and exclusively owned by one session; there is no
// locking and no hidden global instance.
package fleet

import (
	"strings"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/core/model"
)

// Store is the ordered collection of fleet records. Records keep their
// insertion order; deletion compacts the sequence without reordering.
type Store struct {
	buses []model.Bus
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

// Len returns the number of records.
func (s *Store) Len() int { return len(s.buses) }

// All returns a copy of the records in store order.
func (s *Store) All() []model.Bus {
	out := make([]model.Bus, len(s.buses))
	copy(out, s.buses)
	return out
}

// At returns the record at position i (0-based).
func (s *Store) At(i int) (model.Bus, bool) {
	if i < 0 || i >= len(s.buses) {
		return model.Bus{}, false
	}
	return s.buses[i], true
}

// CodeExists reports whether code is already taken, comparing
// case-insensitively and ignoring the record at index exclude (-1 checks
// every record).
func (s *Store) CodeExists(code string, exclude int) bool {
	for i := range s.buses {
		if i == exclude {
			continue
		}
		if strings.EqualFold(s.buses[i].Code, code) {
			return true
		}
	}
	return false
}

// NumberExists reports whether a bus number is already taken, ignoring the
// record at index exclude (-1 checks every record).
func (s *Store) NumberExists(n, exclude int) bool {
	for i := range s.buses {
		if i == exclude {
			continue
		}
		if s.buses[i].Number == n {
			return true
		}
	}
	return false
}

// Add appends a new record. The derived fields are initialized to the
// fresh-record state: status OK, full health, no next-due date.
func (s *Store) Add(b model.Bus) error {
	b.NextDue = model.Date{}
	b.KmLeft = 0
	b.Status = model.StatusOK
	b.HealthScore = 100
	return s.Restore(b)
}

// Restore appends a previously persisted record, keeping its derived
// fields as given. Key uniqueness is enforced as in Add.
func (s *Store) Restore(b model.Bus) error {
	b.Code = model.NormalizeCode(b.Code)
	b.DriverName = model.TruncateName(b.DriverName)
	if s.CodeExists(b.Code, -1) {
		return ErrDuplicateCode
	}
	if s.NumberExists(b.Number, -1) {
		return ErrDuplicateNumber
	}
	s.buses = append(s.buses, b)
	return nil
}

// ReplaceAt swaps the record at position i (0-based) for b. Uniqueness
// checks skip position i so a record may keep its own code and number.
func (s *Store) ReplaceAt(i int, b model.Bus) error {
	if i < 0 || i >= len(s.buses) {
		return ErrNotFound
	}
	b.Code = model.NormalizeCode(b.Code)
	b.DriverName = model.TruncateName(b.DriverName)
	if s.CodeExists(b.Code, i) {
		return ErrDuplicateCode
	}
	if s.NumberExists(b.Number, i) {
		return ErrDuplicateNumber
	}
	s.buses[i] = b
	return nil
}

// FindByNumber returns the record with the given bus number. Numbers are
// unique, so the first match is the only match.
func (s *Store) FindByNumber(n int) (model.Bus, bool) {
	i := s.indexOf(n)
	if i < 0 {
		return model.Bus{}, false
	}
	return s.buses[i], true
}

// DeleteByNumber removes the matching record, shifting every later record
// one position earlier.
func (s *Store) DeleteByNumber(n int) error {
	i := s.indexOf(n)
	if i < 0 {
		return ErrNotFound
	}
	s.buses = append(s.buses[:i], s.buses[i+1:]...)
	return nil
}

// UpdateMileage sets the current odometer reading. Lower readings are
// accepted so an operator can correct a mistyped entry.
func (s *Store) UpdateMileage(n int, km float64) error {
	i := s.indexOf(n)
	if i < 0 {
		return ErrNotFound
	}
	s.buses[i].CurrentKm = km
	return nil
}

// Refresh recomputes the derived fields of every record against the
// reference date. Views and exports call this first so status is never
// stale.
func (s *Store) Refresh(today model.Date) {
	for i := range s.buses {
		s.buses[i].UpdateStatus(today)
	}
}

// DueOrOverdue returns the records needing attention, in store order.
func (s *Store) DueOrOverdue() []model.Bus {
	var out []model.Bus
	for i := range s.buses {
		if s.buses[i].Status == model.StatusDueSoon || s.buses[i].Status == model.StatusOverdue {
			out = append(out, s.buses[i])
		}
	}
	return out
}

func (s *Store) indexOf(n int) int {
	for i := range s.buses {
		if s.buses[i].Number == n {
			return i
		}
	}
	return -1
}
