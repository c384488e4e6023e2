// Package inventory holds the in-memory boat collection, kept sorted by
// name (case-insensitive).
//
// A Store is not safe for concurrent use; Marina has exactly one actor.
package inventory

import (
	"iter"
	"slices"

	"github.com/aalvaropc/marina/internal/domain"
)

// Store is an ordered sequence of boats with an optional capacity.
type Store struct {
	boats    []domain.Boat
	capacity int
}

// New returns an empty store. A capacity <= 0 means the store is unbounded.
func New(capacity int) *Store {
	s := &Store{capacity: capacity}
	if capacity > 0 {
		s.boats = make([]domain.Boat, 0, capacity)
	}
	return s
}

// Len is the number of boats held.
func (s *Store) Len() int { return len(s.boats) }

// Cap is the configured capacity (0 when unbounded).
func (s *Store) Cap() int {
	if s.capacity <= 0 {
		return 0
	}
	return s.capacity
}

// Full reports whether another insert would be rejected.
func (s *Store) Full() bool {
	return s.capacity > 0 && len(s.boats) >= s.capacity
}

// InsertSorted inserts b before the first boat whose name is not less than
// b's name. It returns domain.ErrCapacityExceeded, leaving the store
// unchanged, when the store is full.
func (s *Store) InsertSorted(b domain.Boat) (int, error) {
	if s.Full() {
		return -1, domain.ErrCapacityExceeded
	}

	pos := 0
	for pos < len(s.boats) && CompareNames(s.boats[pos].Name, b.Name) < 0 {
		pos++
	}
	s.boats = slices.Insert(s.boats, pos, b)
	return pos, nil
}

// RemoveAt removes the boat at i and compacts the sequence.
func (s *Store) RemoveAt(i int) (domain.Boat, error) {
	if i < 0 || i >= len(s.boats) {
		return domain.Boat{}, domain.ErrNotFound
	}
	removed := s.boats[i]
	s.boats = slices.Delete(s.boats, i, i+1)
	return removed, nil
}

// IndexOf returns the index of the first boat named name (case-insensitive),
// or -1.
func (s *Store) IndexOf(name string) int {
	for i := range s.boats {
		if CompareNames(s.boats[i].Name, name) == 0 {
			return i
		}
	}
	return -1
}

// FindByName returns a copy of the first boat named name.
func (s *Store) FindByName(name string) (domain.Boat, bool) {
	i := s.IndexOf(name)
	if i < 0 {
		return domain.Boat{}, false
	}
	return s.boats[i], true
}

// At returns a copy of the boat at i.
func (s *Store) At(i int) domain.Boat { return s.boats[i] }

// Update applies fn to the boat at i in place. fn must not rename the boat.
func (s *Store) Update(i int, fn func(b *domain.Boat)) error {
	if i < 0 || i >= len(s.boats) {
		return domain.ErrNotFound
	}
	fn(&s.boats[i])
	return nil
}

// UpdateAll applies fn to every boat in order. fn must not change names.
func (s *Store) UpdateAll(fn func(b *domain.Boat)) {
	for i := range s.boats {
		fn(&s.boats[i])
	}
}

// All yields the boats in sorted order. The sequence must not be held
// across mutations.
func (s *Store) All() iter.Seq2[int, domain.Boat] {
	return func(yield func(int, domain.Boat) bool) {
		for i, b := range s.boats {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Boats returns a snapshot copy of the collection.
func (s *Store) Boats() []domain.Boat {
	return slices.Clone(s.boats)
}

// IsSorted reports whether the collection is in case-insensitive name order.
func (s *Store) IsSorted() bool {
	return slices.IsSortedFunc(s.boats, func(a, b domain.Boat) int {
		return CompareNames(a.Name, b.Name)
	})
}
