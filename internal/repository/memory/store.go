// Package memory provides map-backed repositories for local runs and tests.
// It has no foreign keys: references are stored as given.
package memory

import (
	"context"
	"sort"
	"sync"

	"ridehail/internal/domain"
	"ridehail/internal/repository"
)

// Store is an in-memory implementation of repository.Repository.
type Store[T any, PT domain.Entity[T]] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

// NewStore creates an empty store. IDs start at 1.
func NewStore[T any, PT domain.Entity[T]]() *Store[T, PT] {
	return &Store[T, PT]{
		rows:   make(map[int64]T),
		nextID: 1,
	}
}

// FindAll returns a copy of every stored entity ordered by ID.
func (s *Store[T, PT]) FindAll(ctx context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, 0, len(s.rows))
	for id := range s.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*T, 0, len(ids))
	for _, id := range ids {
		// Return a copy to avoid mutation issues.
		row := s.rows[id]
		result = append(result, &row)
	}
	return result, nil
}

// FindByID returns a copy of the entity, or nil if absent.
func (s *Store[T, PT]) FindByID(ctx context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// Save assigns the next ID to new entities and fully replaces existing ones.
func (s *Store[T, PT]) Save(ctx context.Context, entity *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := *entity
	id := PT(&row).GetID()
	if id == 0 {
		id = s.nextID
		s.nextID++
		PT(&row).SetID(id)
	} else if _, ok := s.rows[id]; !ok {
		return nil, repository.ErrNotFound
	}

	s.rows[id] = row
	saved := row
	return &saved, nil
}

// DeleteByID removes the entity. Missing IDs are ignored.
func (s *Store[T, PT]) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, id)
	return nil
}
