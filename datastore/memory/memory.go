/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

// Package memory provides an in-memory DataStore implementation for tests
// and local development.
package memory

import (
	"context"
	"sync"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/errors"
)

// Store is an in-memory implementation of datastore.DataStore[T]. It keeps
// insertion order for List so tests observe deterministic output, and it
// supports fault injection for exercising error paths.
type Store[T dataset.Entity] struct {
	mu    sync.RWMutex
	data  map[string]T
	order []string

	putErr    error
	deleteErr error
	listErr   error
}

// New creates a new in-memory Store.
func New[T dataset.Entity]() *Store[T] {
	return &Store[T]{
		data: make(map[string]T),
	}
}

// WithPutError makes Put and PutAll operations return err.
func (s *Store[T]) WithPutError(err error) *Store[T] {
	s.putErr = err
	return s
}

// WithDeleteError makes Delete operations return err.
func (s *Store[T]) WithDeleteError(err error) *Store[T] {
	s.deleteErr = err
	return s
}

// WithListError makes List operations return err.
func (s *Store[T]) WithListError(err error) *Store[T] {
	s.listErr = err
	return s
}

// GetOne retrieves an entity by id.
func (s *Store[T]) GetOne(ctx context.Context, id string) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entity, exists := s.data[id]; exists {
		return &entity, nil
	}
	return nil, errors.NewNotFoundError("entity", id)
}

// Put inserts or replaces an entity under its identity.
func (s *Store[T]) Put(ctx context.Context, entity T) error {
	if s.putErr != nil {
		return s.putErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(entity)
	return nil
}

// PutAll inserts or replaces every entity in the batch.
func (s *Store[T]) PutAll(ctx context.Context, entities []T) error {
	if s.putErr != nil {
		return s.putErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entity := range entities {
		s.put(entity)
	}
	return nil
}

// Delete removes an entity by id. Deleting an unknown id is not an error.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[id]; !exists {
		return nil
	}
	delete(s.data, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns every stored entity in insertion order.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.data[id])
	}
	return out, nil
}

// Size returns the number of stored entities.
func (s *Store[T]) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

func (s *Store[T]) put(entity T) {
	id := entity.ID()
	if _, exists := s.data[id]; !exists {
		s.order = append(s.order, id)
	}
	s.data[id] = entity
}
