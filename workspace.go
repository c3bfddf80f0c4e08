/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"fmt"
	"reflect"
	"sync"
)

// SetGroup manages named DataSet instances of a single entity type, one per
// view or session. Unlike the sets it holds, the group itself is
// thread-safe: views come and go from different goroutines.
type SetGroup[T Entity] struct {
	mu   sync.RWMutex
	sets map[string]*DataSet[T]
}

// NewSetGroup creates an empty SetGroup for type T.
func NewSetGroup[T Entity]() *SetGroup[T] {
	return &SetGroup[T]{
		sets: make(map[string]*DataSet[T]),
	}
}

// Register adds a dataset under the given key.
func (g *SetGroup[T]) Register(key string, ds *DataSet[T]) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.sets[key]; exists {
		return fmt.Errorf("dataset with key %q already registered", key)
	}

	g.sets[key] = ds
	return nil
}

// Get retrieves a dataset by key.
func (g *SetGroup[T]) Get(key string) (*DataSet[T], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ds, exists := g.sets[key]
	if !exists {
		return nil, fmt.Errorf("dataset with key %q not found", key)
	}

	return ds, nil
}

// Remove deletes a dataset by key.
func (g *SetGroup[T]) Remove(key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.sets[key]; !exists {
		return fmt.Errorf("dataset with key %q not found", key)
	}

	delete(g.sets, key)
	return nil
}

// List returns all registered dataset keys.
func (g *SetGroup[T]) List() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, 0, len(g.sets))
	for k := range g.sets {
		keys = append(keys, k)
	}
	return keys
}

// Workspace manages SetGroup instances for different entity types.
type Workspace struct {
	mu     sync.Mutex
	groups map[reflect.Type]interface{}
}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		groups: make(map[reflect.Type]interface{}),
	}
}

// GroupFor returns the SetGroup for the specified entity type, creating it
// if necessary.
func GroupFor[T Entity](ws *Workspace) *SetGroup[T] {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	var zero T
	typ := reflect.TypeOf(zero)

	if group, exists := ws.groups[typ]; exists {
		return group.(*SetGroup[T])
	}

	newGroup := NewSetGroup[T]()
	ws.groups[typ] = newGroup
	return newGroup
}

// RegisterSet is a convenience function to register a dataset for type T.
func RegisterSet[T Entity](ws *Workspace, key string, ds *DataSet[T]) error {
	return GroupFor[T](ws).Register(key, ds)
}

// GetSet is a convenience function to get a dataset for type T.
func GetSet[T Entity](ws *Workspace, key string) (*DataSet[T], error) {
	return GroupFor[T](ws).Get(key)
}

// RemoveSet is a convenience function to remove a dataset for type T.
func RemoveSet[T Entity](ws *Workspace, key string) error {
	return GroupFor[T](ws).Remove(key)
}

// ListSets is a convenience function to list all dataset keys for type T.
func ListSets[T Entity](ws *Workspace) []string {
	return GroupFor[T](ws).List()
}
