/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package registry

import (
	"reflect"
	"strings"
	"sync"
)

// KeyMap describes how a datastore derives its table keys from an entity
// identity. Values are templates in which the {ID} macro expands to the
// entity's identity, for example:
//
//	KeyMap{
//	    Partition: "LANDMARK",
//	    Sort:      "LANDMARK#{ID}",
//	}
//
// The partition template is shared by all entities of one type so a single
// query can hydrate the whole collection; the sort template must contain
// {ID} so each entity resolves to a distinct key.
type KeyMap struct {
	Partition string
	Sort      string
}

const idMacro = "{ID}"

var (
	keyMapRegistry = make(map[reflect.Type]KeyMap)
	mu             sync.RWMutex
)

// RegisterKeyMap associates a Go type T with its table key map. It is
// typically called from init() in the package that defines the entity.
func RegisterKeyMap[T any](km KeyMap) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.Lock()
	defer mu.Unlock()
	keyMapRegistry[t] = km
}

// GetKeyMap retrieves the key map for type T, if any.
func GetKeyMap[T any]() (KeyMap, bool) {
	var zero T
	t := reflect.TypeOf(zero)

	mu.RLock()
	defer mu.RUnlock()
	km, ok := keyMapRegistry[t]
	return km, ok
}

// PartitionKey expands the partition template for the given identity.
func (km KeyMap) PartitionKey(id string) string {
	return strings.ReplaceAll(km.Partition, idMacro, id)
}

// SortKey expands the sort template for the given identity.
func (km KeyMap) SortKey(id string) string {
	return strings.ReplaceAll(km.Sort, idMacro, id)
}
