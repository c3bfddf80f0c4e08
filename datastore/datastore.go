/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/casetrail/dataset"
)

// DataStore is the persistence contract for identity-bearing entities. It
// is an external collaborator of the reactive core: the mirror package
// pushes dataset changes into a DataStore, and Hydrate pulls a collection
// back out at startup. Implementations must be safe for concurrent use.
type DataStore[T dataset.Entity] interface {
	// GetOne retrieves the entity stored under id. A missing entity is
	// reported with an error matching errors.ErrNotFound.
	GetOne(ctx context.Context, id string) (*T, error)

	// Put inserts or replaces the entity under its identity.
	Put(ctx context.Context, entity T) error

	// PutAll inserts or replaces every entity in the batch.
	PutAll(ctx context.Context, entities []T) error

	// Delete removes the entity stored under id. Deleting an unknown id is
	// not an error.
	Delete(ctx context.Context, id string) error

	// List returns every entity of the collection.
	List(ctx context.Context) ([]T, error)
}
