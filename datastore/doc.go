/*
Package datastore defines the persistence contract for the dataset library.

The main interface is DataStore[T], which provides generic CRUD operations
for any entity type T satisfying the dataset.Entity identity contract:

	type DataStore[T dataset.Entity] interface {
	    GetOne(ctx context.Context, id string) (*T, error)
	    Put(ctx context.Context, entity T) error
	    PutAll(ctx context.Context, entities []T) error
	    Delete(ctx context.Context, id string) error
	    List(ctx context.Context) ([]T, error)
	}

Implementations:
  - ddb: DynamoDB implementation keyed through the registry package
  - memory: in-memory implementation for tests and local development

The reactive core itself performs no I/O; it is bridged to a DataStore by
the mirror package.
*/
package datastore
