/*
Package registry manages key map registration for the dataset persistence layer.

A key map associates a Go entity type with the table key templates the
DynamoDB datastore uses for it. The partition template is shared across the
type so one query hydrates a whole collection; the sort template carries the
{ID} macro so each entity resolves to a distinct key:

	registry.RegisterKeyMap[Landmark](registry.KeyMap{
	    Partition: "LANDMARK",
	    Sort:      "LANDMARK#{ID}",
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions of the packages that define the entities.
*/
package registry
