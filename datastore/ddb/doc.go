/*
Package ddb provides a DynamoDB implementation of the DataStore interface.

The Store supports:
  - Single-table design patterns
  - Key derivation from the entity identity via registered key maps
  - Batched writes chunked to the BatchWriteItem request cap
  - Paginated collection hydration through Query

Key derivation:
Each entity type registers a key map whose templates expand the {ID} macro
with the entity identity:

	registry.RegisterKeyMap[Landmark](registry.KeyMap{
	    Partition: "LANDMARK",        // Shared by the whole collection
	    Sort:      "LANDMARK#{ID}",   // Becomes "LANDMARK#123"
	})

The shared partition lets List hydrate an entire collection with a single
key-condition query.

For usage examples, see the integration tests and documentation.
*/
package ddb
