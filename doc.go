/*
Package dataset provides a reactive, generic entity store for dynamically
mutating collections of identified records, with a subscription mechanism
that keeps downstream consumers synchronized with the data.

A DataSet owns the authoritative mapping from identity to entity. Every
mutation updates the mapping and then delivers a fresh snapshot of the full
state to every registered listener, in registration order. Batch insertion
coalesces into a single notification, so listeners never observe an
intermediate state mid-batch.

Key Features:
  - Type-safe operations using Go generics, bound to an identity accessor
  - Last-writer-wins replacement on Add, shallow field-level merge on Update
  - Snapshot delivery in registration order with per-listener fault isolation
  - Idempotent unsubscription via disposer functions
  - Named dataset groups for managing one store per view or session

Basic Usage:

	ds := dataset.New[Landmark]()

	unsubscribe := ds.Subscribe(func(snapshot []Landmark) {
	    render(snapshot)
	})
	defer unsubscribe()

	ds.Add(Landmark{Id: "a", Label: "Courthouse"})
	ds.AddAll(landmarksFromAPI)
	ds.Update("a", map[string]any{"label": "Old Courthouse"})

A DataSet performs no I/O and owns no locking: it is designed for
single-goroutine use (typically a render loop). Callers that share one
instance across goroutines must serialize access externally. The
persistence and ingest collaborators live in the datastore, mirror and
source packages.

For more information, see the documentation at https://github.com/casetrail/dataset
*/
package dataset
