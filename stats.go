/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import "sync/atomic"

// Stats is a point-in-time snapshot of a DataSet's operation counters.
type Stats struct {
	// Mutations counts Add, AddAll, applied Update, Remove and Clear calls.
	Mutations uint64
	// Notifications counts notification passes (one per mutation).
	Notifications uint64
	// Deliveries counts individual listener invocations that completed.
	Deliveries uint64
	// ListenerFaults counts listener invocations that panicked.
	ListenerFaults uint64
	// Entities is the entity count recorded at the last mutation.
	Entities uint64
}

// stats holds the live counters. Fields are atomic so observers (for
// example a metrics collector) can read them from another goroutine while
// the owning goroutine mutates the set.
type stats struct {
	mutations      atomic.Uint64
	notifications  atomic.Uint64
	deliveries     atomic.Uint64
	listenerFaults atomic.Uint64
	entities       atomic.Uint64
}

func (s *stats) snapshot() Stats {
	return Stats{
		Mutations:      s.mutations.Load(),
		Notifications:  s.notifications.Load(),
		Deliveries:     s.deliveries.Load(),
		ListenerFaults: s.listenerFaults.Load(),
		Entities:       s.entities.Load(),
	}
}
