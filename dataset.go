/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"github.com/casetrail/dataset/errors"
)

// Entity is the minimal contract every stored record satisfies: an opaque,
// caller-defined string identity. The store imposes no other structural
// constraints on the entity type.
type Entity interface {
	ID() string
}

// DataSet holds the authoritative identity-to-entity mapping for one
// collection, together with the listeners interested in it. At most one
// entity exists per identity at any time.
//
// A DataSet provides no internal synchronization. All mutation and
// notification happen synchronously within the caller's goroutine; sharing
// one instance across goroutines requires external serialization.
type DataSet[T Entity] struct {
	items map[string]T
	// order tracks insertion order so snapshots are stable within a run.
	order []string

	subs      *subscriberList[T]
	notifying bool

	stats        stats
	errorHandler func(error)
}

// New creates an empty DataSet.
func New[T Entity](opts ...Option) *DataSet[T] {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	d := &DataSet[T]{
		items: make(map[string]T, s.capacity),
		subs:  newSubscriberList[T](),
	}
	if s.errorHandler != nil {
		d.errorHandler = s.errorHandler
	} else {
		logger := s.logger
		d.errorHandler = func(err error) {
			logger.Error("dataset: listener fault", "error", err)
		}
	}
	return d
}

// Add inserts item under its identity, replacing any existing entity with
// the same identity in full. It triggers exactly one notification.
func (d *DataSet[T]) Add(item T) error {
	if d.notifying {
		return errors.ErrReentrantMutation
	}
	d.put(item)
	d.notify()
	return nil
}

// AddAll inserts or replaces every item in items by identity, then triggers
// exactly one notification for the whole batch. Listeners never observe an
// intermediate state mid-batch.
func (d *DataSet[T]) AddAll(items []T) error {
	if d.notifying {
		return errors.ErrReentrantMutation
	}
	for _, item := range items {
		d.put(item)
	}
	d.notify()
	return nil
}

// Update performs a shallow field-level merge onto the entity stored under
// id: fields present in updates overwrite the corresponding fields of the
// existing entity, fields absent are preserved unchanged. Update keys are
// matched against json struct tags first, then exported field names; keys
// matching neither are ignored.
//
// If no entity with that identity exists the call is a no-op — no entity is
// created and no notification fires — and Update returns (false, nil).
// A non-nil error is returned only when a present field cannot be applied
// (type mismatch) or when the merge would alter the entity's identity; in
// both cases the stored entity is left untouched.
func (d *DataSet[T]) Update(id string, updates map[string]any) (bool, error) {
	if d.notifying {
		return false, errors.ErrReentrantMutation
	}

	existing, ok := d.items[id]
	if !ok {
		return false, nil
	}

	merged, err := applyPartial(existing, updates)
	if err != nil {
		return false, err
	}
	if merged.ID() != id {
		return false, errors.NewPartialError("", "merge must not change the entity identity")
	}

	d.items[id] = merged
	d.notify()
	return true, nil
}

// Remove deletes the entity with the given identity if present. It notifies
// listeners unconditionally, even when no entity with that identity existed.
func (d *DataSet[T]) Remove(id string) error {
	if d.notifying {
		return errors.ErrReentrantMutation
	}

	if _, ok := d.items[id]; ok {
		delete(d.items, id)
		d.dropOrder(id)
	}
	d.notify()
	return nil
}

// Clear empties the store entirely and notifies unconditionally.
func (d *DataSet[T]) Clear() error {
	if d.notifying {
		return errors.ErrReentrantMutation
	}

	d.items = make(map[string]T)
	d.order = d.order[:0]
	d.notify()
	return nil
}

// Get returns the entity stored under id. The second return value reports
// whether an entity with that identity exists. Get has no side effects.
func (d *DataSet[T]) Get(id string) (T, bool) {
	item, ok := d.items[id]
	return item, ok
}

// GetAll returns a freshly constructed slice of all current entities in
// insertion order. The returned slice is a snapshot: callers retaining it
// never observe subsequent mutations through it.
func (d *DataSet[T]) GetAll() []T {
	out := make([]T, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.items[id])
	}
	return out
}

// Size returns the number of entities currently stored.
func (d *DataSet[T]) Size() int {
	return len(d.items)
}

// Subscribe registers fn and returns its disposer. Registration order is
// preserved and determines invocation order on notification; registering
// the same function twice creates two independent entries. The disposer is
// idempotent.
func (d *DataSet[T]) Subscribe(fn Listener[T]) UnsubscribeFunc {
	return d.subs.add(fn)
}

// Stats returns a snapshot of the operation counters. Counters are updated
// atomically, so Stats is safe to call from an observer goroutine even
// while the owning goroutine mutates the set.
func (d *DataSet[T]) Stats() Stats {
	return d.stats.snapshot()
}

func (d *DataSet[T]) put(item T) {
	id := item.ID()
	if _, ok := d.items[id]; !ok {
		d.order = append(d.order, id)
	}
	d.items[id] = item
}

func (d *DataSet[T]) dropOrder(id string) {
	for i, v := range d.order {
		if v == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			return
		}
	}
}

// notify captures one snapshot and delivers it to every registered
// listener. The reentrancy flag stays set for the whole delivery pass, so
// mutations issued from inside a listener are rejected.
func (d *DataSet[T]) notify() {
	d.stats.mutations.Add(1)
	d.stats.entities.Store(uint64(len(d.items)))

	snapshot := d.GetAll()
	d.notifying = true
	defer func() { d.notifying = false }()

	delivered, faults := d.subs.broadcast(snapshot, d.errorHandler)
	d.stats.notifications.Add(1)
	d.stats.deliveries.Add(uint64(delivered))
	d.stats.listenerFaults.Add(uint64(faults))
}
