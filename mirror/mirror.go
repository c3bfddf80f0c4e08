/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package mirror

import (
	"context"
	"log/slog"
	"reflect"
	"sync"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/datastore"
)

// Mirror keeps a DataStore synchronized with a DataSet. It subscribes to
// the dataset, diffs each delivered snapshot against the previous one, and
// issues Put/Delete calls for the changes. Unchanged entities produce no
// writes, so the unconditional notifications a DataSet emits for no-op
// removals cost nothing downstream.
//
// Persistence failures never propagate into the mutation path that
// triggered them: they are logged and retained for inspection via Err.
type Mirror[T dataset.Entity] struct {
	store  datastore.DataStore[T]
	logger *slog.Logger
	ctx    context.Context

	unsubscribe dataset.UnsubscribeFunc
	prev        map[string]T

	mu      sync.Mutex
	lastErr error
}

// Option configures a Mirror.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Attach subscribes a new Mirror to ds. Entities already present are
// treated as persisted; only subsequent changes are written. The ctx bounds
// every datastore call the mirror makes. Call Close to detach.
func Attach[T dataset.Entity](ctx context.Context, ds *dataset.DataSet[T], store datastore.DataStore[T], opts ...Option) *Mirror[T] {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Mirror[T]{
		store:  store,
		logger: cfg.logger,
		ctx:    ctx,
		prev:   indexByID(ds.GetAll()),
	}
	m.unsubscribe = ds.Subscribe(m.onSnapshot)
	return m
}

// Hydrate loads every entity the store holds into ds as one batch. It is
// meant to run once at startup, before Attach.
func Hydrate[T dataset.Entity](ctx context.Context, ds *dataset.DataSet[T], store datastore.DataStore[T]) error {
	entities, err := store.List(ctx)
	if err != nil {
		return err
	}
	return ds.AddAll(entities)
}

// Close cancels the subscription. It is idempotent.
func (m *Mirror[T]) Close() {
	m.unsubscribe()
}

// Err returns the most recent persistence failure, or nil.
func (m *Mirror[T]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Mirror[T]) onSnapshot(snapshot []T) {
	next := indexByID(snapshot)

	for _, item := range snapshot {
		id := item.ID()
		old, existed := m.prev[id]
		if existed && reflect.DeepEqual(old, item) {
			continue
		}
		if err := m.store.Put(m.ctx, item); err != nil {
			m.fail("put", id, err)
		}
	}

	for id := range m.prev {
		if _, ok := next[id]; ok {
			continue
		}
		if err := m.store.Delete(m.ctx, id); err != nil {
			m.fail("delete", id, err)
		}
	}

	m.prev = next
}

func (m *Mirror[T]) fail(op, id string, err error) {
	m.logger.Error("mirror: persistence failure", "op", op, "id", id, "error", err)
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

func indexByID[T dataset.Entity](items []T) map[string]T {
	out := make(map[string]T, len(items))
	for _, item := range items {
		out[item.ID()] = item
	}
	return out
}
