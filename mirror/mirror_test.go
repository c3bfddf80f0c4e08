/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package mirror

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/datastore/memory"
	"github.com/casetrail/dataset/testmodels"
)

func TestMirrorPersistsChanges(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New[testmodels.Landmark]()
	store := memory.New[testmodels.Landmark]()

	m := Attach(ctx, ds, store)
	defer m.Close()

	if err := ds.Add(testmodels.Landmark{Id: "a", Label: "Courthouse"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := ds.AddAll([]testmodels.Landmark{
		{Id: "b", Label: "Harbour"},
		{Id: "c", Label: "Station"},
	}); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}

	if store.Size() != 3 {
		t.Fatalf("Expected 3 persisted entities, got %d", store.Size())
	}

	if err := ds.Remove("b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Size() != 2 {
		t.Fatalf("Expected 2 persisted entities after remove, got %d", store.Size())
	}
	if _, err := store.GetOne(ctx, "b"); err == nil {
		t.Error("Expected b to be deleted from the store")
	}

	if _, err := ds.Update("a", map[string]any{"Label": "Old Courthouse"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := store.GetOne(ctx, "a")
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if got.Label != "Old Courthouse" {
		t.Errorf("Expected persisted label %q, got %q", "Old Courthouse", got.Label)
	}

	if err := m.Err(); err != nil {
		t.Errorf("Expected no persistence error, got %v", err)
	}
}

func TestMirrorSkipsUnchangedEntities(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New[testmodels.Landmark]()
	store := memory.New[testmodels.Landmark]()

	if err := ds.Add(testmodels.Landmark{Id: "a", Label: "Courthouse"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	m := Attach(ctx, ds, store)
	defer m.Close()

	// A no-op removal notifies the dataset's listeners but must not
	// rewrite the untouched entity.
	if err := ds.Remove("unknown"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Size() != 0 {
		t.Errorf("Expected no writes for unchanged state, store holds %d", store.Size())
	}
}

func TestMirrorRetainsFailure(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New[testmodels.Landmark]()
	injected := fmt.Errorf("injected failure")
	store := memory.New[testmodels.Landmark]().WithPutError(injected)

	m := Attach(ctx, ds, store, WithLogger(slog.Default()))
	defer m.Close()

	// The mutation itself must succeed even though persistence fails.
	if err := ds.Add(testmodels.Landmark{Id: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Err(); err != injected {
		t.Errorf("Expected injected error via Err, got %v", err)
	}
}

func TestMirrorCloseStopsWrites(t *testing.T) {
	ctx := context.Background()
	ds := dataset.New[testmodels.Landmark]()
	store := memory.New[testmodels.Landmark]()

	m := Attach(ctx, ds, store)
	m.Close()
	m.Close() // idempotent

	if err := ds.Add(testmodels.Landmark{Id: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if store.Size() != 0 {
		t.Errorf("Expected no writes after Close, store holds %d", store.Size())
	}
}

func TestHydrate(t *testing.T) {
	ctx := context.Background()
	store := memory.New[testmodels.Landmark]()
	if err := store.PutAll(ctx, []testmodels.Landmark{
		{Id: "a", Label: "A"},
		{Id: "b", Label: "B"},
	}); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}

	ds := dataset.New[testmodels.Landmark]()
	var notified int
	ds.Subscribe(func([]testmodels.Landmark) { notified++ })

	if err := Hydrate(ctx, ds, store); err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}
	if ds.Size() != 2 {
		t.Fatalf("Expected 2 hydrated entities, got %d", ds.Size())
	}
	if notified != 1 {
		t.Errorf("Expected exactly one notification for the hydration batch, got %d", notified)
	}
}

func TestHydratePropagatesListError(t *testing.T) {
	ctx := context.Background()
	injected := fmt.Errorf("injected failure")
	store := memory.New[testmodels.Landmark]().WithListError(injected)
	ds := dataset.New[testmodels.Landmark]()

	if err := Hydrate(ctx, ds, store); err != injected {
		t.Errorf("Expected injected list error, got %v", err)
	}
}
