/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package dataset

import (
	"fmt"
	"testing"
)

type edge struct {
	Id   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

func (e edge) ID() string { return e.Id }

func TestSetGroup(t *testing.T) {
	t.Run("BasicOperations", func(t *testing.T) {
		group := NewSetGroup[node]()

		// Register dataset
		err := group.Register("map-view", New[node]())
		if err != nil {
			t.Fatalf("Failed to register: %v", err)
		}

		// Get dataset
		retrieved, err := group.Get("map-view")
		if err != nil {
			t.Fatalf("Failed to get: %v", err)
		}
		if retrieved == nil {
			t.Fatal("Retrieved dataset is nil")
		}

		// List datasets
		keys := group.List()
		if len(keys) != 1 || keys[0] != "map-view" {
			t.Fatalf("Expected [map-view], got %v", keys)
		}

		// Remove dataset
		err = group.Remove("map-view")
		if err != nil {
			t.Fatalf("Failed to remove: %v", err)
		}

		// Verify removal
		_, err = group.Get("map-view")
		if err == nil {
			t.Fatal("Expected error after removal")
		}
	})

	t.Run("DuplicateRegistration", func(t *testing.T) {
		group := NewSetGroup[node]()

		err := group.Register("map-view", New[node]())
		if err != nil {
			t.Fatalf("First registration failed: %v", err)
		}

		err = group.Register("map-view", New[node]())
		if err == nil {
			t.Fatal("Expected duplicate registration error")
		}
	})
}

func TestWorkspace(t *testing.T) {
	ws := NewWorkspace()

	t.Run("DifferentTypes", func(t *testing.T) {
		// Register node dataset
		err := RegisterSet(ws, "graph", New[node]())
		if err != nil {
			t.Fatalf("Failed to register node set: %v", err)
		}

		// Register edge dataset
		err = RegisterSet(ws, "graph-edges", New[edge]())
		if err != nil {
			t.Fatalf("Failed to register edge set: %v", err)
		}

		// Get node dataset
		nodes, err := GetSet[node](ws, "graph")
		if err != nil || nodes == nil {
			t.Fatal("Failed to get node set")
		}

		// Get edge dataset
		edges, err := GetSet[edge](ws, "graph-edges")
		if err != nil || edges == nil {
			t.Fatal("Failed to get edge set")
		}

		// List sets for each type
		nodeKeys := ListSets[node](ws)
		if len(nodeKeys) != 1 || nodeKeys[0] != "graph" {
			t.Fatalf("Expected node keys [graph], got %v", nodeKeys)
		}

		edgeKeys := ListSets[edge](ws)
		if len(edgeKeys) != 1 || edgeKeys[0] != "graph-edges" {
			t.Fatalf("Expected edge keys [graph-edges], got %v", edgeKeys)
		}
	})

	t.Run("SameKeyDifferentTypes", func(t *testing.T) {
		// Register with same key but different types
		if err := RegisterSet(ws, "items", New[node]()); err != nil {
			t.Fatalf("Failed to register node set: %v", err)
		}
		if err := RegisterSet(ws, "items", New[edge]()); err != nil {
			t.Fatalf("Failed to register edge set: %v", err)
		}

		// Both should succeed because they're different types
		if _, err := GetSet[node](ws, "items"); err != nil {
			t.Fatal("Failed to get node items")
		}
		if _, err := GetSet[edge](ws, "items"); err != nil {
			t.Fatal("Failed to get edge items")
		}
	})
}

func TestWorkspaceThreadSafety(t *testing.T) {
	ws := NewWorkspace()
	done := make(chan bool)

	// Concurrent writes
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := fmt.Sprintf("view%d", id)
			RegisterSet(ws, key, New[node]())
			done <- true
		}(i)
	}

	// Concurrent reads
	for i := 0; i < 10; i++ {
		go func() {
			ListSets[node](ws)
			done <- true
		}()
	}

	// Wait for completion
	for i := 0; i < 20; i++ {
		<-done
	}

	// Verify all sets registered
	keys := ListSets[node](ws)
	if len(keys) != 10 {
		t.Fatalf("Expected 10 sets, got %d", len(keys))
	}
}
