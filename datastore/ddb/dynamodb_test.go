/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/joho/godotenv"

	"github.com/casetrail/dataset/errors"
	"github.com/casetrail/dataset/registry"
	"github.com/casetrail/dataset/testmodels"
)

func init() {
	registry.RegisterKeyMap[testmodels.Landmark](registry.KeyMap{
		Partition: "LANDMARK",
		Sort:      "LANDMARK#{ID}",
	})
}

func getLandmarkStore(t *testing.T) *Store[testmodels.Landmark] {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	region := os.Getenv("AWS_REGION")
	tableName := os.Getenv("AWS_DDB_TABLE")

	if tableName == "" {
		t.Skip("AWS_DDB_TABLE not set, skipping DynamoDB test")
	}

	client, err := NewClient(awsAccessKey, awsSecretKey, region)
	if err != nil {
		t.Fatalf("Failed to create DynamoDB client: %v", err)
	}

	store, err := New[testmodels.Landmark](client, tableName)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestDynamoDBStorePutGetDelete(t *testing.T) {
	store := getLandmarkStore(t)
	ctx := context.Background()

	now := strfmt.DateTime(time.Now())
	landmark := testmodels.Landmark{
		Id:        "test-courthouse",
		Label:     "Courthouse (test)",
		Lat:       43.4675,
		Lon:       -79.6877,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := store.Put(ctx, landmark); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.GetOne(ctx, landmark.Id)
	if err != nil {
		t.Fatalf("GetOne failed: %v", err)
	}
	if got.Id != landmark.Id || got.Label != landmark.Label {
		t.Errorf("Retrieved landmark doesn't match: got %+v, want %+v", got, landmark)
	}

	if err := store.Delete(ctx, landmark.Id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetOne(ctx, landmark.Id); !errors.IsNotFound(err) {
		t.Errorf("Expected not-found after delete, got %v", err)
	}
}

func TestDynamoDBStorePutAllAndList(t *testing.T) {
	store := getLandmarkStore(t)
	ctx := context.Background()

	batch := []testmodels.Landmark{
		{Id: "test-a", Label: "A"},
		{Id: "test-b", Label: "B"},
		{Id: "test-c", Label: "C"},
	}
	if err := store.PutAll(ctx, batch); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}
	defer func() {
		for _, lm := range batch {
			_ = store.Delete(ctx, lm.Id)
		}
	}()

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	found := make(map[string]bool, len(all))
	for _, lm := range all {
		found[lm.Id] = true
	}
	for _, lm := range batch {
		if !found[lm.Id] {
			t.Errorf("List missing landmark %q", lm.Id)
		}
	}
}

type unmappedEntity struct {
	Id string
}

func (u unmappedEntity) ID() string { return u.Id }

func TestNewRequiresKeyMap(t *testing.T) {
	_, err := New[unmappedEntity](nil, "table")
	if !errors.IsNoKeyMap(err) {
		t.Errorf("Expected key map error, got %v", err)
	}
}
