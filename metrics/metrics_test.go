/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/testmodels"
)

func TestCollector(t *testing.T) {
	ds := dataset.New[testmodels.Landmark]()
	ds.Subscribe(func([]testmodels.Landmark) {})

	if err := ds.Add(testmodels.Landmark{Id: "a"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := ds.AddAll([]testmodels.Landmark{{Id: "b"}, {Id: "c"}}); err != nil {
		t.Fatalf("AddAll failed: %v", err)
	}

	collector := NewCollector("landmarks", ds)

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(collector); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	expected := `
# HELP dataset_entities Number of entities recorded at the last mutation.
# TYPE dataset_entities gauge
dataset_entities{dataset="landmarks"} 3
# HELP dataset_listener_deliveries_total Total individual listener invocations that completed.
# TYPE dataset_listener_deliveries_total counter
dataset_listener_deliveries_total{dataset="landmarks"} 2
# HELP dataset_listener_faults_total Total listener invocations that panicked.
# TYPE dataset_listener_faults_total counter
dataset_listener_faults_total{dataset="landmarks"} 0
# HELP dataset_mutations_total Total mutating operations applied to the dataset.
# TYPE dataset_mutations_total counter
dataset_mutations_total{dataset="landmarks"} 2
# HELP dataset_notifications_total Total notification passes delivered to listeners.
# TYPE dataset_notifications_total counter
dataset_notifications_total{dataset="landmarks"} 2
`
	if err := testutil.GatherAndCompare(reg, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics output: %v", err)
	}
}
