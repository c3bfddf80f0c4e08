/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

// Package metrics exposes dataset operation counters as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/casetrail/dataset"
)

// Source is the slice of the DataSet API the collector reads. The Stats
// counters are maintained atomically, so scraping is safe while the owning
// goroutine mutates the set.
type Source interface {
	Stats() dataset.Stats
}

// Collector implements prometheus.Collector over one dataset's counters.
type Collector struct {
	src Source

	entities       *prometheus.Desc
	mutations      *prometheus.Desc
	notifications  *prometheus.Desc
	deliveries     *prometheus.Desc
	listenerFaults *prometheus.Desc
}

// NewCollector creates a Collector for the given dataset. The name label
// distinguishes multiple datasets registered on one registry.
func NewCollector(name string, src Source) *Collector {
	labels := prometheus.Labels{"dataset": name}
	return &Collector{
		src: src,
		entities: prometheus.NewDesc(
			"dataset_entities",
			"Number of entities recorded at the last mutation.",
			nil, labels,
		),
		mutations: prometheus.NewDesc(
			"dataset_mutations_total",
			"Total mutating operations applied to the dataset.",
			nil, labels,
		),
		notifications: prometheus.NewDesc(
			"dataset_notifications_total",
			"Total notification passes delivered to listeners.",
			nil, labels,
		),
		deliveries: prometheus.NewDesc(
			"dataset_listener_deliveries_total",
			"Total individual listener invocations that completed.",
			nil, labels,
		),
		listenerFaults: prometheus.NewDesc(
			"dataset_listener_faults_total",
			"Total listener invocations that panicked.",
			nil, labels,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entities
	ch <- c.mutations
	ch <- c.notifications
	ch <- c.deliveries
	ch <- c.listenerFaults
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entities, prometheus.GaugeValue, float64(stats.Entities))
	ch <- prometheus.MustNewConstMetric(c.mutations, prometheus.CounterValue, float64(stats.Mutations))
	ch <- prometheus.MustNewConstMetric(c.notifications, prometheus.CounterValue, float64(stats.Notifications))
	ch <- prometheus.MustNewConstMetric(c.deliveries, prometheus.CounterValue, float64(stats.Deliveries))
	ch <- prometheus.MustNewConstMetric(c.listenerFaults, prometheus.CounterValue, float64(stats.ListenerFaults))
}
