/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

// Command datasetsync keeps a reactive landmark dataset synchronized
// between a REST source and a DynamoDB table, and exposes the dataset's
// operation counters over /metrics.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/casetrail/dataset"
	"github.com/casetrail/dataset/config"
	"github.com/casetrail/dataset/datastore/ddb"
	"github.com/casetrail/dataset/metrics"
	"github.com/casetrail/dataset/mirror"
	"github.com/casetrail/dataset/registry"
	"github.com/casetrail/dataset/source"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "config.yaml", "Path to the configuration file")
)

// landmark is the record shape the configured REST source returns.
type landmark struct {
	Id    string  `json:"Id"`
	Label string  `json:"Label"`
	Lat   float64 `json:"Lat"`
	Lon   float64 `json:"Lon"`
	Note  string  `json:"Note,omitempty"`
}

func (l landmark) ID() string { return l.Id }

func init() {
	registry.RegisterKeyMap[landmark](registry.KeyMap{
		Partition: "LANDMARK",
		Sort:      "LANDMARK#{ID}",
	})
}

func main() {
	// Parse flags early to catch version flag
	flag.Parse()

	// Handle version flag
	if *versionFlag || *vFlag {
		info := dataset.GetVersionInfo()
		fmt.Printf("datasetsync version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("datasetsync failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	config.LoadEnv()
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds := dataset.New[landmark](dataset.WithLogger(logger))

	if cfg.Store.Table != "" {
		client, err := ddb.NewClient(cfg.Store.AccessKey(), cfg.Store.SecretKey(), cfg.Store.Region)
		if err != nil {
			return err
		}
		store, err := ddb.New[landmark](client, cfg.Store.Table)
		if err != nil {
			return err
		}

		if err := mirror.Hydrate(ctx, ds, store); err != nil {
			return fmt.Errorf("hydrate from %q: %w", cfg.Store.Table, err)
		}
		logger.Info("hydrated dataset", "table", cfg.Store.Table, "entities", ds.Size())

		m := mirror.Attach(ctx, ds, store, mirror.WithLogger(logger))
		defer m.Close()
	}

	if cfg.Metrics.Enabled() {
		reg := prometheus.NewRegistry()
		if err := reg.Register(metrics.NewCollector("landmarks", ds)); err != nil {
			return err
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics listener failed", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", cfg.Metrics.Addr)
	}

	loader := source.NewLoader[landmark](cfg.Source.URL, ds, source.WithLogger(logger))
	logger.Info("polling source", "url", cfg.Source.URL, "interval", cfg.Source.PollInterval)
	loader.Poll(ctx, cfg.Source.PollInterval)

	logger.Info("shutting down")
	return nil
}
