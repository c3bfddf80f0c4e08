/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/casetrail/dataset"
)

const defaultFetchTimeout = 10 * time.Second

// Loader fetches a JSON array of entities from an HTTP endpoint and applies
// it to a DataSet as one batch, so downstream listeners see each refresh as
// a single notification.
type Loader[T dataset.Entity] struct {
	url    string
	client *http.Client
	ds     *dataset.DataSet[T]
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*config)

type config struct {
	client *http.Client
	logger *slog.Logger
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the logger used by the polling loop.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewLoader creates a Loader that feeds ds from the given URL.
func NewLoader[T dataset.Entity](url string, ds *dataset.DataSet[T], opts ...Option) *Loader[T] {
	cfg := config{
		client: &http.Client{Timeout: defaultFetchTimeout},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Loader[T]{
		url:    url,
		client: cfg.client,
		ds:     ds,
		logger: cfg.logger,
	}
}

// Refresh performs one fetch-decode-apply cycle. The entire payload is
// applied with AddAll, producing exactly one notification.
func (l *Loader[T]) Refresh(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return fmt.Errorf("source %q: build request: %w", l.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("source %q: fetch: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("source %q: unexpected status %d", l.url, resp.StatusCode)
	}

	var records []T
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return fmt.Errorf("source %q: decode payload: %w", l.url, err)
	}

	return l.ds.AddAll(records)
}

// Poll refreshes immediately and then on every interval tick until ctx is
// cancelled. Individual refresh failures are logged and do not stop the
// loop.
func (l *Loader[T]) Poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := l.Refresh(ctx); err != nil {
		l.logger.Error("source: refresh failed", "url", l.url, "error", err)
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Refresh(ctx); err != nil {
				l.logger.Error("source: refresh failed", "url", l.url, "error", err)
			}
		}
	}
}
