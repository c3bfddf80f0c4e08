/*
 * Copyright © 2025 Casetrail Systems Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default values for the sync daemon configuration.
const (
	DefaultPollInterval = 30 * time.Second
	DefaultMetricsAddr  = ":9190"
)

// Config holds the sync daemon configuration parsed from config.yaml.
// Credentials are never stored in the file; the store section names the
// environment variables that hold them.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Store   StoreConfig   `yaml:"store"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SourceConfig describes the REST endpoint that supplies raw records.
type SourceConfig struct {
	// URL is the endpoint returning the JSON array of records.
	URL string `yaml:"url"`

	// PollInterval controls how often the source is refreshed
	// (default 30s).
	PollInterval time.Duration `yaml:"poll_interval"`
}

// StoreConfig describes the DynamoDB table the dataset is mirrored into.
type StoreConfig struct {
	// Table is the DynamoDB table name. Leave empty to run without
	// persistence.
	Table string `yaml:"table"`

	// Region is the AWS region hosting the table.
	Region string `yaml:"region"`

	// AccessKeyEnv and SecretKeyEnv name the environment variables that
	// hold the AWS credentials.
	AccessKeyEnv string `yaml:"access_key_env"`
	SecretKeyEnv string `yaml:"secret_key_env"`
}

// AccessKey returns the AWS access key resolved from the environment.
func (s StoreConfig) AccessKey() string {
	if s.AccessKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.AccessKeyEnv)
}

// SecretKey returns the AWS secret key resolved from the environment.
func (s StoreConfig) SecretKey() string {
	if s.SecretKeyEnv == "" {
		return ""
	}
	return os.Getenv(s.SecretKeyEnv)
}

// MetricsConfig controls the Prometheus metrics listener.
type MetricsConfig struct {
	// Addr is the listen address for /metrics (default ":9190").
	// Set to "off" to disable the listener.
	Addr string `yaml:"addr"`
}

// Enabled reports whether the metrics listener should run.
func (m MetricsConfig) Enabled() bool {
	return m.Addr != "off"
}

// LoadEnv loads a .env file into the process environment if one is present.
// A missing file is not an error: deployments usually provide real
// environment variables instead.
func LoadEnv() {
	_ = godotenv.Load()
}

// Load reads and validates the configuration file at path, applying
// defaults for absent values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Source.PollInterval <= 0 {
		cfg.Source.PollInterval = DefaultPollInterval
	}
	if cfg.Metrics.Addr == "" {
		cfg.Metrics.Addr = DefaultMetricsAddr
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("config: source.url is required")
	}
	if c.Store.Table != "" && c.Store.Region == "" {
		return fmt.Errorf("config: store.region is required when store.table is set")
	}
	return nil
}
