// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package config

import (
	"time"
)

// Config holds all application configuration.
// Configuration is loaded in layers: defaults, then config file, then environment variables.
type Config struct {
	Database  DatabaseConfig  `koanf:"database"`
	Server    ServerConfig    `koanf:"server"`
	Cache     CacheConfig     `koanf:"cache"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// Supported store drivers.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// DatabaseConfig holds the relational store connection settings.
//
// Credentials have no defaults. For the mysql driver, User, Password and Name
// must be supplied through the environment, a .env file or the config file.
type DatabaseConfig struct {
	Driver string `koanf:"driver"`

	// Path is the database file for the embedded drivers (duckdb, sqlite).
	// ":memory:" opens a throwaway in-memory database.
	Path string `koanf:"path"`

	// Network settings for the mysql driver
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	// Params are extra DSN parameters (e.g. "tls=skip-verify")
	Params map[string]string `koanf:"params"`

	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`

	// SeedSampleData creates the schema and loads a small sample dataset.
	// Only honoured for the embedded drivers.
	SeedSampleData bool `koanf:"seed_sample_data"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// CacheConfig controls memoization of query results.
type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
	// MaxEntries bounds the cache; the least recently used result is evicted first.
	MaxEntries int `koanf:"max_entries"`
}

// BreakerConfig tunes the circuit breaker that guards store queries.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// Filter modes for the competitors page.
const (
	FilterModeSQL    = "sql"
	FilterModeMemory = "memory"
)

// DashboardConfig holds presentation defaults.
type DashboardConfig struct {
	// FilterMode selects how the competitors table is filtered:
	// "sql" pushes predicates into the query, "memory" filters a cached full table.
	FilterMode      string `koanf:"filter_mode"`
	LeaderboardSize int    `koanf:"leaderboard_size"`

	// Initial control values published to clients
	DefaultMinRank   int `koanf:"default_min_rank"`
	DefaultMaxRank   int `koanf:"default_max_rank"`
	DefaultMinPoints int `koanf:"default_min_points"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration using Koanf with layered sources.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
