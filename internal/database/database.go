// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/courtside/internal/cache"
	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/logging"
)

// DB wraps the pooled store handle and provides the read-only data access
// used by the dashboard.
type DB struct {
	conn   *sql.DB
	cfg    *config.DatabaseConfig
	driver string

	// SQL function that case-folds names for the name search
	lowerFunc string

	// Result memoization, nil when disabled
	cache    *cache.Cache
	cacheTTL time.Duration

	breaker *gobreaker.CircuitBreaker[*Table]
}

// New opens the configured store, verifies it is reachable and, for the
// embedded drivers, optionally creates the schema and loads sample data.
func New(cfg *config.DatabaseConfig, cacheCfg *config.CacheConfig, breakerCfg *config.BreakerConfig) (*DB, error) {
	driverName, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	db := &DB{
		conn:      conn,
		cfg:       cfg,
		driver:    cfg.Driver,
		lowerFunc: nameLowerFunc(cfg.Driver),
		breaker:   newStoreBreaker(breakerCfg),
	}

	if cacheCfg != nil && cacheCfg.Enabled {
		db.cache = cache.New(cacheCfg.TTL, cacheCfg.MaxEntries)
		db.cacheTTL = cacheCfg.TTL
	}

	db.configureConnectionPool()

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.conn.PingContext(pingCtx); err != nil {
		db.closeResources()
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.SeedSampleData {
		if !db.isEmbedded() {
			logging.Warn().Str("driver", cfg.Driver).Msg("Sample data seeding is only supported for embedded drivers, skipping")
		} else if err := db.seed(pingCtx); err != nil {
			db.closeResources()
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	logging.Info().
		Str("driver", cfg.Driver).
		Str("target", describeTarget(cfg)).
		Bool("cache", db.cache != nil).
		Msg("Store connection established")

	return db, nil
}

// Driver returns the configured driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Conn returns the underlying pooled handle.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Stats returns connection pool statistics.
func (db *DB) Stats() sql.DBStats {
	return db.conn.Stats()
}

// Ping checks if the store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close releases the pool and stops the result cache.
func (db *DB) Close() error {
	if db.cache != nil {
		db.cache.Close()
	}
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

func (db *DB) closeResources() {
	if db.cache != nil {
		db.cache.Close()
	}
	closeQuietly(db.conn)
}

func (db *DB) isEmbedded() bool {
	return db.driver == config.DriverDuckDB || db.driver == config.DriverSQLite
}
