// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
database_connection.go - Driver Selection and Connection Scoping

This file maps the configured driver onto a database/sql driver name and DSN,
sizes the connection pool, and provides withConn, the only way queries obtain
a connection.

Drivers:
  - duckdb: embedded file or ":memory:" (github.com/duckdb/duckdb-go/v2)
  - sqlite: embedded file or ":memory:" (modernc.org/sqlite, pure Go)
  - mysql:  network server, DSN assembled with mysql.Config (github.com/go-sql-driver/mysql)

Embedded files are opened read-only unless sample data seeding is enabled.

Connection Scoping:
withConn checks a dedicated *sql.Conn out of the pool and returns it with a
deferred Close, so the connection goes back to the pool on every exit path:
normal return, error return and panic.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"net"
	"strconv"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"

	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/metrics"
)

const memoryPath = ":memory:"

// unicodeLowerFunc is registered on every sqlite connection. SQLite's
// built-in LOWER and LIKE only fold ASCII letters.
const unicodeLowerFunc = "unicode_lower"

func init() {
	sqlite.MustRegisterDeterministicScalarFunction(unicodeLowerFunc, 1, unicodeLower)
}

// unicodeLower lowercases its argument with the same folding the in-memory
// filter uses. NULL stays NULL.
func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return strings.ToLower(fmt.Sprint(v)), nil
	}
}

// nameLowerFunc returns the SQL function used to case-fold names for the
// configured driver.
func nameLowerFunc(driverName string) string {
	if driverName == config.DriverSQLite {
		return unicodeLowerFunc
	}
	return query.DefaultLowerFunc
}

// dataSource returns the database/sql driver name and DSN for cfg.
func dataSource(cfg *config.DatabaseConfig) (driverName, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverDuckDB:
		return "duckdb", duckDBDSN(cfg), nil
	case config.DriverSQLite:
		return "sqlite", sqliteDSN(cfg), nil
	case config.DriverMySQL:
		return "mysql", mysqlDSN(cfg), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func isMemoryPath(path string) bool {
	return path == "" || path == memoryPath
}

func duckDBDSN(cfg *config.DatabaseConfig) string {
	if isMemoryPath(cfg.Path) {
		return memoryPath
	}
	if cfg.SeedSampleData {
		return cfg.Path + "?access_mode=read_write"
	}
	return cfg.Path + "?access_mode=read_only"
}

func sqliteDSN(cfg *config.DatabaseConfig) string {
	if isMemoryPath(cfg.Path) {
		return memoryPath
	}
	if cfg.SeedSampleData {
		return "file:" + cfg.Path
	}
	return "file:" + cfg.Path + "?mode=ro"
}

func mysqlDSN(cfg *config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	mc.DBName = cfg.Name
	mc.Timeout = cfg.QueryTimeout
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN()
}

// describeTarget names the store for logs without exposing credentials.
func describeTarget(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverMySQL {
		return cfg.User + "@" + net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)) + "/" + cfg.Name
	}
	if isMemoryPath(cfg.Path) {
		return memoryPath
	}
	return cfg.Path
}

// configureConnectionPool sets connection pool parameters.
//
// An in-memory SQLite database lives inside a single connection, so the pool
// is pinned to one connection that never expires.
func (db *DB) configureConnectionPool() {
	if db.driver == config.DriverSQLite && isMemoryPath(db.cfg.Path) {
		db.conn.SetMaxOpenConns(1)
		db.conn.SetMaxIdleConns(1)
		db.conn.SetConnMaxLifetime(0)
		db.conn.SetConnMaxIdleTime(0)
		return
	}

	if db.cfg.MaxOpenConns > 0 {
		db.conn.SetMaxOpenConns(db.cfg.MaxOpenConns)
	}
	if db.cfg.MaxIdleConns > 0 {
		db.conn.SetMaxIdleConns(db.cfg.MaxIdleConns)
	}
	db.conn.SetConnMaxLifetime(db.cfg.ConnMaxLifetime)
}

// withConn runs fn on a dedicated connection that is always returned to the
// pool, whatever fn does.
func (db *DB) withConn(ctx context.Context, fn func(*sql.Conn) error) error {
	conn, err := db.conn.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	metrics.DBConnectionsInUse.Inc()
	defer func() {
		metrics.DBConnectionsInUse.Dec()
		closeWithLog(conn, "connection")
	}()

	return fn(conn)
}

// queryContext bounds ctx by the configured query timeout.
func (db *DB) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if db.cfg.QueryTimeout > 0 {
		return context.WithTimeout(ctx, db.cfg.QueryTimeout)
	}
	return context.WithCancel(ctx)
}
