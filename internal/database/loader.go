// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
loader.go - Query Execution and Result Memoization

Load executes a query.Query and returns the complete result as a Table. There
is no retry and no partial result: any failure while acquiring the
connection, running the statement or scanning rows is returned to the caller.

Memoization:
Results are cached under cache.GenerateKey("load", q), a hash of the SQL text
together with every bound argument, so two parameterizations of the same
statement never share an entry. Cached tables are shared between callers and
must be treated as read-only.

Value Normalization:
Drivers disagree on Go types (MySQL returns []byte for text columns, DuckDB
returns int32 for INTEGER). Every value is normalized so callers only see
nil, string, int64, float64, bool or time.Time.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/courtside/internal/cache"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/metrics"
)

// Row maps column name to normalized value.
type Row map[string]interface{}

// Table is an ordered, fully materialized query result.
type Table struct {
	Columns []string
	Rows    []Row

	// Cached reports whether the table was served from the result cache.
	Cached bool
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the result includes column.
func (t *Table) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

func (t *Table) cachedCopy() *Table {
	cp := *t
	cp.Cached = true
	return &cp
}

// Load executes q and returns its result, consulting the result cache first.
func (db *DB) Load(ctx context.Context, q query.Query) (*Table, error) {
	key := cache.GenerateKey("load", q)

	if db.cache != nil {
		if v, ok := db.cache.Get(key); ok {
			if t, ok := v.(*Table); ok {
				metrics.RecordCacheLookup(true)
				traceFrom(ctx).record(true)
				return t.cachedCopy(), nil
			}
		}
		metrics.RecordCacheLookup(false)
	}

	table, err := db.execute(func() (*Table, error) {
		return db.load(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	traceFrom(ctx).record(false)

	if db.cache != nil {
		db.cache.Set(key, table)
		metrics.CacheEntries.Set(float64(db.cache.Len()))
	}
	return table, nil
}

// InvalidateCache drops every memoized result and returns how many were removed.
func (db *DB) InvalidateCache() int {
	if db.cache == nil {
		return 0
	}
	n := db.cache.Clear()
	metrics.CacheEntries.Set(0)
	logging.Info().Int("entries", n).Msg("Result cache cleared")
	return n
}

// CacheStats returns a snapshot of the result cache counters.
func (db *DB) CacheStats() (cache.Stats, bool) {
	if db.cache == nil {
		return cache.Stats{}, false
	}
	return db.cache.GetStats(), true
}

func (db *DB) load(ctx context.Context, q query.Query) (table *Table, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordDBQuery("load", tableOf(q.SQL), time.Since(start), err)
	}()

	ctx, cancel := db.queryContext(ctx)
	defer cancel()

	err = db.withConn(ctx, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, q.SQL, q.Args...)
		if err != nil {
			return fmt.Errorf("query %s: %w", tableOf(q.SQL), err)
		}
		defer closeWithLog(rows, "rows")

		table, err = scanTable(rows)
		return err
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

// scanTable reads every row of rows into a Table.
func scanTable(rows *sql.Rows) (*Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	dbTypes := make([]string, len(columns))
	if colTypes, err := rows.ColumnTypes(); err == nil {
		for i, ct := range colTypes {
			dbTypes[i] = strings.ToUpper(ct.DatabaseTypeName())
		}
	}

	table := &Table{Columns: columns, Rows: []Row{}}
	values := make([]interface{}, len(columns))
	ptrs := make([]interface{}, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i], dbTypes[i])
		}
		table.Rows = append(table.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return table, nil
}

var (
	integerTypes = map[string]bool{
		"TINYINT": true, "SMALLINT": true, "MEDIUMINT": true, "INT": true, "INTEGER": true, "BIGINT": true,
		"UNSIGNED TINYINT": true, "UNSIGNED SMALLINT": true, "UNSIGNED MEDIUMINT": true,
		"UNSIGNED INT": true, "UNSIGNED BIGINT": true, "YEAR": true,
	}
	floatTypes = map[string]bool{
		"FLOAT": true, "DOUBLE": true, "REAL": true, "DECIMAL": true, "NUMERIC": true,
	}
)

// normalizeValue maps driver specific Go types onto nil, string, int64,
// float64, bool and time.Time. dbType is the upper-cased database type name
// and is used to restore numbers that arrive as text.
func normalizeValue(v interface{}, dbType string) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case []byte:
		return normalizeText(string(t), dbType)
	case string:
		return normalizeText(t, dbType)
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	case uint:
		return int64(t)
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return int64(t)
	case float32:
		return float64(t)
	case float64:
		return t
	case *big.Int:
		if t.IsInt64() {
			return t.Int64()
		}
		f, _ := new(big.Float).SetInt(t).Float64()
		return f
	default:
		return v
	}
}

func normalizeText(s, dbType string) interface{} {
	switch {
	case integerTypes[dbType]:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	case floatTypes[dbType]:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// tableOf returns the first table named after FROM, for metric labels.
func tableOf(sqlText string) string {
	fields := strings.Fields(sqlText)
	for i, f := range fields {
		if strings.EqualFold(f, "FROM") && i+1 < len(fields) {
			return strings.Trim(fields[i+1], "`\"")
		}
	}
	return "unknown"
}
