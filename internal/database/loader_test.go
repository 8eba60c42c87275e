// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/database/query"
)

func TestLoad_ReturnsNormalizedTable(t *testing.T) {
	db := setupTestDB(t)

	table, err := db.Load(context.Background(), query.New(
		"SELECT c.name, r.rank, r.points FROM competitor_rankings r "+
			"JOIN competitors c ON r.competitor_id = c.competitor_id WHERE r.rank = ?", 1))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}
	wantCols := []string{"name", "rank", "points"}
	for i, c := range wantCols {
		if table.Columns[i] != c {
			t.Errorf("Columns[%d] = %q, want %q", i, table.Columns[i], c)
		}
	}

	row := table.Rows[0]
	if _, ok := row["name"].(string); !ok {
		t.Errorf("name is %T, want string", row["name"])
	}
	if v, ok := row["rank"].(int64); !ok || v != 1 {
		t.Errorf("rank = %#v, want int64(1)", row["rank"])
	}
	if v, ok := row["points"].(int64); !ok || v != 11830 {
		t.Errorf("points = %#v, want int64(11830)", row["points"])
	}
}

func TestLoad_CacheKeyIncludesArgs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	const sql = "SELECT c.name FROM competitor_rankings r " +
		"JOIN competitors c ON r.competitor_id = c.competitor_id WHERE r.rank = ?"

	first, err := db.Load(ctx, query.New(sql, 1))
	if err != nil {
		t.Fatalf("Load(rank=1) error = %v", err)
	}
	second, err := db.Load(ctx, query.New(sql, 2))
	if err != nil {
		t.Fatalf("Load(rank=2) error = %v", err)
	}

	if second.Cached {
		t.Error("same SQL with different args was served from cache")
	}
	if first.Rows[0]["name"] == second.Rows[0]["name"] {
		t.Errorf("rank 1 and rank 2 returned the same competitor %v", first.Rows[0]["name"])
	}

	again, err := db.Load(ctx, query.New(sql, 1))
	if err != nil {
		t.Fatalf("Load(rank=1) again error = %v", err)
	}
	if !again.Cached {
		t.Error("identical query and args should be served from cache")
	}
	if again.Rows[0]["name"] != first.Rows[0]["name"] {
		t.Errorf("cached name = %v, want %v", again.Rows[0]["name"], first.Rows[0]["name"])
	}
	if first.Cached {
		t.Error("cache hit must not mark the originally returned table")
	}

	stats, ok := db.CacheStats()
	if !ok {
		t.Fatal("CacheStats() reported cache disabled")
	}
	if stats.Hits < 1 || stats.TotalKeys != 2 {
		t.Errorf("stats = %+v, want >=1 hit and 2 keys", stats)
	}
}

func TestLoad_CacheDisabled(t *testing.T) {
	db := newTestDB(t, testOptions{seed: true})
	ctx := context.Background()

	q := query.New(countCompetitorsSQL)
	for i := 0; i < 2; i++ {
		table, err := db.Load(ctx, q)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if table.Cached {
			t.Errorf("load %d served from a disabled cache", i)
		}
	}
	if _, ok := db.CacheStats(); ok {
		t.Error("CacheStats() ok = true with cache disabled")
	}
	if n := db.InvalidateCache(); n != 0 {
		t.Errorf("InvalidateCache() = %d, want 0", n)
	}
}

func TestInvalidateCache(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	q := query.New(countCompetitorsSQL)
	if _, err := db.Load(ctx, q); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n := db.InvalidateCache(); n != 1 {
		t.Errorf("InvalidateCache() = %d, want 1", n)
	}
	table, err := db.Load(ctx, q)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Cached {
		t.Error("load after invalidation was served from cache")
	}
}

func TestLoad_CacheCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	db := newTestDB(t, testOptions{seed: true, cache: true, cacheEntries: 1})
	ctx := context.Background()

	first := query.New(countCompetitorsSQL)
	if _, err := db.Load(ctx, first); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := db.Countries(ctx); err != nil {
		t.Fatalf("Countries() error = %v", err)
	}

	stats, _ := db.CacheStats()
	if stats.TotalKeys != 1 || stats.Evictions != 1 {
		t.Errorf("stats = %+v, want 1 key after 1 eviction", stats)
	}
	table, err := db.Load(ctx, first)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if table.Cached {
		t.Error("evicted result was served from cache")
	}
}

func TestLoad_ReleasesConnectionOnError(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
		q    query.Query
	}{
		{
			name: "syntax error",
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			q:    query.New("SELEC nothing FROM nowhere"),
		},
		{
			name: "missing table",
			ctx:  func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			q:    query.New("SELECT * FROM missing_table WHERE id = ?", 1),
		},
		{
			name: "canceled before acquire",
			ctx: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			q: query.New(countCompetitorsSQL+" WHERE 1 = ?", 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()

			if _, err := db.Load(ctx, tt.q); err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if inUse := db.Stats().InUse; inUse != 0 {
				t.Errorf("Stats().InUse = %d after failed load, want 0", inUse)
			}
		})
	}

	// The pool still serves queries afterwards
	if _, err := db.Load(context.Background(), query.New(countCountriesSQL)); err != nil {
		t.Errorf("Load() after failures error = %v", err)
	}
}

func TestLoad_SingleConnectionPoolSurvivesErrors(t *testing.T) {
	db := newTestDB(t, testOptions{driver: config.DriverSQLite, seed: true})

	for i := 0; i < 3; i++ {
		if _, err := db.Load(context.Background(), query.New("SELECT * FROM missing_table")); err == nil {
			t.Fatal("Load() error = nil, want error")
		}
	}

	// A leaked connection would block here forever
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	table, err := db.Load(ctx, query.New(countCompetitorsSQL))
	if err != nil {
		t.Fatalf("Load() after failures error = %v", err)
	}
	if n, _ := table.Scalar(); n != int64(len(sampleCompetitors)) {
		t.Errorf("count = %d, want %d", n, len(sampleCompetitors))
	}
}

func TestLoad_BreakerOpensAfterFailures(t *testing.T) {
	db := newTestDB(t, testOptions{
		seed: true,
		breaker: &config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  3,
			FailureRatio: 0.5,
		},
	})
	ctx := context.Background()

	if got := db.BreakerState(); got != "closed" {
		t.Fatalf("initial BreakerState() = %q, want closed", got)
	}

	for i := 0; i < 3; i++ {
		_, err := db.Load(ctx, query.New("SELECT * FROM missing_table"))
		if err == nil {
			t.Fatal("Load() error = nil, want error")
		}
		if errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("failure %d reported as unavailable before the breaker opened", i)
		}
	}

	if got := db.BreakerState(); got != "open" {
		t.Fatalf("BreakerState() = %q, want open", got)
	}

	_, err := db.Load(ctx, query.New(countCompetitorsSQL))
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("Load() with open breaker error = %v, want ErrStoreUnavailable", err)
	}
}

func TestLoad_CanceledCallsDoNotTripBreaker(t *testing.T) {
	db := newTestDB(t, testOptions{
		seed: true,
		breaker: &config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  2,
			FailureRatio: 0.5,
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		_, err := db.Load(ctx, query.New(countCompetitorsSQL))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Load() error = %v, want context.Canceled", err)
		}
	}

	if got := db.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed", got)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tests := []struct {
		name   string
		in     interface{}
		dbType string
		want   interface{}
	}{
		{"nil", nil, "INT", nil},
		{"mysql text int", []byte("42"), "INT", int64(42)},
		{"mysql text bigint", []byte("-7"), "BIGINT", int64(-7)},
		{"mysql text decimal", []byte("12.5"), "DECIMAL", 12.5},
		{"mysql varchar", []byte("Spain"), "VARCHAR", "Spain"},
		{"unparseable int stays text", []byte("n/a"), "INT", "n/a"},
		{"sqlite string", "Italy", "TEXT", "Italy"},
		{"duckdb int32", int32(11830), "INTEGER", int64(11830)},
		{"int16", int16(3), "", int64(3)},
		{"uint32", uint32(9), "", int64(9)},
		{"float32", float32(1.5), "", float64(1.5)},
		{"float64", 2.25, "", 2.25},
		{"bool", true, "BOOLEAN", true},
		{"time", now, "TIMESTAMP", now},
		{"hugeint", big.NewInt(123456), "HUGEINT", int64(123456)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.in, tt.dbType)
			if tt.name == "time" {
				if !got.(time.Time).Equal(now) {
					t.Errorf("normalizeValue() = %v", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("normalizeValue(%#v, %q) = %#v, want %#v", tt.in, tt.dbType, got, tt.want)
			}
		})
	}
}

func TestTableOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		CompetitorRankingsBase: "competitor_rankings",
		countCompetitorsSQL:    "competitors",
		competitionsSQL:        "competitions",
		"SELECT 1":             "unknown",
		"select * from `x` t":  "x",
	}
	for sql, want := range tests {
		if got := tableOf(sql); got != want {
			t.Errorf("tableOf(%q) = %q, want %q", sql, got, want)
		}
	}
}

func TestLoadTrace(t *testing.T) {
	db := setupTestDB(t)

	ctx, trace := WithLoadTrace(context.Background())
	if trace.Cached() {
		t.Error("empty trace reports cached")
	}

	if _, err := db.Countries(ctx); err != nil {
		t.Fatalf("Countries() error = %v", err)
	}
	if trace.Loads() != 1 || trace.Cached() {
		t.Errorf("after first load: loads=%d cached=%v, want 1 false", trace.Loads(), trace.Cached())
	}

	ctx, trace = WithLoadTrace(context.Background())
	if _, err := db.Countries(ctx); err != nil {
		t.Fatalf("Countries() error = %v", err)
	}
	if !trace.Cached() {
		t.Error("repeated load should be reported as cached")
	}

	var nilTrace *LoadTrace
	nilTrace.record(true)
	if nilTrace.Cached() || nilTrace.Loads() != 0 {
		t.Error("nil trace should be inert")
	}
}
