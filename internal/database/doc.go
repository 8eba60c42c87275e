// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package database provides read-only access to the tennis rankings store.

The store is an external relational database with one canonical lowercase
schema:

	competitors(competitor_id, name, country, country_code)
	competitor_rankings(rank_id, competitor_id, rank, points, movement, competitions_played)
	categories(category_id, category_name)
	competitions(competition_id, competition_name, gender, type, category_id)

# Drivers

  - duckdb: embedded DuckDB file or ":memory:" (default)
  - sqlite: embedded SQLite file or ":memory:"
  - mysql:  MySQL 8 server; credentials come only from configuration

The embedded drivers can create the schema and load a small sample dataset
when database.seed_sample_data is enabled.

# Loading Data

All reads go through Load, which runs a query.Query on a dedicated pooled
connection, materializes the result as a Table and memoizes it:

	db, err := database.New(&cfg.Database, &cfg.Cache, &cfg.Breaker)
	if err != nil {
	    return err
	}
	defer db.Close()

	q := query.Build(database.CompetitorRankingsBase,
	    query.CompetitorFilter{MinRank: 1, MaxRank: 20}, database.OrderByRank)
	table, err := db.Load(ctx, q)
	rows, err := table.CompetitorRankings()

The higher level helpers (SummaryMetrics, Competitors, Countries,
Competitions) wrap Load and the typed accessors.

# Resilience

Queries run through a sony/gobreaker circuit breaker. While it is open Load
fails fast with ErrStoreUnavailable. Connections are always returned to the
pool, including when a query or scan fails.

# Thread Safety

DB is safe for concurrent use. Tables returned by Load may be shared with the
result cache and must not be modified.
*/
package database
