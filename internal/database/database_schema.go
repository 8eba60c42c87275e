// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tomtom215/courtside/internal/config"
)

// Canonical table names. Every query in the package uses these lowercase names.
const (
	TableCompetitors        = "competitors"
	TableCompetitorRankings = "competitor_rankings"
	TableCategories         = "categories"
	TableCompetitions       = "competitions"
)

type columnDef struct {
	name string
	typ  string
}

type tableDef struct {
	name    string
	columns []columnDef
}

// canonicalSchema is the single schema shared by all drivers. The store is
// normally provisioned externally; these definitions back sample data
// seeding and tests.
var canonicalSchema = []tableDef{
	{TableCompetitors, []columnDef{
		{"competitor_id", "VARCHAR(64) PRIMARY KEY"},
		{"name", "VARCHAR(255) NOT NULL"},
		{"country", "VARCHAR(128)"},
		{"country_code", "VARCHAR(8)"},
	}},
	{TableCompetitorRankings, []columnDef{
		{"rank_id", "INTEGER PRIMARY KEY"},
		{"competitor_id", "VARCHAR(64) NOT NULL"},
		{"rank", "INTEGER NOT NULL"},
		{"points", "INTEGER NOT NULL"},
		{"movement", "INTEGER NOT NULL DEFAULT 0"},
		{"competitions_played", "INTEGER NOT NULL DEFAULT 0"},
	}},
	{TableCategories, []columnDef{
		{"category_id", "VARCHAR(64) PRIMARY KEY"},
		{"category_name", "VARCHAR(128) NOT NULL"},
	}},
	{TableCompetitions, []columnDef{
		{"competition_id", "VARCHAR(64) PRIMARY KEY"},
		{"competition_name", "VARCHAR(255) NOT NULL"},
		{"gender", "VARCHAR(16)"},
		{"type", "VARCHAR(16)"},
		{"category_id", "VARCHAR(64)"},
	}},
}

// quoteIdent quotes an identifier for driver. rank and type are keywords on
// some engines, so DDL quotes every column.
func quoteIdent(driver, name string) string {
	if driver == config.DriverMySQL {
		return "`" + name + "`"
	}
	return `"` + name + `"`
}

// schemaStatements returns the CREATE TABLE statements for driver.
func schemaStatements(driver string) []string {
	stmts := make([]string, 0, len(canonicalSchema))
	for _, t := range canonicalSchema {
		cols := make([]string, len(t.columns))
		for i, c := range t.columns {
			cols[i] = quoteIdent(driver, c.name) + " " + c.typ
		}
		stmts = append(stmts, fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
			quoteIdent(driver, t.name), strings.Join(cols, ", ")))
	}
	return stmts
}

// insertStatement returns a parameterized INSERT covering every column of table.
func insertStatement(driver string, t tableDef) string {
	cols := make([]string, len(t.columns))
	marks := make([]string, len(t.columns))
	for i, c := range t.columns {
		cols[i] = quoteIdent(driver, c.name)
		marks[i] = "?"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(driver, t.name), strings.Join(cols, ", "), strings.Join(marks, ", "))
}

// createSchema creates the canonical tables inside tx.
func createSchema(ctx context.Context, tx *sql.Tx, driver string) error {
	for _, stmt := range schemaStatements(driver) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
