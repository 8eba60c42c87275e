// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package query

import (
	"strings"
)

// AllCountries is the country selection that disables the country filter.
const AllCountries = "All"

// CompetitorFilter holds the optional filters of the competitors table.
// Zero values mean "not set".
type CompetitorFilter struct {
	MinRank   int    `json:"min_rank"`
	MaxRank   int    `json:"max_rank"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	MinPoints int    `json:"min_points"`
}

// Columns referenced by the competitor predicates. They assume the
// competitor_rankings table is aliased r and competitors is aliased c.
const (
	ColumnRank    = "r.rank"
	ColumnPoints  = "r.points"
	ColumnName    = "c.name"
	ColumnCountry = "c.country"
)

// DefaultLowerFunc is the SQL function that case-folds names for the name
// search. Engines whose LOWER only folds ASCII pass their own to
// WhereWithLower and BuildWithLower.
const DefaultLowerFunc = "LOWER"

// NameSearch returns the trimmed, lowercased name search or "" when unset.
func (f CompetitorFilter) NameSearch() string {
	return strings.ToLower(strings.TrimSpace(f.Name))
}

// CountrySelection returns the trimmed country or "" when unset or All.
func (f CompetitorFilter) CountrySelection() string {
	country := strings.TrimSpace(f.Country)
	if strings.EqualFold(country, AllCountries) {
		return ""
	}
	return country
}

// IsEmpty reports whether no filter is set.
func (f CompetitorFilter) IsEmpty() bool {
	return f.Where().IsEmpty()
}

// Where returns the predicates for the set filters in a fixed order:
// min rank, max rank, name, country, min points.
// Each set filter contributes exactly one clause and one argument.
func (f CompetitorFilter) Where() *WhereBuilder {
	return f.WhereWithLower(DefaultLowerFunc)
}

// WhereWithLower is Where with lower as the name case-folding function.
func (f CompetitorFilter) WhereWithLower(lower string) *WhereBuilder {
	if lower == "" {
		lower = DefaultLowerFunc
	}
	wb := NewWhereBuilder()
	if f.MinRank > 0 {
		wb.AddClause(ColumnRank+" >= ?", f.MinRank)
	}
	if f.MaxRank > 0 {
		wb.AddClause(ColumnRank+" <= ?", f.MaxRank)
	}
	if name := f.NameSearch(); name != "" {
		wb.AddClause(lower+"("+ColumnName+") LIKE ?", "%"+name+"%")
	}
	if country := f.CountrySelection(); country != "" {
		wb.AddClause(ColumnCountry+" = ?", country)
	}
	if f.MinPoints > 0 {
		wb.AddClause(ColumnPoints+" >= ?", f.MinPoints)
	}
	return wb
}

// Query is SQL text plus its positional arguments.
type Query struct {
	SQL  string        `json:"sql"`
	Args []interface{} `json:"args"`
}

// New wraps static SQL with optional arguments.
func New(sql string, args ...interface{}) Query {
	if args == nil {
		args = []interface{}{}
	}
	return Query{SQL: sql, Args: args}
}

// Build appends " AND <predicate>" to base for every set filter, then suffix.
// base must already end in a WHERE clause ("... WHERE 1=1" is conventional).
// Filter values are only ever bound as arguments.
func Build(base string, f CompetitorFilter, suffix string) Query {
	return BuildWithLower(base, f, suffix, DefaultLowerFunc)
}

// BuildWithLower is Build with lower as the name case-folding function.
func BuildWithLower(base string, f CompetitorFilter, suffix, lower string) Query {
	var sb strings.Builder
	sb.WriteString(base)

	wb := f.WhereWithLower(lower)
	for _, clause := range wb.clauses {
		sb.WriteString(" AND ")
		sb.WriteString(clause)
	}
	if suffix != "" {
		sb.WriteString(" ")
		sb.WriteString(suffix)
	}

	_, args := wb.Build()
	return Query{SQL: sb.String(), Args: args}
}
