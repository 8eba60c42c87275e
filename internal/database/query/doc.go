// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package query builds parameterized SQL for the database package.
//
// # Competitor Filters
//
// Build turns a base statement and a CompetitorFilter into SQL text plus
// arguments. Each filter that is set appends exactly one " AND <predicate>"
// and one argument, always in this order:
//
//	min rank    r.rank >= ?
//	max rank    r.rank <= ?
//	name        LOWER(c.name) LIKE ?   ("%<lowercased name>%")
//	country     c.country = ?          (skipped for "All")
//	min points  r.points >= ?
//
// Unset filters contribute nothing, so an empty filter returns the base
// statement unchanged:
//
//	q := query.Build(
//	    "SELECT ... FROM competitor_rankings r JOIN competitors c ON ... WHERE 1=1",
//	    query.CompetitorFilter{MinRank: 1, MaxRank: 20, Country: "Spain"},
//	    "ORDER BY r.rank ASC",
//	)
//	// q.SQL:  "... WHERE 1=1 AND r.rank >= ? AND r.rank <= ? AND c.country = ? ORDER BY r.rank ASC"
//	// q.Args: [1 20 Spain]
//
// LIKE wildcards typed into the name search are passed through unescaped.
//
// # WhereBuilder
//
// WhereBuilder is the lower level collector of predicates and arguments.
// Instances are not safe for concurrent use.
package query
