// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package database

// Canonical read queries. rank and type are always qualified through a table
// alias so the same text runs on MySQL, DuckDB and SQLite.
const (
	// CompetitorRankingsBase selects the competitors joined with their ranking.
	// It ends in "WHERE 1=1" so query.Build can append filters.
	CompetitorRankingsBase = "SELECT c.competitor_id, c.name, c.country, c.country_code, " +
		"r.rank, r.points, r.movement, r.competitions_played " +
		"FROM competitor_rankings r " +
		"JOIN competitors c ON r.competitor_id = c.competitor_id " +
		"WHERE 1=1"

	// OrderByRank is the suffix of every competitors table query.
	OrderByRank = "ORDER BY r.rank ASC, c.name ASC"

	countCompetitorsSQL = "SELECT COUNT(*) AS total FROM competitors"
	countCountriesSQL   = "SELECT COUNT(DISTINCT country) AS total FROM competitors"
	maxPointsSQL        = "SELECT MAX(r.points) AS max_points FROM competitor_rankings r"

	countriesSQL = "SELECT DISTINCT c.country FROM competitors c " +
		"WHERE c.country IS NOT NULL AND c.country <> '' " +
		"ORDER BY c.country ASC"

	competitionsSQL = "SELECT c.competition_name, c.gender, c.type, cat.category_name " +
		"FROM competitions c " +
		"LEFT JOIN categories cat ON c.category_id = cat.category_id " +
		"ORDER BY c.competition_name ASC"
)
