// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"sort"
	"strings"

	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// Pages lists the dashboard pages in navigation order.
func Pages() []models.Page {
	return []models.Page{
		{Key: "dashboard", Title: "Dashboard", Path: "/api/v1/dashboard"},
		{Key: "competitors", Title: "Competitors", Path: "/api/v1/competitors"},
		{Key: "country-insights", Title: "Country Insights", Path: "/api/v1/countries"},
		{Key: "leaderboard", Title: "Leaderboard", Path: "/api/v1/leaderboards"},
	}
}

// CountryOptions returns the country dropdown: "All" followed by the
// distinct, non-blank countries in ascending order.
func CountryOptions(countries []string) []string {
	seen := make(map[string]struct{}, len(countries))
	distinct := make([]string, 0, len(countries))
	for _, c := range countries {
		c = strings.TrimSpace(c)
		if c == "" || strings.EqualFold(c, query.AllCountries) {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		distinct = append(distinct, c)
	}
	sort.Strings(distinct)
	return append([]string{query.AllCountries}, distinct...)
}

// SortCompetitions returns a copy of competitions ordered by name.
func SortCompetitions(competitions []models.Competition) []models.Competition {
	out := make([]models.Competition, len(competitions))
	copy(out, competitions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
