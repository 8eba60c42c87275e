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

// SummarizeRows computes the summary metrics of an already loaded table.
func SummarizeRows(rows []models.CompetitorRanking) models.SummaryMetrics {
	countries := make(map[string]struct{})
	var maxPoints int64
	for _, r := range rows {
		if r.Country != "" {
			countries[r.Country] = struct{}{}
		}
		if int64(r.Points) > maxPoints {
			maxPoints = int64(r.Points)
		}
	}
	return models.SummaryMetrics{
		Competitors: int64(len(rows)),
		Countries:   int64(len(countries)),
		MaxPoints:   maxPoints,
	}
}

// Matches reports whether r satisfies every set predicate of f, mirroring the
// SQL built by query.Build: rank within [MinRank, MaxRank], case-insensitive
// name containment, country equality and points >= MinPoints.
func Matches(r models.CompetitorRanking, f query.CompetitorFilter) bool {
	if f.MinRank > 0 && r.Rank < f.MinRank {
		return false
	}
	if f.MaxRank > 0 && r.Rank > f.MaxRank {
		return false
	}
	if name := f.NameSearch(); name != "" && !strings.Contains(strings.ToLower(r.Name), name) {
		return false
	}
	if country := f.CountrySelection(); country != "" && r.Country != country {
		return false
	}
	if f.MinPoints > 0 && r.Points < f.MinPoints {
		return false
	}
	return true
}

// FilterRows returns the rows matching f sorted by rank ascending.
func FilterRows(rows []models.CompetitorRanking, f query.CompetitorFilter) []models.CompetitorRanking {
	out := make([]models.CompetitorRanking, 0, len(rows))
	for _, r := range rows {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	sortByRank(out)
	return out
}

// SortByRank returns a copy of rows ordered by rank ascending. Rows with the
// same rank keep their input order.
func SortByRank(rows []models.CompetitorRanking) []models.CompetitorRanking {
	out := make([]models.CompetitorRanking, len(rows))
	copy(out, rows)
	sortByRank(out)
	return out
}

func sortByRank(rows []models.CompetitorRanking) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Rank < rows[j].Rank
	})
}
