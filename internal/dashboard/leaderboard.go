// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"sort"

	"github.com/tomtom215/courtside/internal/models"
)

// DefaultLeaderboardSize is the N of the top-N leaderboards.
const DefaultLeaderboardSize = 10

// Leaderboard titles
const (
	TitleTopRanked = "Top Ranked"
	TitleTopPoints = "Highest Points"
	TitleStable    = "Stable Rank"
)

// TopByRank returns the n best ranked rows, rank ascending.
// n <= 0 or n > len(rows) returns every row.
func TopByRank(rows []models.CompetitorRanking, n int) []models.CompetitorRanking {
	return limit(SortByRank(rows), n)
}

// TopByPoints returns the n rows with the most points, points descending and
// rank ascending among equal points.
func TopByPoints(rows []models.CompetitorRanking, n int) []models.CompetitorRanking {
	out := make([]models.CompetitorRanking, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Rank < out[j].Rank
	})
	return limit(out, n)
}

// StableRank returns up to n rows whose rank did not move, rank ascending.
func StableRank(rows []models.CompetitorRanking, n int) []models.CompetitorRanking {
	stable := make([]models.CompetitorRanking, 0, len(rows))
	for _, r := range rows {
		if r.Movement == 0 {
			stable = append(stable, r)
		}
	}
	sortByRank(stable)
	return limit(stable, n)
}

// Leaderboards builds the three leaderboards of size n.
func Leaderboards(rows []models.CompetitorRanking, n int) []models.Leaderboard {
	return []models.Leaderboard{
		{Key: models.LeaderboardTopRanked, Title: TitleTopRanked, Rows: TopByRank(rows, n)},
		{Key: models.LeaderboardTopPoints, Title: TitleTopPoints, Rows: TopByPoints(rows, n)},
		{Key: models.LeaderboardStable, Title: TitleStable, Rows: StableRank(rows, n)},
	}
}

// LeaderboardByKey builds a single leaderboard. ok is false for unknown keys.
func LeaderboardByKey(rows []models.CompetitorRanking, key string, n int) (models.Leaderboard, bool) {
	switch key {
	case models.LeaderboardTopRanked:
		return models.Leaderboard{Key: key, Title: TitleTopRanked, Rows: TopByRank(rows, n)}, true
	case models.LeaderboardTopPoints:
		return models.Leaderboard{Key: key, Title: TitleTopPoints, Rows: TopByPoints(rows, n)}, true
	case models.LeaderboardStable:
		return models.Leaderboard{Key: key, Title: TitleStable, Rows: StableRank(rows, n)}, true
	default:
		return models.Leaderboard{}, false
	}
}

func limit(rows []models.CompetitorRanking, n int) []models.CompetitorRanking {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
