// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

// Package models holds the data types shared by the store, the dashboard
// renderers and the HTTP API.
package models

// CompetitorRanking is one row of the competitors joined with their current ranking.
type CompetitorRanking struct {
	CompetitorID       string `json:"competitor_id"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	CountryCode        string `json:"country_code"`
	Rank               int    `json:"rank"`
	Points             int    `json:"points"`
	Movement           int    `json:"movement"`
	CompetitionsPlayed int    `json:"competitions_played"`
}

// Competition is a row of the competitions overview.
type Competition struct {
	Name         string `json:"competition_name"`
	Gender       string `json:"gender"`
	Type         string `json:"type"`
	CategoryName string `json:"category_name"`
}

// SummaryMetrics are the headline numbers of the dashboard.
type SummaryMetrics struct {
	Competitors int64 `json:"competitors"`
	Countries   int64 `json:"countries"`
	MaxPoints   int64 `json:"max_points"`
}

// CountryStat aggregates the competitors of one country.
// AvgPoints is rounded half away from zero to two decimal places.
type CountryStat struct {
	Country     string  `json:"country"`
	Competitors int     `json:"competitors"`
	AvgPoints   float64 `json:"avg_points"`
}

// Leaderboard keys
const (
	LeaderboardTopRanked = "top-ranked"
	LeaderboardTopPoints = "top-points"
	LeaderboardStable    = "stable-rank"
)

// Leaderboard is a top-N projection of competitors by one metric.
type Leaderboard struct {
	Key   string              `json:"key"`
	Title string              `json:"title"`
	Rows  []CompetitorRanking `json:"rows"`
}

// DetailView is the single competitor panel. When Found is false Competitor
// is nil and Message explains why.
type DetailView struct {
	Found      bool               `json:"found"`
	Competitor *CompetitorRanking `json:"competitor,omitempty"`
	Message    string             `json:"message,omitempty"`
}

// DashboardOverview is the landing page payload.
type DashboardOverview struct {
	Summary      SummaryMetrics `json:"summary"`
	Competitions []Competition  `json:"competitions"`
}

// CompetitorTable is the filtered competitors page payload.
type CompetitorTable struct {
	Mode  string              `json:"mode"`
	Total int                 `json:"total"`
	Rows  []CompetitorRanking `json:"rows"`
}

// Page is an entry of the dashboard navigation.
type Page struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Path  string `json:"path"`
}

// ControlDefaults are the initial values for the filter controls.
type ControlDefaults struct {
	MinRank         int `json:"min_rank"`
	MaxRank         int `json:"max_rank"`
	MinPoints       int `json:"min_points"`
	LeaderboardSize int `json:"leaderboard_size"`
}

// Navigation lists the pages and the control defaults.
type Navigation struct {
	Pages    []Page          `json:"pages"`
	Defaults ControlDefaults `json:"defaults"`
}
