// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"github.com/tomtom215/courtside/internal/dashboard"
	"github.com/tomtom215/courtside/internal/database/query"
)

// defaultLeaderboardLimit applies when neither the request nor the
// configuration sets a size.
const defaultLeaderboardLimit = dashboard.DefaultLeaderboardSize

// CompetitorsRequest holds the validated query parameters of /competitors.
// Zero values mean "filter not set".
type CompetitorsRequest struct {
	MinRank   int    `query:"min_rank" validate:"gte=0,lte=10000"`
	MaxRank   int    `query:"max_rank" validate:"omitempty,gte=0,lte=10000,gtefield=MinRank"`
	Name      string `query:"name" validate:"max=100,printable"`
	Country   string `query:"country" validate:"max=100,printable"`
	MinPoints int    `query:"min_points" validate:"gte=0"`
}

// Filter converts the request to a competitor filter.
func (req CompetitorsRequest) Filter() query.CompetitorFilter {
	return query.CompetitorFilter{
		MinRank:   req.MinRank,
		MaxRank:   req.MaxRank,
		Name:      req.Name,
		Country:   req.Country,
		MinPoints: req.MinPoints,
	}
}

// DetailRequest holds the filters and the selection of /competitors/detail.
type DetailRequest struct {
	CompetitorsRequest
	Selected string `query:"selected" validate:"max=100,printable"`
}

// LeaderboardsRequest holds the size of each leaderboard; 0 means every row.
type LeaderboardsRequest struct {
	Limit int `query:"limit" validate:"gte=0,lte=100"`
}

// LeaderboardChartRequest identifies one leaderboard chart.
type LeaderboardChartRequest struct {
	Board string `query:"board" validate:"required,oneof=top-ranked top-points stable-rank"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}
