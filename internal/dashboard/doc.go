// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package dashboard renders the dashboard views from loaded rankings.

Every function here is a pure transform over typed rows: none of them touch
the store and none modify their input. The HTTP layer loads rows through the
database package and hands them to these renderers.

# Views

  - SummarizeRows: competitor count, distinct countries, highest points
  - FilterRows and SortByRank: the competitors table
  - Detail: the single competitor panel, with placeholder messages
  - AggregateByCountry: per-country counts and average points
  - TopByRank, TopByPoints, StableRank, Leaderboards: top-N projections
  - CountryOptions, Pages, SortCompetitions: navigation and overview helpers
  - BarChartSVG and the chart producers: SVG bar charts via go-chart

# Example

	rows, _ := store.AllCompetitors(ctx)
	boards := dashboard.Leaderboards(rows, dashboard.DefaultLeaderboardSize)
	svg, err := dashboard.LeaderboardChart(boards[1])
*/
package dashboard
