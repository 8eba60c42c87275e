// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package dashboard

import (
	"bytes"
	"errors"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tomtom215/courtside/internal/models"
)

// ErrNoChartData is returned when there is nothing to plot.
var ErrNoChartData = errors.New("no data to chart")

// Chart geometry
const (
	chartHeight     = 512
	chartMinWidth   = 800
	chartBarWidth   = 40
	chartBarSpacing = 24
	chartPadding    = 160
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// BarChartSVG renders bars as an SVG document. The y axis starts at zero.
func BarChartSVG(title string, bars []Bar) ([]byte, error) {
	if len(bars) == 0 {
		return nil, ErrNoChartData
	}

	values := make([]chart.Value, len(bars))
	maxValue := 0.0
	for i, b := range bars {
		values[i] = chart.Value{Label: b.Label, Value: b.Value}
		if b.Value > maxValue {
			maxValue = b.Value
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	width := len(bars)*(chartBarWidth+chartBarSpacing) + chartPadding
	if width < chartMinWidth {
		width = chartMinWidth
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      width,
		Height:     chartHeight,
		BarWidth:   chartBarWidth,
		BarSpacing: chartBarSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render %q chart: %w", title, err)
	}
	return buf.Bytes(), nil
}

// CountryChart plots the competitor count of each country.
func CountryChart(stats []models.CountryStat) ([]byte, error) {
	bars := make([]Bar, len(stats))
	for i, s := range stats {
		bars[i] = Bar{Label: s.Country, Value: float64(s.Competitors)}
	}
	return BarChartSVG("Competitors per Country", bars)
}

// LeaderboardChart plots the points of each competitor on a leaderboard.
func LeaderboardChart(board models.Leaderboard) ([]byte, error) {
	bars := make([]Bar, len(board.Rows))
	for i, r := range board.Rows {
		bars[i] = Bar{Label: r.Name, Value: float64(r.Points)}
	}
	return BarChartSVG(board.Title+" (points)", bars)
}
