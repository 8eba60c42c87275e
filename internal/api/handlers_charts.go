// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/courtside/internal/dashboard"
	"github.com/tomtom215/courtside/internal/database"
	"github.com/tomtom215/courtside/internal/metrics"
)

// Chart names used as metric labels
const (
	chartCountries   = "countries"
	chartLeaderboard = "leaderboard"
)

// headerCache reports whether every store load behind a chart was a cache hit.
const headerCache = "X-Cache"

func cacheHeaderValue(trace *database.LoadTrace) string {
	if trace.Cached() {
		return "HIT"
	}
	return "MISS"
}

// CountriesChart renders the competitors-per-country bar chart.
//
// @Summary Country chart
// @Tags Charts
// @Produce image/svg+xml
// @Success 200 {file} file "SVG bar chart"
// @Header 200 {string} X-Cache "HIT when every load was served from the result cache, else MISS"
// @Failure 404 {object} models.APIResponse "No data to chart"
// @Router /charts/countries.svg [get]
func (h *Handler) CountriesChart(w http.ResponseWriter, r *http.Request) {
	ctx, trace := database.WithLoadTrace(r.Context())
	rows, err := h.store.AllCompetitors(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	svg, err := dashboard.CountryChart(dashboard.AggregateByCountry(rows))
	h.respondChart(w, r, chartCountries, trace, svg, err)
}

// LeaderboardChart renders the points of one leaderboard as a bar chart.
//
// @Summary Leaderboard chart
// @Tags Charts
// @Produce image/svg+xml
// @Param board path string true "top-ranked, top-points or stable-rank"
// @Param limit query int false "Rows (0 = all, default from configuration)"
// @Success 200 {file} file "SVG bar chart"
// @Header 200 {string} X-Cache "HIT when every load was served from the result cache, else MISS"
// @Failure 400 {object} models.APIResponse "Unknown board"
// @Failure 404 {object} models.APIResponse "No data to chart"
// @Router /charts/leaderboards/{board}.svg [get]
func (h *Handler) LeaderboardChart(w http.ResponseWriter, r *http.Request) {
	p := paramParser{r: r}
	req := LeaderboardChartRequest{
		Board: chi.URLParam(r, "board"),
		Limit: p.Int("limit", h.leaderboardSize()),
	}
	if p.err != nil {
		respondAPIError(w, r, http.StatusBadRequest, p.err, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, trace := database.WithLoadTrace(r.Context())
	rows, err := h.store.AllCompetitors(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	board, _ := dashboard.LeaderboardByKey(rows, req.Board, req.Limit)
	svg, err := dashboard.LeaderboardChart(board)
	h.respondChart(w, r, chartLeaderboard, trace, svg, err)
}

// respondChart writes the SVG or the error envelope. Charts have no metadata
// block, so X-Cache carries what metadata.cached carries for the JSON pages.
func (h *Handler) respondChart(w http.ResponseWriter, r *http.Request, chart string, trace *database.LoadTrace, svg []byte, err error) {
	metrics.RecordChartRender(chart, err)

	switch {
	case err == nil:
		w.Header().Set(headerCache, cacheHeaderValue(trace))
		respondSVG(w, svg)
	case errors.Is(err, dashboard.ErrNoChartData):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, msgNoChartData, nil)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeRenderFailed, "Failed to render chart", err)
	}
}
