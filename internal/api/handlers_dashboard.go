// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/dashboard"
	"github.com/tomtom215/courtside/internal/database"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// Pages lists the dashboard pages and the initial control values.
//
// @Summary Navigation
// @Description Dashboard pages in navigation order and the default filter control values
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.Navigation}
// @Router /pages [get]
func (h *Handler) Pages(w http.ResponseWriter, r *http.Request) {
	defaults := models.ControlDefaults{LeaderboardSize: h.leaderboardSize()}
	if h.config != nil {
		defaults.MinRank = h.config.Dashboard.DefaultMinRank
		defaults.MaxRank = h.config.Dashboard.DefaultMaxRank
		defaults.MinPoints = h.config.Dashboard.DefaultMinPoints
	}

	respondData(w, r, time.Now(), nil, models.Navigation{
		Pages:    dashboard.Pages(),
		Defaults: defaults,
	})
}

// Dashboard returns the summary metrics and the competitions overview.
//
// @Summary Dashboard overview
// @Description Competitor count, country count, highest points and the competitions table
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DashboardOverview}
// @Failure 500 {object} models.APIResponse "Store error"
// @Failure 503 {object} models.APIResponse "Store unavailable"
// @Router /dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, trace := database.WithLoadTrace(r.Context())

	summary, err := h.store.SummaryMetrics(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	competitions, err := h.store.Competitions(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondData(w, r, start, trace, models.DashboardOverview{
		Summary:      summary,
		Competitions: dashboard.SortCompetitions(competitions),
	})
}

// CountryList returns the country dropdown options.
//
// @Summary Country options
// @Description "All" followed by every distinct competitor country in ascending order
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]string}
// @Router /countries/list [get]
func (h *Handler) CountryList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, trace := database.WithLoadTrace(r.Context())

	countries, err := h.store.Countries(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, r, start, trace, dashboard.CountryOptions(countries))
}

// Competitors returns the filtered competitors table ordered by rank.
//
// @Summary Competitors table
// @Description Competitors matching every supplied filter, rank ascending
// @Tags Dashboard
// @Produce json
// @Param min_rank query int false "Lowest rank (inclusive)"
// @Param max_rank query int false "Highest rank (inclusive)"
// @Param name query string false "Case-insensitive name substring"
// @Param country query string false "Exact country, or All"
// @Param min_points query int false "Minimum points"
// @Success 200 {object} models.APIResponse{data=models.CompetitorTable}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /competitors [get]
func (h *Handler) Competitors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p := paramParser{r: r}
	req := parseCompetitorsRequest(&p)
	if p.err != nil {
		respondAPIError(w, r, http.StatusBadRequest, p.err, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, trace := database.WithLoadTrace(r.Context())
	rows, err := h.filteredRows(ctx, req.Filter())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}

	respondData(w, r, start, trace, models.CompetitorTable{
		Mode:  h.filterMode(),
		Total: len(rows),
		Rows:  rows,
	})
}

// CompetitorDetail returns the detail view of the selected competitor within
// the filtered competitors table.
//
// The filters are those of /competitors. A blank selection or a filter that
// matches nothing yields the "No competitor selected." placeholder; a
// selection outside the filtered table yields "Competitor not found.".
//
// @Summary Competitor detail
// @Tags Dashboard
// @Produce json
// @Param selected query string false "Exact name of the selected competitor"
// @Param min_rank query int false "Lowest rank (inclusive)"
// @Param max_rank query int false "Highest rank (inclusive)"
// @Param name query string false "Case-insensitive name substring"
// @Param country query string false "Exact country, or All"
// @Param min_points query int false "Minimum points"
// @Success 200 {object} models.APIResponse{data=models.DetailView}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /competitors/detail [get]
func (h *Handler) CompetitorDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p := paramParser{r: r}
	req := DetailRequest{
		CompetitorsRequest: parseCompetitorsRequest(&p),
		Selected:           p.String("selected"),
	}
	if p.err != nil {
		respondAPIError(w, r, http.StatusBadRequest, p.err, nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	if strings.TrimSpace(req.Selected) == "" {
		respondData(w, r, start, nil, dashboard.Detail(nil, ""))
		return
	}

	ctx, trace := database.WithLoadTrace(r.Context())
	rows, err := h.filteredRows(ctx, req.Filter())
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, r, start, trace, dashboard.Detail(rows, req.Selected))
}

// parseCompetitorsRequest reads the competitor filter parameters.
func parseCompetitorsRequest(p *paramParser) CompetitorsRequest {
	return CompetitorsRequest{
		MinRank:   p.Int("min_rank", 0),
		MaxRank:   p.Int("max_rank", 0),
		Name:      p.String("name"),
		Country:   p.String("country"),
		MinPoints: p.Int("min_points", 0),
	}
}

// filteredRows applies f in the configured filter mode: in SQL, or over the
// cached full table. The result is never nil.
func (h *Handler) filteredRows(ctx context.Context, f query.CompetitorFilter) ([]models.CompetitorRanking, error) {
	var rows []models.CompetitorRanking
	if h.filterMode() == config.FilterModeMemory {
		all, err := h.store.AllCompetitors(ctx)
		if err != nil {
			return nil, err
		}
		rows = dashboard.FilterRows(all, f)
	} else {
		var err error
		if rows, err = h.store.Competitors(ctx, f); err != nil {
			return nil, err
		}
	}
	if rows == nil {
		rows = []models.CompetitorRanking{}
	}
	return rows, nil
}

// Countries returns the competitor count and average points of every country.
//
// @Summary Country insights
// @Description Countries ordered by competitor count descending, then name
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.CountryStat}
// @Router /countries [get]
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, trace := database.WithLoadTrace(r.Context())

	rows, err := h.store.AllCompetitors(ctx)
	if err != nil {
		respondStoreError(w, r, err)
		return
	}
	respondData(w, r, start, trace, dashboard.AggregateByCountry(rows))
}

// Leaderboards returns the top ranked, highest points and stable rank boards.
//
// @Summary Leaderboards
// @Tags Dashboard
// @Produce json
// @Param limit query int false "Rows per board (0 = all, default from configuration)"
// @Success 200 {object} models.APIResponse{data=[]models.Leaderboard}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /leaderboards [get]
func (h *Handler) Leaderboards(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	p := paramParser{r: r}
	req := LeaderboardsRequest{Limit: p.Int("limit", h.leaderboardSize())}
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
	respondData(w, r, start, trace, dashboard.Leaderboards(rows, req.Limit))
}
