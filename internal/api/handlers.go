// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"context"
	"time"

	"github.com/tomtom215/courtside/internal/cache"
	"github.com/tomtom215/courtside/internal/config"
	"github.com/tomtom215/courtside/internal/database/query"
	"github.com/tomtom215/courtside/internal/models"
)

// Store is the read side of the rankings store used by the handlers.
// *database.DB satisfies it.
type Store interface {
	Ping(ctx context.Context) error
	Driver() string
	BreakerState() string
	CacheStats() (cache.Stats, bool)
	InvalidateCache() int

	SummaryMetrics(ctx context.Context) (models.SummaryMetrics, error)
	Competitors(ctx context.Context, f query.CompetitorFilter) ([]models.CompetitorRanking, error)
	AllCompetitors(ctx context.Context) ([]models.CompetitorRanking, error)
	Countries(ctx context.Context) ([]string, error)
	Competitions(ctx context.Context) ([]models.Competition, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: health checks and cache administration
//   - handlers_dashboard.go: dashboard pages (JSON)
//   - handlers_charts.go: dashboard charts (SVG)
type Handler struct {
	store     Store
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Every request is served from store; the handler itself keeps no state
// besides its start time, so it is safe for concurrent use.
func NewHandler(store Store, cfg *config.Config, version string) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) filterMode() string {
	if h.config == nil || h.config.Dashboard.FilterMode == "" {
		return config.FilterModeSQL
	}
	return h.config.Dashboard.FilterMode
}

func (h *Handler) leaderboardSize() int {
	if h.config == nil || h.config.Dashboard.LeaderboardSize <= 0 {
		return defaultLeaderboardLimit
	}
	return h.config.Dashboard.LeaderboardSize
}
