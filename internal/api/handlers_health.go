// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/courtside/internal/database"
	"github.com/tomtom215/courtside/internal/logging"
	"github.com/tomtom215/courtside/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Store connectivity, circuit breaker state, result cache counters and uptime
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	dbConnected := h.store.Ping(r.Context()) == nil

	status := "healthy"
	if !dbConnected {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:            status,
		Version:           h.version,
		Driver:            h.store.Driver(),
		DatabaseConnected: dbConnected,
		CircuitBreaker:    h.store.BreakerState(),
		Uptime:            time.Since(h.startTime).Seconds(),
	}
	if stats, ok := h.store.CacheStats(); ok {
		health.Cache = &models.CacheHealth{
			Entries:   stats.TotalKeys,
			Hits:      stats.Hits,
			Misses:    stats.Misses,
			Evictions: stats.Evictions,
			HitRate:   stats.HitRate(),
		}
	}

	respondData(w, r, start, nil, health)
}

// HealthLive handles liveness check requests.
// Returns 200 OK if the process is alive, regardless of the store.
//
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondData(w, r, time.Now(), nil, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness check requests.
// Returns 503 while the store is unreachable or the circuit breaker is open.
//
// @Summary Readiness check
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	dbConnected := h.store.Ping(r.Context()) == nil
	breaker := h.store.BreakerState()
	ready := dbConnected && breaker != database.BreakerOpen

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"database_connected": dbConnected,
			"circuit_breaker":    breaker,
			"ready_to_serve":     ready,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// ClearCache drops every memoized query result.
//
// @Summary Clear the result cache
// @Tags Admin
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CacheClearResult}
// @Router /admin/cache/clear [post]
func (h *Handler) ClearCache(w http.ResponseWriter, r *http.Request) {
	n := h.store.InvalidateCache()
	logging.Ctx(r.Context()).Info().Int("entries", n).Msg("Result cache cleared on request")
	respondData(w, r, time.Now(), nil, models.CacheClearResult{EntriesRemoved: n})
}
