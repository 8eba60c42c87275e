// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package models

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status            string       `json:"status"` // "healthy" or "degraded"
	Version           string       `json:"version"`
	Driver            string       `json:"driver"`
	DatabaseConnected bool         `json:"database_connected"`
	CircuitBreaker    string       `json:"circuit_breaker"`
	Cache             *CacheHealth `json:"cache,omitempty"`
	Uptime            float64      `json:"uptime"`
}

// CacheHealth summarizes the result cache. Absent when caching is disabled.
type CacheHealth struct {
	Entries   int64 `json:"entries"`
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	// HitRate is hits / (hits + misses) as a percentage.
	HitRate float64 `json:"hit_rate"`
}

// CacheClearResult is the payload of POST /api/v1/admin/cache/clear.
type CacheClearResult struct {
	EntriesRemoved int `json:"entries_removed"`
}
