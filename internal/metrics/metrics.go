// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtside_db_query_duration_seconds",
			Help:    "Duration of read-only store queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtside_db_query_errors_total",
			Help: "Total number of store query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtside_db_connections_in_use",
			Help: "Number of pooled store connections currently checked out",
		},
	)

	StoreUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtside_store_up",
			Help: "1 when the last store health check succeeded, 0 otherwise",
		},
	)

	// Result Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtside_cache_hits_total",
			Help: "Total number of query result cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courtside_cache_misses_total",
			Help: "Total number of query result cache misses",
		},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtside_cache_entries",
			Help: "Current number of cached query results",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtside_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courtside_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courtside_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Chart rendering
	ChartRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtside_chart_renders_total",
			Help: "Total number of SVG charts rendered",
		},
		[]string{"chart", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courtside_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtside_circuit_breaker_requests_total",
			Help: "Requests passing through the circuit breaker by result",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courtside_circuit_breaker_consecutive_failures",
			Help: "Current consecutive failure count",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courtside_circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Application info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courtside_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version", "db_driver"},
	)
)

// maxErrorLabelLen bounds the cardinality of the error_type label.
const maxErrorLabelLen = 50

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, errorType(err)).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetStoreUp records the outcome of a store health check.
func SetStoreUp(up bool) {
	if up {
		StoreUp.Set(1)
	} else {
		StoreUp.Set(0)
	}
}

// RecordCacheLookup counts a result cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordChartRender counts a chart render attempt.
func RecordChartRender(chart string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	ChartRenders.WithLabelValues(chart, result).Inc()
}

// errorType classifies an error into a short, low cardinality label.
func errorType(err error) string {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "context deadline exceeded"):
		return "timeout"
	case strings.Contains(msg, "context canceled"):
		return "canceled"
	case strings.Contains(msg, "circuit breaker is open"), strings.Contains(msg, "too many requests"):
		return "circuit_open"
	}
	if len(msg) > maxErrorLabelLen {
		msg = msg[:maxErrorLabelLen]
	}
	return msg
}
