// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package metrics provides Prometheus metrics for the dashboard service.

All collectors are registered with the default registry through promauto and
exposed at /metrics:

	curl http://localhost:3860/metrics

# Available Metrics

Store:
  - courtside_db_query_duration_seconds (histogram) labels: operation, table
  - courtside_db_query_errors_total (counter) labels: operation, table, error_type
  - courtside_db_connections_in_use (gauge)

Result cache:
  - courtside_cache_hits_total, courtside_cache_misses_total (counters)
  - courtside_cache_entries (gauge)

HTTP API:
  - courtside_api_requests_total (counter) labels: method, endpoint, status_code
  - courtside_api_request_duration_seconds (histogram) labels: method, endpoint
  - courtside_api_active_requests (gauge)

Charts:
  - courtside_chart_renders_total (counter) labels: chart, result

Circuit breaker:
  - courtside_circuit_breaker_state (gauge, 0=closed 1=half-open 2=open)
  - courtside_circuit_breaker_requests_total labels: name, result
  - courtside_circuit_breaker_consecutive_failures
  - courtside_circuit_breaker_transitions_total labels: name, from, to

# Example Alert

  - alert: CourtsideStoreCircuitOpen
    expr: courtside_circuit_breaker_state{name="store"} == 2
    for: 1m
*/
package metrics
