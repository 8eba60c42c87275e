// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package middleware provides HTTP middleware shared by every API route.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - Metrics: Prometheus request counters, latency histograms and the
    in-flight gauge, labelled by chi route pattern

Both are plain func(http.Handler) http.Handler values and plug straight into
chi's r.Use():

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics)

Endpoint labels use the matched route pattern (for example
"/api/v1/charts/leaderboards/{board}.svg") rather than the raw URL path, so a
client cannot grow label cardinality by varying path parameters. Requests that
match no route are recorded under the "unmatched" endpoint.
*/
package middleware
