// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package api provides the HTTP REST API layer for Courtside.

The API is read-only. Every page of the dashboard is a JSON endpoint backed by
the rankings store, and every chart is an SVG endpoint rendered on the server.

Key Components:

  - Router: Chi route tree and middleware stack
  - Handler: request handlers for the dashboard pages, charts and health checks
  - Store: the read interface the handlers need (*database.DB implements it)
  - Error handling: one JSON envelope with stable error codes

Endpoints (/api/v1/):

  - pages: navigation entries and control defaults
  - dashboard: summary metrics and the competition list
  - competitors: filtered competitor table (min_rank, max_rank, name, country, min_points)
  - competitors/detail: the selected competitor within the filtered table
  - countries, countries/list: per-country aggregates and the country dropdown
  - leaderboards: top ranked, highest points and stable rank boards
  - charts/countries.svg, charts/leaderboards/{board}.svg: rendered charts
  - health, health/live, health/ready: liveness and readiness checks
  - admin/cache/clear (POST): drop every cached query result

Usage Example:

	db, _ := database.New(&cfg.Database, &cfg.Cache, &cfg.Breaker)
	handler := api.NewHandler(db, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	http.ListenAndServe(":3860", router.SetupChi())

Response Envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "cached": true, "request_id": "..."}
	}

Errors use the same envelope with status "error" and an error object holding
code, message and optional details. Store failures never leak driver messages
to the client.

Thread Safety:

Handlers hold no per-request state and are safe for concurrent use.
*/
package api
