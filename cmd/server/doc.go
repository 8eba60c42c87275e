// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package main is the entry point for the Courtside server application.

Courtside is a read-only analytics dashboard over tennis competitor rankings.
It serves four pages (Dashboard, Competitors, Country Insights, Leaderboard)
as JSON endpoints plus SVG charts, backed by a relational store.

# Application Architecture

The server runs its long-lived components under Suture v4 supervision:

	RootSupervisor ("courtside")
	├── StoreSupervisor ("store-layer")
	│   └── Store monitor (periodic ping, courtside_store_up gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with .env, config file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB, MySQL or SQLite behind a circuit breaker and result cache
 4. Supervisor Tree: Suture v4 process supervision
 5. HTTP Server: Chi router with CORS, rate limiting and metrics middleware

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Store
	DB_DRIVER=duckdb             # duckdb, mysql or sqlite
	DB_PATH=/data/courtside.duckdb
	SEED_SAMPLE_DATA=false       # embedded drivers only

	# MySQL (no defaults for credentials)
	DB_HOST=localhost
	DB_PORT=3306
	DB_USER=<user>
	DB_PASSWORD=<password>
	DB_NAME=<database>

	# Server
	HTTP_PORT=3860
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Dashboard
	CACHE_TTL=5m
	DASHBOARD_FILTER_MODE=sql    # sql or memory

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (HTTP_SHUTDOWN_TIMEOUT)
 3. Closes the result cache and database
 4. Reports any services that failed to stop

# Usage Examples

Local evaluation with the embedded sample dataset:

	export DB_DRIVER=duckdb DB_PATH=:memory: SEED_SAMPLE_DATA=true
	go run ./cmd/server

Against an existing MySQL rankings database:

	export DB_DRIVER=mysql DB_HOST=db DB_USER=reader DB_PASSWORD=xxx DB_NAME=tennis
	./courtside

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. Prometheus metrics are exposed at /metrics.

# See Also

  - internal/config: Configuration management
  - internal/database: Store access, caching and circuit breaking
  - internal/dashboard: Aggregations, leaderboards and charts
  - internal/api: HTTP handlers and routing
  - internal/supervisor: Process supervision
*/
package main
