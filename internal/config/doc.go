// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

/*
Package config provides centralized configuration management for Courtside.

Configuration is layered with Koanf:

 1. Struct defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/courtside/config.yaml)
 3. Environment variables, including values read from an optional .env file

# Store Credentials

Store credentials are never defaulted. Selecting the mysql driver requires
DB_HOST, DB_USER, DB_PASSWORD and DB_NAME; validation fails at startup when
any of them is missing or still holds a placeholder such as "changeme".

# Environment Variables

Store:
  - DB_DRIVER: duckdb (default), mysql or sqlite
  - DB_PATH: database file for the embedded drivers
  - DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME: mysql connection
  - DB_QUERY_TIMEOUT: per-query deadline (default: 30s)
  - SEED_SAMPLE_DATA: create the schema and sample rows (embedded drivers only)

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3860)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)

Dashboard:
  - CACHE_ENABLED, CACHE_TTL: query result memoization (default: on, 5m)
  - CACHE_MAX_ENTRIES: memoized results kept before LRU eviction (default: 1024)
  - DASHBOARD_FILTER_MODE: sql (default) or memory
  - DASHBOARD_LEADERBOARD_SIZE: rows per leaderboard (default: 10)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)

# Example

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Database.Driver)
*/
package config
