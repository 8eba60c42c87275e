// Courtside - Tennis Rankings Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courtside

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that all required configuration is present and valid.
func (c *Config) Validate() error {
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateBreaker(); err != nil {
		return err
	}
	if err := c.validateDashboard(); err != nil {
		return err
	}
	if err := c.validateRateLimits(); err != nil {
		return err
	}
	return c.validateLogging()
}

var validDrivers = map[string]bool{
	DriverDuckDB: true,
	DriverMySQL:  true,
	DriverSQLite: true,
}

func (c *Config) validateDatabase() error {
	if !validDrivers[c.Database.Driver] {
		return fmt.Errorf("DB_DRIVER must be one of duckdb, mysql, sqlite (got %q)", c.Database.Driver)
	}

	if c.Database.Driver == DriverMySQL {
		return c.validateMySQLCredentials()
	}

	if c.Database.Path == "" {
		return fmt.Errorf("DB_PATH is required for the %s driver", c.Database.Driver)
	}
	return nil
}

// validateMySQLCredentials rejects missing or placeholder credentials.
// No credential has a built-in default.
func (c *Config) validateMySQLCredentials() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required for the mysql driver")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("DB_PORT must be between 1 and 65535")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required for the mysql driver")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required for the mysql driver")
	}
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required for the mysql driver")
	}
	if containsPlaceholder(c.Database.Password) {
		return fmt.Errorf("DB_PASSWORD contains a placeholder value; set a real password")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when the cache is enabled")
	}
	if c.Cache.Enabled && c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive when the cache is enabled")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if c.Breaker.FailureRatio <= 0 || c.Breaker.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", c.Breaker.FailureRatio)
	}
	if c.Breaker.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// Leaderboard size bounds
const (
	MinLeaderboardSize = 1
	MaxLeaderboardSize = 100
)

func (c *Config) validateDashboard() error {
	switch c.Dashboard.FilterMode {
	case FilterModeSQL, FilterModeMemory:
	default:
		return fmt.Errorf("DASHBOARD_FILTER_MODE must be %q or %q (got %q)",
			FilterModeSQL, FilterModeMemory, c.Dashboard.FilterMode)
	}

	size := c.Dashboard.LeaderboardSize
	if size < MinLeaderboardSize || size > MaxLeaderboardSize {
		return fmt.Errorf("DASHBOARD_LEADERBOARD_SIZE must be between %d and %d",
			MinLeaderboardSize, MaxLeaderboardSize)
	}

	if c.Dashboard.DefaultMaxRank > 0 && c.Dashboard.DefaultMinRank > c.Dashboard.DefaultMaxRank {
		return fmt.Errorf("DASHBOARD_DEFAULT_MIN_RANK must not exceed DASHBOARD_DEFAULT_MAX_RANK")
	}
	return nil
}

// Rate limit bounds
const (
	MinRateLimitRequests = 1
	MaxRateLimitRequests = 1000000
	MinRateLimitWindow   = time.Second
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < MinRateLimitRequests || c.Security.RateLimitReqs > MaxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d",
			MinRateLimitRequests, MaxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < MinRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least %v", MinRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}

// placeholderPatterns are values copied from example files that must never reach production.
var placeholderPatterns = []string{
	"changeme",
	"change_me",
	"replace_me",
	"your_password",
	"your-password",
	"<password>",
}

func containsPlaceholder(value string) bool {
	lower := strings.ToLower(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
