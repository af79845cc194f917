// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateDataSource(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	return c.validateSecurity()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	return nil
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
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// identifierPattern restricts table and column names interpolated into SQL.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

func (c *Config) validateDataSource() error {
	var err error
	switch c.DataSource.Driver {
	case DriverDuckDB:
		if err = c.validateTables(); err == nil {
			err = c.validateCSV()
		}
	case DriverMySQL:
		if err = c.validateTables(); err == nil {
			err = c.validateMySQL()
		}
	case DriverBadger:
		if !c.DataSource.Badger.InMemory && c.DataSource.Badger.Path == "" {
			err = fmt.Errorf("BADGER_PATH is required unless BADGER_IN_MEMORY=true")
		}
	case DriverMemory:
	default:
		err = fmt.Errorf("DATASOURCE_DRIVER must be one of: duckdb, badger, mysql, memory")
	}
	if err != nil {
		return err
	}
	return c.validateBreaker()
}

func (c *Config) validateTables() error {
	t := c.DataSource.Tables
	names := map[string]string{
		"USERS_TABLE":       t.Users,
		"TRIPS_TABLE":       t.Trips,
		"USERS_ID_COLUMN":   t.UserID,
		"TRIPS_USER_COLUMN": t.TripUserID,
	}
	for env, name := range names {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("%s %q is not a valid SQL identifier", env, name)
		}
	}
	return nil
}

func (c *Config) validateCSV() error {
	if c.DataSource.CSV.UsersPath == "" {
		return fmt.Errorf("USERS_CSV is required when DATASOURCE_DRIVER=duckdb")
	}
	if c.DataSource.CSV.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be non-negative")
	}
	if c.DataSource.CSV.RefreshInterval < 0 {
		return fmt.Errorf("SNAPSHOT_REFRESH_INTERVAL must be non-negative")
	}
	return nil
}

func (c *Config) validateMySQL() error {
	m := c.DataSource.MySQL
	if m.DSN == "" {
		return fmt.Errorf("MYSQL_DSN is required when DATASOURCE_DRIVER=mysql")
	}
	if m.MaxOpenConns < 0 || m.MaxIdleConns < 0 {
		return fmt.Errorf("MYSQL_MAX_OPEN_CONNS and MYSQL_MAX_IDLE_CONNS must be non-negative")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	b := c.DataSource.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureThreshold == 0 {
		return fmt.Errorf("BREAKER_FAILURE_THRESHOLD must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.TopN < 1 {
		return fmt.Errorf("RECOMMEND_TOP_N must be at least 1")
	}
	if r.AgeWindow < 0 {
		return fmt.Errorf("RECOMMEND_AGE_WINDOW must be non-negative")
	}
	switch strings.ToLower(r.RecencyPolicy) {
	case "", "zero", "neutral":
	default:
		return fmt.Errorf("RECENCY_POLICY must be one of: zero, neutral")
	}
	if r.FallbackPerSection < 0 || r.TopUpCount < 0 {
		return fmt.Errorf("fallback sizes must be non-negative")
	}
	return nil
}

func (c *Config) validateAPI() error {
	k := c.API.SectionKeys
	if k.SimilarAge == "" || k.CoVisitation == "" || k.SameCity == "" {
		return fmt.Errorf("section keys must not be empty")
	}
	if k.SimilarAge == k.CoVisitation || k.SimilarAge == k.SameCity || k.CoVisitation == k.SameCity {
		return fmt.Errorf("section keys must be distinct")
	}
	if k.SimilarAge == "user_id" || k.CoVisitation == "user_id" || k.SameCity == "user_id" {
		return fmt.Errorf("section keys must not be user_id")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any configured origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}
