// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Logging    LoggingConfig    `koanf:"logging"`
	DataSource DataSourceConfig `koanf:"datasource"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	API        APIConfig        `koanf:"api"`
	Security   SecurityConfig   `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Data source drivers.
const (
	DriverDuckDB = "duckdb"
	DriverBadger = "badger"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// DataSourceConfig selects and configures the user/trip store.
type DataSourceConfig struct {
	// Driver is one of duckdb, badger, mysql, memory.
	Driver string `koanf:"driver"`

	Tables  TableConfig   `koanf:"tables"`
	CSV     CSVConfig     `koanf:"csv"`
	Badger  BadgerConfig  `koanf:"badger"`
	MySQL   MySQLConfig   `koanf:"mysql"`
	Memory  MemoryConfig  `koanf:"memory"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// TableConfig names the tables and owner columns for SQL drivers.
type TableConfig struct {
	Users      string `koanf:"users"`
	Trips      string `koanf:"trips"`
	UserID     string `koanf:"user_id"`
	TripUserID string `koanf:"trip_user_id"`
}

// CSVConfig configures the DuckDB snapshot of users.csv and trips.csv.
type CSVConfig struct {
	UsersPath string `koanf:"users_path"`
	TripsPath string `koanf:"trips_path"`

	// DuckDBPath is the database file; empty means in-memory.
	DuckDBPath string `koanf:"duckdb_path"`
	Threads    int    `koanf:"threads"`

	// RefreshInterval reloads the CSV files periodically; zero disables it.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// BadgerConfig configures the embedded document store.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`

	// SeedPath is a JSON document file imported at startup when set.
	SeedPath string `koanf:"seed_path"`
}

// MySQLConfig configures the relational store.
type MySQLConfig struct {
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// MemoryConfig configures the in-process store, loaded from a JSON document file.
type MemoryConfig struct {
	SeedPath string `koanf:"seed_path"`
}

// BreakerConfig configures the circuit breaker around the data source.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	TopN      int `koanf:"top_n"`
	AgeWindow int `koanf:"age_window"`

	// RecencyPolicy is zero or neutral. Empty selects the driver default:
	// neutral for badger, zero otherwise.
	RecencyPolicy string `koanf:"recency_policy"`

	PlaceFields    []string `koanf:"place_fields"`
	DateFields     []string `koanf:"date_fields"`
	FallbackPlaces []string `koanf:"fallback_places"`

	FallbackPerSection int  `koanf:"fallback_per_section"`
	TopUpCount         int  `koanf:"top_up_count"`
	ExcludeOwnTrips    bool `koanf:"exclude_own_trips"`

	// Seed seeds fallback sampling; zero uses a fixed default.
	Seed int64 `koanf:"seed"`
}

// EffectiveRecencyPolicy resolves an empty policy from the driver.
func (c *Config) EffectiveRecencyPolicy() string {
	if c.Recommend.RecencyPolicy != "" {
		return c.Recommend.RecencyPolicy
	}
	if c.DataSource.Driver == DriverBadger {
		return "neutral"
	}
	return "zero"
}

// APIConfig holds HTTP API behaviour.
type APIConfig struct {
	// DebugEnabled exposes /api/v1/debug/datasource.
	DebugEnabled bool `koanf:"debug_enabled"`

	// RequestTimeout bounds a single recommendation request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	SectionKeys SectionKeysConfig `koanf:"section_keys"`
}

// SectionKeysConfig renames the three JSON section keys.
type SectionKeysConfig struct {
	SimilarAge   string `koanf:"similar_age"`
	CoVisitation string `koanf:"co_visitation"`
	SameCity     string `koanf:"same_city"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, file and environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
