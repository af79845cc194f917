// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/wayfarer/config.yaml",
	"/etc/wayfarer/config.yml",
}

// ConfigPathEnvVar names an explicit config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// DotEnvFile is merged into the environment before the env layer is read.
var DotEnvFile = ".env"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		DataSource: DataSourceConfig{
			Driver: DriverDuckDB,
			Tables: TableConfig{
				Users:      "users",
				Trips:      "trips",
				UserID:     "user_id",
				TripUserID: "user_id",
			},
			CSV: CSVConfig{
				UsersPath:       "data/users.csv",
				TripsPath:       "data/trips.csv",
				DuckDBPath:      "", // in-memory snapshot
				Threads:         2,
				RefreshInterval: 0,
			},
			Badger: BadgerConfig{
				Path: "/data/wayfarer-badger",
			},
			MySQL: MySQLConfig{
				MaxOpenConns:    20,
				MaxIdleConns:    5,
				ConnMaxLifetime: time.Hour,
			},
			Breaker: BreakerConfig{
				Enabled:          true,
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Recommend: RecommendConfig{
			TopN:               7,
			AgeWindow:          5,
			RecencyPolicy:      "", // resolved from the driver
			FallbackPerSection: 7,
			TopUpCount:         2,
			ExcludeOwnTrips:    true,
		},
		API: APIConfig{
			DebugEnabled:   false,
			RequestTimeout: 10 * time.Second,
			SectionKeys: SectionKeysConfig{
				SimilarAge:   "similar_age_group",
				CoVisitation: "co_visitation",
				SameCity:     "same_city",
			},
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf loads configuration using layered sources.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment, with .env entries filling unset variables
	if err := loadDotEnv(DotEnvFile); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv merges a .env file into the process environment. A missing
// file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil //nolint:nilerr // absent .env is the common case
	}
	return godotenv.Load(path)
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as strings.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.place_fields",
	"recommend.date_fields",
	"recommend.fallback_places",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Data source
	"datasource_driver":         "datasource.driver",
	"users_table":               "datasource.tables.users",
	"trips_table":               "datasource.tables.trips",
	"users_id_column":           "datasource.tables.user_id",
	"trips_user_column":         "datasource.tables.trip_user_id",
	"users_csv":                 "datasource.csv.users_path",
	"trips_csv":                 "datasource.csv.trips_path",
	"duckdb_path":               "datasource.csv.duckdb_path",
	"duckdb_threads":            "datasource.csv.threads",
	"snapshot_refresh_interval": "datasource.csv.refresh_interval",
	"badger_path":               "datasource.badger.path",
	"badger_in_memory":          "datasource.badger.in_memory",
	"seed_path":                 "datasource.badger.seed_path",
	"memory_seed_path":          "datasource.memory.seed_path",
	"mysql_dsn":                 "datasource.mysql.dsn",
	"mysql_max_open_conns":      "datasource.mysql.max_open_conns",
	"mysql_max_idle_conns":      "datasource.mysql.max_idle_conns",
	"mysql_conn_max_lifetime":   "datasource.mysql.conn_max_lifetime",
	"breaker_enabled":           "datasource.breaker.enabled",
	"breaker_max_requests":      "datasource.breaker.max_requests",
	"breaker_interval":          "datasource.breaker.interval",
	"breaker_timeout":           "datasource.breaker.timeout",
	"breaker_failure_threshold": "datasource.breaker.failure_threshold",

	// Recommendation engine
	"recommend_top_n":         "recommend.top_n",
	"recommend_age_window":    "recommend.age_window",
	"recency_policy":          "recommend.recency_policy",
	"place_fields":            "recommend.place_fields",
	"date_fields":             "recommend.date_fields",
	"fallback_places":         "recommend.fallback_places",
	"fallback_per_section":    "recommend.fallback_per_section",
	"fallback_top_up_count":   "recommend.top_up_count",
	"recommend_exclude_trips": "recommend.exclude_own_trips",
	"recommend_seed":          "recommend.seed",

	// API
	"debug_endpoints":     "api.debug_enabled",
	"api_request_timeout": "api.request_timeout",
	"section_key_age":     "api.section_keys.similar_age",
	"section_key_covisit": "api.section_keys.co_visitation",
	"section_key_city":    "api.section_keys.same_city",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable to its koanf path.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - USERS_CSV -> datasource.csv.users_path
//   - RECENCY_POLICY -> recommend.recency_policy
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
