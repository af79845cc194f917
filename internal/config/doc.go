// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package config loads Wayfarer configuration with Koanf v2.

# Configuration Sources

Sources are layered, later layers winning:

  - Built-in defaults (defaultConfig)
  - YAML config file: CONFIG_PATH, or config.yaml / config.yml in the working
    directory, or /etc/wayfarer/config.yaml
  - Environment variables, including values from a .env file in the working
    directory (a .env entry never overrides a variable that is already set)

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT, SERVER_TIMEOUT, SHUTDOWN_TIMEOUT, ENVIRONMENT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: true/false

Data source:
  - DATASOURCE_DRIVER: duckdb, badger, mysql, memory (default: duckdb)
  - USERS_CSV, TRIPS_CSV, DUCKDB_PATH, SNAPSHOT_REFRESH_INTERVAL
  - BADGER_PATH, BADGER_IN_MEMORY, SEED_PATH
  - MYSQL_DSN, MYSQL_MAX_OPEN_CONNS, MYSQL_MAX_IDLE_CONNS
  - BREAKER_ENABLED, BREAKER_FAILURE_THRESHOLD, BREAKER_TIMEOUT

Recommendation engine:
  - RECOMMEND_TOP_N, RECOMMEND_AGE_WINDOW, RECENCY_POLICY, RECOMMEND_SEED
  - PLACE_FIELDS, DATE_FIELDS, FALLBACK_PLACES (comma separated)

API and security:
  - DEBUG_ENDPOINTS, CORS_ORIGINS, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT
*/
package config
