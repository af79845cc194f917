// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package main is the entry point for the Wayfarer server.

Wayfarer answers one question over HTTP: given a user id, which places
should that user visit next? Recommendations come in three sections built
from other users' trips (similar age group, co-visitation and same city),
topped up from a curated fallback list when the data is thin.

# Startup

The server initializes components in this order:

 1. Configuration: defaults, config.yaml, .env and environment (Koanf v2)
 2. Logging: zerolog, JSON or console
 3. Data source: DuckDB CSV snapshot, Badger documents, MySQL or memory,
    wrapped in a circuit breaker
 4. Recommendation engine
 5. Supervisor tree: HTTP server and, for DuckDB, the snapshot refresh loop

# Configuration

Common environment variables:

	HTTP_PORT=8000
	DATASOURCE_DRIVER=duckdb            # duckdb, badger, mysql, memory
	USERS_CSV=data/users.csv
	TRIPS_CSV=data/trips.csv
	SNAPSHOT_REFRESH_INTERVAL=10m       # 0 disables reloading
	MYSQL_DSN=user:pass@tcp(db:3306)/travel
	BADGER_PATH=/data/wayfarer-badger
	RECENCY_POLICY=zero                 # zero or neutral; default depends on driver
	FALLBACK_PLACES=Goa,Manali,Jaipur
	DEBUG_ENDPOINTS=false
	CORS_ORIGINS=https://app.example

# Signal Handling

On SIGINT or SIGTERM the HTTP server stops accepting connections, waits up to
SHUTDOWN_TIMEOUT for in-flight requests and the data source is closed.

# Usage

	export DATASOURCE_DRIVER=duckdb USERS_CSV=./users.csv TRIPS_CSV=./trips.csv
	go run ./cmd/server
	curl 'localhost:8000/recommend_cities?user_id=42'

Swagger documentation is served at /swagger/index.html.
*/
package main
