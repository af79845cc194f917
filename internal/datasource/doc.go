// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package datasource provides the user and trip stores behind the recommendation
engine.

Every store implements Source, which extends recommend.DataSource with
identifier validation, inspection and lifecycle methods. Records are read as
schemaless maps and converted with UserFromRecord and TripFromRecord, so
column and document field names may vary between deployments.

# Drivers

  - duckdb: users.csv and trips.csv loaded into DuckDB tables with
    read_csv_auto. Refresh reloads both files atomically. Ids are numeric.
  - mysql: users and trips tables in a MySQL database.
  - badger: JSON documents in an embedded BadgerDB store, keyed by 24
    character hex object ids. ImportJSON seeds the store.
  - memory: an in-process snapshot loaded from the same JSON document format.

Open builds the configured driver and, when enabled, wraps it in a Breaker
so a failing backend fails fast instead of stalling every request.

# Usage

	src, err := datasource.Open(ctx, &cfg.DataSource, logger)
	if err != nil {
	    return err
	}
	defer src.Close()

	engine, err := recommend.NewEngine(recCfg, src, logger)
*/
package datasource
