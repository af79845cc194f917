// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // DuckDB driver
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/metrics"
)

// numericID matches the integer user ids of the tabular deployment.
var numericID = regexp.MustCompile(`^[0-9]+$`)

// DuckDBSource serves users.csv and trips.csv from DuckDB tables.
type DuckDBSource struct {
	*sqlSource
	cfg    config.CSVConfig
	logger zerolog.Logger
}

// OpenDuckDB opens the database and loads the CSV files.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenDuckDB(ctx context.Context, cfg config.CSVConfig, tables config.TableConfig, logger zerolog.Logger) (*DuckDBSource, error) {
	if cfg.DuckDBPath != "" {
		if dir := filepath.Dir(cfg.DuckDBPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	connStr := cfg.DuckDBPath
	if cfg.Threads > 0 {
		connStr = fmt.Sprintf("%s?threads=%d", cfg.DuckDBPath, cfg.Threads)
	}
	db, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}

	src := &DuckDBSource{
		sqlSource: &sqlSource{
			db:       db,
			dialect:  duckdbDialect,
			tables:   tables,
			hasTrips: cfg.TripsPath != "",
			idShape:  numericID,
		},
		cfg:    cfg,
		logger: logger,
	}

	if err := src.Refresh(ctx); err != nil {
		_ = db.Close() //nolint:errcheck // error path
		return nil, err
	}
	return src, nil
}

// Refresh reloads both CSV files in one transaction. Readers see either the
// old or the new snapshot, never a mix.
func (s *DuckDBSource) Refresh(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		users, trips := s.counts(ctx, err)
		metrics.RecordRefresh(users, trips, err)
	}()

	loads := map[string]string{s.tables.Users: s.cfg.UsersPath}
	if s.hasTrips {
		loads[s.tables.Trips] = s.cfg.TripsPath
	}
	for _, path := range loads {
		if _, statErr := os.Stat(path); statErr != nil {
			return fmt.Errorf("csv snapshot: %w", statErr)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() //nolint:errcheck // rollback after failure
		}
	}()

	for table, path := range loads {
		stmt := fmt.Sprintf("CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto(%s, header = true)",
			s.dialect.ident(table), sqlString(path))
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("load %s from %s: %w", table, path, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot load: %w", err)
	}

	s.logger.Info().
		Str("users_csv", s.cfg.UsersPath).
		Str("trips_csv", s.cfg.TripsPath).
		Dur("duration", time.Since(start)).
		Msg("csv snapshot loaded")
	return nil
}

func (s *DuckDBSource) counts(ctx context.Context, err error) (users, trips int) {
	if err != nil {
		return 0, 0
	}
	users, _ = s.count(ctx, s.tables.Users) //nolint:errcheck // metrics only
	if s.hasTrips {
		trips, _ = s.count(ctx, s.tables.Trips) //nolint:errcheck // metrics only
	}
	return users, trips
}

// sqlString quotes s as a SQL string literal.
func sqlString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
