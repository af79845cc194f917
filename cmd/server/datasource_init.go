// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/datasource"
	"github.com/tomtom215/wayfarer/internal/supervisor"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

// dataSourceOpenTimeout bounds the initial load, which for the DuckDB driver
// includes reading both CSV files.
const dataSourceOpenTimeout = 2 * time.Minute

// initDataSource opens the configured data source and logs what it holds.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initDataSource(ctx context.Context, cfg *config.DataSourceConfig, logger zerolog.Logger) (datasource.Source, error) {
	openCtx, cancel := context.WithTimeout(ctx, dataSourceOpenTimeout)
	defer cancel()

	src, err := datasource.Open(openCtx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open %s data source: %w", cfg.Driver, err)
	}

	summary, err := src.Inspect(openCtx)
	if err != nil {
		// The breaker and engine degrade on their own; an empty first look
		// is not fatal.
		logger.Warn().Err(err).Msg("data source inspection failed")
		return src, nil
	}
	logger.Info().
		Str("driver", summary.Driver).
		Int("users", summary.Users).
		Int("trips", summary.Trips).
		Strs("user_keys", summary.UserKeys).
		Strs("trip_keys", summary.TripKeys).
		Msg("data source ready")
	if summary.Users == 0 {
		logger.Warn().Msg("data source has no users; every request will return 404")
	}

	return src, nil
}

// addSnapshotRefresh adds the refresh loop to the data layer when the source
// supports reloading and an interval is set. It reports whether a service
// was added.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func addSnapshotRefresh(tree *supervisor.SupervisorTree, src datasource.Source, interval time.Duration, logger zerolog.Logger) bool {
	if interval <= 0 {
		return false
	}
	refresher, ok := datasource.AsRefresher(src)
	if !ok {
		logger.Warn().
			Str("driver", src.Name()).
			Msg("SNAPSHOT_REFRESH_INTERVAL ignored: data source does not reload")
		return false
	}
	tree.AddDataService(services.NewSnapshotRefreshService(refresher, interval, logger))
	logger.Info().Dur("interval", interval).Msg("snapshot refresh service added")
	return true
}
