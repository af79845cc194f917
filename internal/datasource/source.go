// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// sampleSize bounds the records returned by Inspect.
const sampleSize = 5

// Source is a recommendation data source with lifecycle and inspection.
type Source interface {
	recommend.DataSource
	recommend.IDValidator

	// Name returns the driver name.
	Name() string

	// Inspect reports record counts and a small sample of records.
	Inspect(ctx context.Context) (Summary, error)

	Close() error
}

// Refresher is implemented by sources that reload a snapshot.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Summary describes the contents of a data source.
type Summary struct {
	Driver      string           `json:"driver"`
	Users       int              `json:"users"`
	Trips       int              `json:"trips"`
	UserKeys    []string         `json:"user_keys"`
	TripKeys    []string         `json:"trip_keys"`
	SampleTrips []recommend.Trip `json:"-"`
}

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown data source driver")

// Open creates the configured data source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(ctx context.Context, cfg *config.DataSourceConfig, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "datasource").Str("driver", cfg.Driver).Logger()

	var (
		src Source
		err error
	)
	switch cfg.Driver {
	case config.DriverDuckDB:
		src, err = OpenDuckDB(ctx, cfg.CSV, cfg.Tables, logger)
	case config.DriverMySQL:
		src, err = OpenMySQL(ctx, cfg.MySQL, cfg.Tables)
	case config.DriverBadger:
		src, err = openBadgerSeeded(cfg.Badger, logger)
	case config.DriverMemory:
		src, err = openMemory(cfg.Memory)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("data source opened")

	if cfg.Breaker.Enabled {
		return NewBreaker(src, cfg.Breaker, logger), nil
	}
	return src, nil
}

// AsRefresher returns the Refresher behind src, looking through wrappers.
func AsRefresher(src Source) (Refresher, bool) {
	for src != nil {
		if r, ok := src.(Refresher); ok {
			return r, true
		}
		u, ok := src.(interface{ Unwrap() Source })
		if !ok {
			return nil, false
		}
		src = u.Unwrap()
	}
	return nil, false
}

func openBadgerSeeded(cfg config.BadgerConfig, logger zerolog.Logger) (Source, error) {
	src, err := OpenBadger(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SeedPath == "" {
		return src, nil
	}
	n, err := src.ImportFile(cfg.SeedPath)
	if err != nil {
		closeQuietly(src)
		return nil, fmt.Errorf("seed badger store: %w", err)
	}
	logger.Info().Str("path", cfg.SeedPath).Int("documents", n).Msg("badger store seeded")
	return src, nil
}

func openMemory(cfg config.MemoryConfig) (Source, error) {
	if cfg.SeedPath == "" {
		return NewMemorySource(nil, nil), nil
	}
	return LoadMemoryFile(cfg.SeedPath)
}

func closeQuietly(src interface{ Close() error }) {
	_ = src.Close() //nolint:errcheck // best effort on error path
}
