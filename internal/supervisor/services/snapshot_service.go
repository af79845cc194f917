// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Refresher reloads a data source snapshot.
// Satisfied by datasource.Refresher.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// defaultRefreshTimeout bounds a single reload.
const defaultRefreshTimeout = 5 * time.Minute

// SnapshotRefreshService periodically reloads a snapshot-backed data source
// such as the DuckDB CSV snapshot. The initial load happens when the source
// is opened, so the first reload waits one full interval.
//
// A failed reload is logged and the previous snapshot stays in place; the
// service only returns when its context ends.
type SnapshotRefreshService struct {
	source   Refresher
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewSnapshotRefreshService creates the service. Callers should not add it to
// the tree when interval is zero; a non-positive interval makes Serve block
// without refreshing.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSnapshotRefreshService(source Refresher, interval time.Duration, logger zerolog.Logger) *SnapshotRefreshService {
	timeout := defaultRefreshTimeout
	if interval > 0 && interval < timeout {
		timeout = interval
	}
	return &SnapshotRefreshService{
		source:   source,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With().Str("service", "snapshot-refresh").Logger(),
		name:     "snapshot-refresh",
	}
}

// Serve implements suture.Service.
func (s *SnapshotRefreshService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Debug().Msg("snapshot refresh disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("snapshot refresh service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("snapshot refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *SnapshotRefreshService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.source.Refresh(refreshCtx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot refresh failed, keeping previous snapshot")
		return
	}
	s.logger.Info().Dur("duration", time.Since(start)).Msg("snapshot refreshed")
}

// String implements fmt.Stringer.
func (s *SnapshotRefreshService) String() string {
	return s.name
}
