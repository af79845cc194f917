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
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Breaker wraps a Source with a circuit breaker. After FailureThreshold
// consecutive failures every call fails fast with gobreaker.ErrOpenState
// until Timeout elapses.
type Breaker struct {
	source Source
	cb     *gobreaker.CircuitBreaker[any]
}

// NewBreaker wraps source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreaker(source Source, cfg config.BreakerConfig, logger zerolog.Logger) *Breaker {
	name := "datasource-" + source.Name()
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.RecordBreakerTransition(name, from.String(), to.String())
		},
		// A missing user is an answer, not a backend failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, recommend.ErrUserNotFound) || errors.Is(err, context.Canceled)
		},
	})

	return &Breaker{source: source, cb: cb}
}

// Unwrap returns the wrapped source.
func (b *Breaker) Unwrap() Source { return b.source }

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State { return b.cb.State() }

func (b *Breaker) Name() string { return b.source.Name() }

func (b *Breaker) ValidUserID(id string) bool { return b.source.ValidUserID(id) }

func (b *Breaker) GetUserByID(ctx context.Context, id string) (*recommend.User, error) {
	return castResult[recommend.User](b.cb.Execute(func() (any, error) {
		return b.source.GetUserByID(ctx, id)
	}))
}

func (b *Breaker) ListUsers(ctx context.Context) ([]recommend.User, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.source.ListUsers(ctx)
	})
	if err != nil {
		return nil, err
	}
	users, _ := res.([]recommend.User)
	return users, nil
}

func (b *Breaker) ListTripsForUsers(ctx context.Context, ids []string) ([]recommend.Trip, error) {
	res, err := b.cb.Execute(func() (any, error) {
		return b.source.ListTripsForUsers(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	trips, _ := res.([]recommend.Trip)
	return trips, nil
}

// Inspect bypasses the breaker so operators can look at a tripped source.
func (b *Breaker) Inspect(ctx context.Context) (Summary, error) {
	return b.source.Inspect(ctx)
}

func (b *Breaker) Close() error { return b.source.Close() }

// castResult safely type-casts the circuit breaker result with error checking
func castResult[T any](result any, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}
