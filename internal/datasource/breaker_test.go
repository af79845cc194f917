// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package datasource

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

var errBackendDown = errors.New("backend down")

// flakySource fails ListUsers while down is set.
type flakySource struct {
	*MemorySource
	down  atomic.Bool
	calls atomic.Int32
}

func (f *flakySource) ListUsers(ctx context.Context) ([]recommend.User, error) {
	f.calls.Add(1)
	if f.down.Load() {
		return nil, errBackendDown
	}
	return f.MemorySource.ListUsers(ctx)
}

func testBreakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 2,
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := &flakySource{MemorySource: NewMemorySource([]recommend.User{{ID: "a"}}, nil)}
	inner.down.Store(true)
	b := NewBreaker(inner, testBreakerConfig(), zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := b.ListUsers(ctx); !errors.Is(err, errBackendDown) {
			t.Fatalf("call %d error = %v, want backend error", i, err)
		}
	}
	if b.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", b.State())
	}

	if _, err := b.ListUsers(ctx); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("open breaker error = %v, want ErrOpenState", err)
	}
	if got := inner.calls.Load(); got != 2 {
		t.Errorf("inner calls = %d, want 2 (open breaker must not reach the backend)", got)
	}

	inner.down.Store(false)
	time.Sleep(80 * time.Millisecond)
	users, err := b.ListUsers(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("half-open probe = %v, %v; want 1 user", users, err)
	}
	if b.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed after successful probe", b.State())
	}
}

func TestBreaker_NotFoundIsNotAFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b := NewBreaker(NewMemorySource(nil, nil), testBreakerConfig(), zerolog.Nop())
	for i := 0; i < 5; i++ {
		if _, err := b.GetUserByID(ctx, "ghost"); !errors.Is(err, recommend.ErrUserNotFound) {
			t.Fatalf("GetUserByID() error = %v, want ErrUserNotFound", err)
		}
	}
	if b.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", b.State())
	}
}

func TestBreaker_Forwards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := NewMemorySource(
		[]recommend.User{{ID: "a", City: "Pune"}},
		[]recommend.Trip{{ID: "t", UserID: "a", Fields: map[string]any{"destination": "Goa"}}},
	)
	b := NewBreaker(inner, testBreakerConfig(), zerolog.Nop())

	if b.Name() != "memory" || !b.ValidUserID("a") {
		t.Error("Name and ValidUserID should forward to the wrapped source")
	}
	u, err := b.GetUserByID(ctx, "A")
	if err != nil || u.City != "Pune" {
		t.Errorf("GetUserByID() = %+v, %v", u, err)
	}
	trips, err := b.ListTripsForUsers(ctx, []string{"a"})
	if err != nil || len(trips) != 1 {
		t.Errorf("ListTripsForUsers() = %v, %v", trips, err)
	}
	if b.Unwrap() != Source(inner) {
		t.Error("Unwrap() should return the wrapped source")
	}
}

func TestAsRefresher(t *testing.T) {
	t.Parallel()

	duck := &DuckDBSource{sqlSource: &sqlSource{dialect: duckdbDialect}}
	wrapped := NewBreaker(duck, testBreakerConfig(), zerolog.Nop())
	if r, ok := AsRefresher(wrapped); !ok || r != Refresher(duck) {
		t.Error("AsRefresher should find the DuckDB source behind the breaker")
	}

	if _, ok := AsRefresher(NewBreaker(NewMemorySource(nil, nil), testBreakerConfig(), zerolog.Nop())); ok {
		t.Error("memory source should not be a Refresher")
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), &config.DataSourceConfig{Driver: "oracle"}, zerolog.Nop())
	if !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("Open() error = %v, want ErrUnknownDriver", err)
	}
}

func TestOpen_MemoryWithBreaker(t *testing.T) {
	t.Parallel()

	cfg := &config.DataSourceConfig{Driver: config.DriverMemory, Breaker: testBreakerConfig()}
	src, err := Open(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = src.Close() }()
	if _, ok := src.(*Breaker); !ok {
		t.Errorf("Open() = %T, want *Breaker", src)
	}
}
