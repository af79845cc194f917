// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/datasource"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

func intPtr(v int) *int { return &v }

// fixtureSource returns four users and two dated trips:
//
//	1: 30, Pune, Goa          (target in most tests)
//	2: 28, Pune, Goa+Manali   trip Jaipur 2024-01-01
//	3: 33, Delhi, Kerala      trip Ooty   2024-06-01
//	4: 60, Pune, Agra
func fixtureSource() *datasource.MemorySource {
	users := []recommend.User{
		{ID: "1", Age: intPtr(30), City: "Pune", VisitedPlaces: []string{"Goa"}},
		{ID: "2", Age: intPtr(28), City: "Pune", VisitedPlaces: []string{"Goa", "Manali"}},
		{ID: "3", Age: intPtr(33), City: "Delhi", VisitedPlaces: []string{"Kerala"}},
		{ID: "4", Age: intPtr(60), City: "Pune", VisitedPlaces: []string{"Agra"}},
	}
	trips := []recommend.Trip{
		{ID: "10", UserID: "2", Fields: map[string]any{"destination": "Jaipur", "end_date": "2024-01-01"}},
		{ID: "11", UserID: "3", Fields: map[string]any{"destination": "Ooty", "end_date": "2024-06-01"}},
	}
	return datasource.NewMemorySource(users, trips)
}

// faultySource fails selected operations.
type faultySource struct {
	*datasource.MemorySource
	failGet     bool
	failList    bool
	failInspect bool
}

var errInjected = errors.New("injected failure")

func (f *faultySource) GetUserByID(ctx context.Context, id string) (*recommend.User, error) {
	if f.failGet {
		return nil, errInjected
	}
	return f.MemorySource.GetUserByID(ctx, id)
}

func (f *faultySource) ListUsers(ctx context.Context) ([]recommend.User, error) {
	if f.failList {
		return nil, errInjected
	}
	return f.MemorySource.ListUsers(ctx)
}

func (f *faultySource) Inspect(ctx context.Context) (datasource.Summary, error) {
	if f.failInspect {
		return datasource.Summary{}, errInjected
	}
	return f.MemorySource.Inspect(ctx)
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{
			DebugEnabled:   true,
			RequestTimeout: 5 * time.Second,
			SectionKeys: config.SectionKeysConfig{
				SimilarAge:   "similar_age_group",
				CoVisitation: "co_visitation",
				SameCity:     "same_city",
			},
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"https://app.example"},
			RateLimitDisabled: true,
		},
	}
}

func newTestHandler(t *testing.T, src datasource.Source, cfg *config.Config) *Handler {
	t.Helper()
	engineCfg := recommend.DefaultConfig()
	engineCfg.FallbackPlaces = []string{"Paris", "Tokyo", "Goa", "Ooty"}
	engineCfg.Seed = 7
	engine, err := recommend.NewEngine(engineCfg, src, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if cfg == nil {
		cfg = testConfig()
	}
	return NewHandler(engine, src, cfg)
}

func newTestServer(t *testing.T, h *Handler) http.Handler {
	t.Helper()
	return NewRouter(h).SetupChi()
}

func do(t *testing.T, srv http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body %q is not an envelope: %v", rec.Body.String(), err)
	}
	return resp
}
