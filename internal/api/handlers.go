// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/datasource"
	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, root banner (this file)
//   - handlers_recommend.go: recommendation endpoints
//   - handlers_health.go: liveness and readiness probes
//   - handlers_debug.go: data source inspection
type Handler struct {
	engine    *recommend.Engine
	source    datasource.Source
	config    *config.Config
	keys      [3]string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(engine, source, cfg)
//	router := api.NewRouter(handler)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(engine *recommend.Engine, source datasource.Source, cfg *config.Config) *Handler {
	keys := cfg.API.SectionKeys
	return &Handler{
		engine:    engine,
		source:    source,
		config:    cfg,
		keys:      [3]string{keys.SimilarAge, keys.CoVisitation, keys.SameCity},
		startTime: time.Now(),
	}
}

// requestContext bounds a request by api.request_timeout when one is set.
func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.config == nil || h.config.API.RequestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.config.API.RequestTimeout)
}

// Root returns a short service banner.
//
// @Summary Service banner
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"service": "wayfarer",
		"message": "Hello from the recommendation backend!",
	})
}
