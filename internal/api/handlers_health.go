// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/datasource"
)

// readinessTimeout bounds the data source probe of HealthReady.
const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the data source answers.
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.source == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeDataSourceUnavailable, "Data source not configured", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	summary, err := h.source.Inspect(ctx)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeDataSourceUnavailable, "Data source not ready", err)
		return
	}

	data := map[string]interface{}{
		"ready":  true,
		"driver": summary.Driver,
		"users":  summary.Users,
		"trips":  summary.Trips,
	}
	if state, ok := breakerState(h.source); ok {
		data["circuit_breaker"] = state
	}
	respondSuccess(w, r, data)
}

// breakerState reports the circuit breaker state when src is wrapped in one.
func breakerState(src datasource.Source) (string, bool) {
	b, ok := src.(*datasource.Breaker)
	if !ok {
		return "", false
	}
	return b.State().String(), true
}
