// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// DataSourceDebug is the payload of the debug endpoint.
type DataSourceDebug struct {
	Driver         string                   `json:"driver"`
	UsersCount     int                      `json:"users_count"`
	TripsCount     int                      `json:"trips_count"`
	UserKeys       []string                 `json:"user_keys"`
	TripKeys       []string                 `json:"trip_keys"`
	ResolvedFields recommend.ResolvedFields `json:"resolved_trip_fields"`
	RecencyPolicy  string                   `json:"recency_policy"`
	CircuitBreaker string                   `json:"circuit_breaker,omitempty"`
	SampleUser     *DebugUser               `json:"sample_user,omitempty"`
}

// DebugUser shows how one user profile was read.
type DebugUser struct {
	ID              string   `json:"id"`
	Age             *int     `json:"age"`
	City            string   `json:"city"`
	Places          []string `json:"places"`
	MostRecentPlace string   `json:"most_recent_place"`
}

// DebugDataSource reports record counts, record keys and the trip fields the
// engine would resolve from a sample. With user_id (or id) it also shows
// how that user's profile was read.
//
// @Summary Inspect the data source
// @Tags Debug
// @Produce json
// @Param user_id query string false "Optional user to inspect"
// @Success 200 {object} APIResponse{data=DataSourceDebug}
// @Failure 404 {object} APIResponse "User not found"
// @Failure 503 {object} APIResponse "Data source unavailable"
// @Router /api/v1/debug/datasource [get]
func (h *Handler) DebugDataSource(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := h.requestContext(r)
	defer cancel()

	summary, err := h.source.Inspect(ctx)
	if err != nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeDataSourceUnavailable, "Data source unavailable", err)
		return
	}

	engineCfg := h.engine.Config()
	debug := DataSourceDebug{
		Driver:         summary.Driver,
		UsersCount:     summary.Users,
		TripsCount:     summary.Trips,
		UserKeys:       nonNil(summary.UserKeys),
		TripKeys:       nonNil(summary.TripKeys),
		ResolvedFields: engineCfg.Fields.Resolve(summary.SampleTrips),
		RecencyPolicy:  string(engineCfg.RecencyPolicy),
	}
	if state, ok := breakerState(h.source); ok {
		debug.CircuitBreaker = state
	}

	if req := parseRecommendationRequest(r); req.UserID != "" {
		if verr := validation.ValidateStruct(&req); verr != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUserID, verr.Error(), nil)
			return
		}
		user, err := h.source.GetUserByID(ctx, recommend.NormalizeID(req.UserID))
		if err != nil {
			m := mapEngineError(err)
			respondError(w, r, m.status, m.code, m.message, nil)
			return
		}
		debug.SampleUser = &DebugUser{
			ID:              user.ID,
			Age:             user.Age,
			City:            user.City,
			Places:          nonNil(user.PlaceList()),
			MostRecentPlace: user.MostRecentPlace(),
		}
	}

	respondJSON(w, http.StatusOK, &APIResponse{
		Status: "success",
		Data:   debug,
		Metadata: Metadata{
			Timestamp:   time.Now().UTC(),
			RequestID:   newMetadata(r).RequestID,
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
