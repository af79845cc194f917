// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/wayfarer/internal/logging"
	"github.com/tomtom215/wayfarer/internal/metrics"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/validation"
)

// RecommendationRequest is the validated query of the recommendation endpoints.
type RecommendationRequest struct {
	UserID string `query:"user_id" validate:"required,max=64,userid"`
}

// parseRecommendationRequest reads user_id, falling back to id.
func parseRecommendationRequest(r *http.Request) RecommendationRequest {
	q := r.URL.Query()
	id := strings.TrimSpace(q.Get("user_id"))
	if id == "" {
		id = strings.TrimSpace(q.Get("id"))
	}
	return RecommendationRequest{UserID: id}
}

// Recommend handles GET /api/v1/recommendations and GET /recommend_cities.
//
// @Summary Recommend destinations
// @Description Returns up to three disjoint lists of places: picked by peers of a similar age, by peers sharing a visited place, and by peers from the same city. Places the user already visited never appear. Curated places fill in when the data yields too few.
// @Tags Recommendations
// @Produce json
// @Param user_id query string false "User id (numeric or 24-hex document id)"
// @Param id query string false "User id, used when user_id is absent"
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} APIResponse "Missing or malformed user id"
// @Failure 404 {object} APIResponse "User not found"
// @Failure 503 {object} APIResponse "Data source unavailable"
// @Router /api/v1/recommendations [get]
// @Router /recommend_cities [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := parseRecommendationRequest(r)
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordRecommendation(outcomeInvalid, "", nil, time.Since(start))
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUserID, verr.Error(), nil)
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	res, err := h.engine.Recommend(ctx, req.UserID)
	if err != nil {
		m := mapEngineError(err)
		if m.outcome == outcomeUnavailable {
			metrics.RecordDataSourceError("get_user")
		}
		metrics.RecordRecommendation(m.outcome, "", nil, time.Since(start))
		var logErr error
		if m.status >= http.StatusInternalServerError {
			logErr = err
		}
		respondError(w, r, m.status, m.code, m.message, logErr)
		return
	}

	for _, op := range res.Stats.Degraded {
		metrics.RecordDataSourceError(op)
	}
	sizes := make(map[string]int, len(recommend.Sections))
	for _, s := range recommend.Sections {
		sizes[string(s)] = len(res.Section(s))
	}
	metrics.RecordRecommendation(outcomeOK, string(res.Stats.Fallback), sizes, time.Since(start))

	logging.Ctx(r.Context()).Info().
		Str("user_id", res.UserID).
		Int("total", res.Total()).
		Str("fallback", string(res.Stats.Fallback)).
		Int("degraded", len(res.Stats.Degraded)).
		Msg("recommendation served")

	body, err := h.encodeRecommendation(res)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to encode response", err)
		return
	}
	writeJSONBytes(w, http.StatusOK, body)
}

// RecommendationResponse documents the success body with the default keys.
type RecommendationResponse struct {
	User struct {
		Recommendations struct {
			SimilarAgeGroup []string `json:"similar_age_group"`
			CoVisitation    []string `json:"co_visitation"`
			SameCity        []string `json:"same_city"`
		} `json:"recommendations"`
	} `json:"user"`
}

// encodeRecommendation renders
// {"user":{"recommendations":{k1:[...],k2:[...],k3:[...]}}} with the
// configured keys in section order. Maps would sort the keys.
func (h *Handler) encodeRecommendation(res *recommend.Result) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"user":{"recommendations":{`)
	for i, s := range recommend.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(h.keys[i])
		if err != nil {
			return nil, err
		}
		places := res.Section(s)
		if places == nil {
			places = []string{}
		}
		value, err := json.Marshal(places)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteString(`}}}`)
	return buf.Bytes(), nil
}
