// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/wayfarer/internal/recommend"
)

// Error codes for API responses
const (
	ErrCodeInvalidUserID         = "INVALID_USER_ID"
	ErrCodeUserNotFound          = "USER_NOT_FOUND"
	ErrCodeDataSourceUnavailable = "DATASOURCE_UNAVAILABLE"
	ErrCodeNotFound              = "NOT_FOUND"
	ErrCodeMethodNotAllowed      = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests       = "TOO_MANY_REQUESTS"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// Recommendation outcomes recorded in wayfarer_recommendations_total.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeNotFound    = "not_found"
	outcomeUnavailable = "unavailable"
)

// errorMapping describes how an engine error is rendered.
type errorMapping struct {
	status  int
	code    string
	message string
	outcome string
}

// mapEngineError maps engine sentinels to HTTP responses. Anything not
// recognized is treated as an unavailable data source.
func mapEngineError(err error) errorMapping {
	switch {
	case errors.Is(err, recommend.ErrInvalidUserID):
		return errorMapping{http.StatusBadRequest, ErrCodeInvalidUserID, "Missing or invalid user id", outcomeInvalid}
	case errors.Is(err, recommend.ErrUserNotFound):
		return errorMapping{http.StatusNotFound, ErrCodeUserNotFound, "User ID not found", outcomeNotFound}
	default:
		return errorMapping{http.StatusServiceUnavailable, ErrCodeDataSourceUnavailable, "Data source unavailable, retry later", outcomeUnavailable}
	}
}
