// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator with the custom
// validators the API needs and translates failures into short,
// human-readable messages.
//
// # Quick Start
//
//	type RecommendationRequest struct {
//	    UserID string `query:"user_id" validate:"required,max=64,userid"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	    return
//	}
//
// # Custom Validators
//
//   - userid: letters, digits, underscore and hyphen only. Covers numeric
//     tabular ids, 24-hex document ids and slug-style relational ids.
//
// # Field Names
//
// Error messages use the query or json tag name when one is present, so a
// failure on UserID reads "user_id is required".
//
// # Thread Safety
//
// GetValidator initializes the validator once with sync.Once; the returned
// instance caches struct metadata and is safe for concurrent use.
package validation
