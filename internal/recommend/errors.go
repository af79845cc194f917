// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package recommend

import "errors"

var (
	// ErrInvalidUserID is returned when the identifier is missing or malformed.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrUserNotFound is returned when a well-formed identifier matches no user.
	// Data sources return it from GetUserByID.
	ErrUserNotFound = errors.New("user not found")

	// ErrSourceUnavailable is returned when the target user could not be looked up at all.
	ErrSourceUnavailable = errors.New("data source unavailable")
)
