// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package api provides the HTTP interface of the Wayfarer recommendation service.

Routing uses chi with go-chi/cors and go-chi/httprate. Handlers are methods
on Handler, which holds the recommendation engine, the data source and the
application configuration.

# Endpoints

	GET /                              service banner
	GET /recommend_cities              three-section recommendation (legacy path)
	GET /api/v1/recommendations        three-section recommendation
	GET /api/v1/debug/datasource       data source summary (api.debug_enabled only)
	GET /api/v1/health/live            liveness probe
	GET /api/v1/health/ready           readiness probe
	GET /metrics                       Prometheus exposition
	GET /swagger/*                     Swagger UI

The recommendation endpoints accept the user as user_id or id; user_id wins
when both are present. A successful response has the shape

	{"user":{"recommendations":{"similar_age_group":[...],"co_visitation":[...],"same_city":[...]}}}

where the three keys come from api.section_keys and keep that order.

# Errors

Every non-2xx response uses the envelope

	{"status":"error","data":null,"error":{"code":"USER_NOT_FOUND","message":"..."},"metadata":{"timestamp":"..."}}

with these codes:

	INVALID_USER_ID         400  missing or malformed identifier
	USER_NOT_FOUND          404  well-formed identifier, no such user
	DATASOURCE_UNAVAILABLE  503  the target user could not be looked up
	NOT_FOUND               404  unknown route
	METHOD_NOT_ALLOWED      405
	TOO_MANY_REQUESTS       429  rate limit exceeded

Failures while listing peers or trips never change the status code; the
engine degrades to curated fallback places and the handler counts the
failure in wayfarer_datasource_errors_total.
*/
package api
