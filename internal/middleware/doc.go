// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package middleware provides HTTP middleware components for the Wayfarer API.

Every middleware has the chi signature func(http.Handler) http.Handler and is
installed with r.Use in the api package.

Key Components:

  - RequestID: X-Request-ID propagation and generation for log correlation
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: one structured log line per request

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)         // Layer 1: request tracking
	r.Use(chimiddleware.RealIP)         // Layer 2: client address
	r.Use(middleware.AccessLog)         // Layer 3: access logging
	r.Use(chimiddleware.Recoverer)      // Layer 4: panic recovery
	r.Use(middleware.PrometheusMetrics) // Layer 5: metrics

Request IDs:

An upstream X-Request-ID is kept when it is short and printable; otherwise a
UUID v4 is generated. The id is echoed in the response header and stored in
the request context through the logging package, so logging.Ctx(ctx) tags
every line with request_id and correlation_id.

Metrics Labels:

PrometheusMetrics labels requests with the chi route pattern (for example
/api/v1/recommendations) instead of the raw path. Unmatched paths share the
"unmatched" label so arbitrary URLs cannot grow label cardinality.
*/
package middleware
