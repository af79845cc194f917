// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

/*
Package metrics provides Prometheus metrics for the recommendation service.

Metrics are registered with the default registry through promauto and exposed
at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - wayfarer_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status
  - wayfarer_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - wayfarer_api_active_requests: In-flight requests (gauge)

Recommendation Metrics:
  - wayfarer_recommendations_total: Completed requests by outcome (counter)
    Labels: outcome (ok, invalid, not_found, unavailable)
  - wayfarer_recommendation_fallback_total: Curated fallbacks applied (counter)
    Labels: mode (none, full, partial)
  - wayfarer_recommendation_section_size: Places returned per section (histogram)
    Labels: section
  - wayfarer_recommendation_duration_seconds: Engine time per request (histogram)

Data Source Metrics:
  - wayfarer_datasource_errors_total: Failed data source calls (counter)
    Labels: operation
  - wayfarer_datasource_refresh_total: Snapshot reloads (counter)
    Labels: result (success, failure)
  - wayfarer_datasource_records: Records in the current snapshot (gauge)
    Labels: kind (users, trips)
  - wayfarer_circuit_breaker_state: Breaker state (gauge, 0=closed 1=half-open 2=open)
    Labels: name
  - wayfarer_circuit_breaker_transitions_total: Breaker state changes (counter)
    Labels: name, from_state, to_state

# Usage

	metrics.RecordAPIRequest("GET", "/recommend_cities", "200", time.Since(start))
	metrics.RecordRecommendation("ok", "partial", sizes, elapsed)
*/
package metrics
