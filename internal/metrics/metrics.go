// Wayfarer - Travel Destination Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wayfarer"

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "api_active_requests",
			Help:      "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendation_fallback_total",
			Help:      "Total number of recommendations by curated fallback mode",
		},
		[]string{"mode"},
	)

	RecommendationSectionSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_section_size",
			Help:      "Number of places returned per section",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 6, 7, 10},
		},
		[]string{"section"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recommendation_duration_seconds",
			Help:      "Time spent computing one recommendation",
			Buckets:   prometheus.DefBuckets,
		},
	)

	// Data Source Metrics
	DataSourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datasource_errors_total",
			Help:      "Total number of failed data source calls",
		},
		[]string{"operation"},
	)

	DataSourceRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "datasource_refresh_total",
			Help:      "Total number of snapshot reloads",
		},
		[]string{"result"},
	)

	DataSourceRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "datasource_records",
			Help:      "Number of records in the current data source snapshot",
		},
		[]string{"kind"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state_transitions_total",
			Help:      "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one completed recommendation. sections maps
// section name to the number of places returned; it is nil for failed requests.
func RecordRecommendation(outcome, fallback string, sections map[string]int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if sections == nil {
		return
	}
	RecommendationFallbacks.WithLabelValues(fallback).Inc()
	for section, n := range sections {
		RecommendationSectionSize.WithLabelValues(section).Observe(float64(n))
	}
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordDataSourceError counts a failed data source call.
func RecordDataSourceError(operation string) {
	DataSourceErrors.WithLabelValues(operation).Inc()
}

// RecordRefresh records a snapshot reload and, on success, the new record counts.
func RecordRefresh(users, trips int, err error) {
	if err != nil {
		DataSourceRefreshes.WithLabelValues("failure").Inc()
		return
	}
	DataSourceRefreshes.WithLabelValues("success").Inc()
	DataSourceRecords.WithLabelValues("users").Set(float64(users))
	DataSourceRecords.WithLabelValues("trips").Set(float64(trips))
}

// RecordBreakerTransition records a circuit breaker state change. States are
// encoded as 0=closed, 1=half-open, 2=open.
func RecordBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}
