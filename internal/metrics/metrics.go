// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Database query performance (SQLite)
// - API endpoint latency and throughput
// - Mapbox geocoding calls and circuit breaker state
// - Authentication outcomes
// - Domain activity (registrations, playdates, joins)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sqlite_query_duration_seconds",
			Help:    "Duration of SQLite queries in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sqlite_query_errors_total",
			Help: "Total number of SQLite query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	DBConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sqlite_connections_in_use",
			Help: "Current number of database connections in use",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Geocoding Metrics
	GeocodingRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocoding_requests_total",
			Help: "Total number of Mapbox geocoding requests",
		},
		[]string{"result"}, // "success", "no_results", "rate_limited", "rejected", "error"
	)

	GeocodingRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geocoding_request_duration_seconds",
			Help:    "Duration of Mapbox geocoding API calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	GeocodingRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "geocoding_retries_total",
			Help: "Total number of geocoding request retries",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Authentication Metrics
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"}, // "success", "failure"
	)

	AuthTokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_tokens_issued_total",
			Help: "Total number of JWT tokens issued",
		},
	)

	// Domain Activity Metrics
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total number of users registered",
		},
	)

	PlaydatesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "playdates_created_total",
			Help: "Total number of playdates created",
		},
	)

	PlaydateJoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "playdate_joins_total",
			Help: "Total number of playdate join attempts",
		},
		[]string{"result"}, // "joined", "full", "duplicate"
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		errorType := err.Error()
		// Truncate long error messages
		if len(errorType) > 50 {
			errorType = errorType[:50]
		}
		DBQueryErrors.WithLabelValues(operation, table, errorType).Inc()
	}
}

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

// RecordGeocodingRequest records a geocoding call and its classified outcome.
// Valid results: "success", "no_results", "rate_limited", "rejected", "error".
func RecordGeocodingRequest(duration time.Duration, result string) {
	GeocodingRequestDuration.Observe(duration.Seconds())
	GeocodingRequestsTotal.WithLabelValues(result).Inc()
}

// RecordAuthAttempt records a login attempt outcome
func RecordAuthAttempt(success bool) {
	if success {
		AuthAttemptsTotal.WithLabelValues("success").Inc()
		AuthTokensIssued.Inc()
	} else {
		AuthAttemptsTotal.WithLabelValues("failure").Inc()
	}
}

// RecordPlaydateJoin records a join attempt outcome.
// Valid results: "joined", "full", "duplicate".
func RecordPlaydateJoin(result string) {
	PlaydateJoins.WithLabelValues(result).Inc()
}
