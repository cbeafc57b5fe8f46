// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package implements application instrumentation using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Database query performance
  - Mapbox geocoding calls and retries
  - Circuit breaker state transitions
  - Authentication outcomes
  - Domain activity (registrations, playdates, joins)

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
    Buckets: .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Database Metrics:
  - sqlite_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - sqlite_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type
  - sqlite_connections_in_use: Connections in use (gauge)

Geocoding Metrics:
  - geocoding_requests_total: Mapbox lookups by outcome (counter)
    Labels: result (success, no_results, rate_limited, rejected, error)
  - geocoding_request_duration_seconds: Lookup latency (histogram)
  - geocoding_retries_total: Retried lookups (counter)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

Authentication Metrics:
  - auth_attempts_total: Login attempts by outcome (counter)
    Labels: result (success, failure)
  - auth_tokens_issued_total: JWT tokens issued (counter)

Domain Metrics:
  - users_registered_total: Users registered (counter)
  - playdates_created_total: Playdates created (counter)
  - playdate_joins_total: Join attempts by outcome (counter)
    Labels: result (joined, full, duplicate)

System Metrics:
  - app_info: Version and build info (gauge)
    Labels: version, go_version
  - app_uptime_seconds: Uptime (gauge)

# Usage Example

Basic setup in main.go:

	import (
	    "github.com/sportbuddy/sportbuddy/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	func main() {
	    // Register metrics endpoint
	    http.Handle("/metrics", promhttp.Handler())

	    // Record metrics
	    metrics.RecordAPIRequest("GET", "/api/v1/sports", "200", 23*time.Millisecond)
	    metrics.RecordDBQuery("SELECT", "users", 5*time.Millisecond, nil)
	    metrics.RecordGeocodingRequest(120*time.Millisecond, "success")
	}

Recording HTTP metrics is handled by middleware; handlers do not
instrument themselves. Database and geocoding calls record their own
timings at the call site.

# Cardinality

Label values are drawn from small fixed sets (route patterns, not raw
URLs; classified results, not raw error strings truncated past 50
chars). Avoid introducing labels derived from user input.

# See Also

  - internal/middleware: HTTP instrumentation middleware
  - internal/database: Query timing call sites
  - internal/geocode: Geocoding and circuit breaker call sites
*/
package metrics
