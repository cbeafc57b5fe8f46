// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, slow
request logging, and Prometheus metrics integration. These components work
alongside the authentication middleware to create a complete middleware
stack for HTTP request processing. Request ID tracking lives in the api
package, where it is tied into the Chi middleware chain.

Key Components:

  - Compression: Gzip compression for clients that accept it
  - Prometheus Metrics: HTTP request/response instrumentation
  - Slow Request Logging: Warn-level log lines for latency outliers

Middleware Stack:

Middleware here uses the func(http.HandlerFunc) http.HandlerFunc shape and
is bridged into Chi route groups by the api package:

	r.Route("/api/v1/playdates", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.Compression))
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Get("/", handler.ListPlaydates)
	})

Usage Example - Slow Request Logging:

	// Log any request slower than two seconds
	slow := middleware.SlowRequestLogging(2 * time.Second)
	http.HandleFunc("/api/v1/users/nearby", slow(handler))

Metric Label Cardinality:

PrometheusMetrics labels requests by the matched Chi route pattern
(/api/v1/playdates/{id}) rather than the raw URL path, so one metric
series exists per route instead of per resource ID.

Thread Safety:

All middleware components are thread-safe:
  - Compression uses pooled per-request gzip writers
  - Prometheus metrics use atomic operations

See Also:

  - internal/auth: Authentication middleware
  - internal/api: HTTP handlers and Chi route groups wrapped by middleware
  - internal/metrics: Prometheus metrics definitions
*/
package middleware
