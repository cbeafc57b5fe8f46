// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package middleware

import (
	"net/http"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/logging"
)

// DefaultSlowRequestThreshold is used when SlowRequestLogging is given
// a non-positive threshold.
const DefaultSlowRequestThreshold = time.Second

// SlowRequestLogging returns middleware that logs a warning for any
// request that takes longer than threshold to complete.
func SlowRequestLogging(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if threshold <= 0 {
		threshold = DefaultSlowRequestThreshold
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap ResponseWriter to capture status code
			wrapper := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next(wrapper, r)

			duration := time.Since(start)
			if duration > threshold {
				logging.Warn().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", wrapper.statusCode).
					Dur("duration", duration).
					Dur("threshold", threshold).
					Msg("Slow request detected")
			}
		}
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
