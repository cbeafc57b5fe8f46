// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package geocode

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sportbuddy/sportbuddy/internal/config"
	"github.com/sportbuddy/sportbuddy/internal/logging"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

// Geocoder wraps Client with the circuit breaker pattern so a Mapbox outage
// fails fast instead of holding request handlers on timeouts.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. The timing determines when to
// recover from failures, not data integrity; tests exercise the wrapped
// client directly or drive the breaker with a local test server.
type Geocoder struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[*models.GeocodeResult]
	name   string
}

// NewGeocoder creates a Mapbox forward geocoder with circuit breaker
// protection. Breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
//   - ErrNoResults counts as success: an empty match list is a provider
//     answer, not a provider failure
func NewGeocoder(cfg *config.GeocodingConfig) *Geocoder {
	client := NewClient(cfg)
	cbName := "mapbox-geocoding"

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[*models.GeocodeResult](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// An address nobody can geocode must not poison the breaker.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoResults)
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &Geocoder{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// Forward resolves an address with circuit breaker protection.
func (g *Geocoder) Forward(ctx context.Context, address string) (*models.GeocodeResult, error) {
	result, err := g.cb.Execute(func() (*models.GeocodeResult, error) {
		return g.client.Forward(ctx, address)
	})
	if err != nil {
		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CircuitBreakerRequests.WithLabelValues(g.name, "rejected").Inc()
			metrics.GeocodingRequestsTotal.WithLabelValues("rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("geocoding unavailable: %w", err)
		case errors.Is(err, ErrNoResults):
			// Counted as success by the breaker; still an error for callers.
			metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
			return nil, err
		default:
			metrics.CircuitBreakerRequests.WithLabelValues(g.name, "failure").Inc()
			return nil, err
		}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(g.name, "success").Inc()
	return result, nil
}

// StateName reports the breaker state as "closed", "half-open" or "open"
// for health reporting.
func (g *Geocoder) StateName() string {
	return stateToString(g.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
