// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"testing"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

func TestHealth_Healthy(t *testing.T) {
	t.Parallel()
	server, _ := newGeocodeStub(t, http.StatusOK, mapboxFeatureJSON)
	env := newTestEnvWithGeocoder(t, newTestGeocoder(server.URL))

	// Health is public: no token.
	w := doRequest(t, env, http.MethodGet, "/api/v1/health", "", nil)
	response := assertSuccessResponse(t, w, http.StatusOK, "health")

	var health models.HealthStatus
	decodeData(t, response, &health, "health")
	if health.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", health.Status)
	}
	if health.Database != "connected" {
		t.Errorf("Expected connected database, got %s", health.Database)
	}
	if health.Geocoder != "closed" {
		t.Errorf("Expected closed circuit breaker, got %s", health.Geocoder)
	}
	if health.Version != "1.0.0" {
		t.Errorf("Unexpected version %s", health.Version)
	}
	if health.UptimeSeconds < 0 {
		t.Errorf("Negative uptime %f", health.UptimeSeconds)
	}
}

func TestHealth_GeocoderUnconfigured(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	w := doRequest(t, env, http.MethodGet, "/api/v1/health", "", nil)
	response := assertSuccessResponse(t, w, http.StatusOK, "health")

	var health models.HealthStatus
	decodeData(t, response, &health, "health")

	// A missing geocoder is reported but does not degrade the service.
	if health.Geocoder != "unconfigured" {
		t.Errorf("Expected unconfigured geocoder, got %s", health.Geocoder)
	}
	if health.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", health.Status)
	}
}

func TestHealth_DegradedDatabase(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	if err := env.db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	w := doRequest(t, env, http.MethodGet, "/api/v1/health", "", nil)
	response := assertSuccessResponse(t, w, http.StatusOK, "health")

	var health models.HealthStatus
	decodeData(t, response, &health, "health")
	if health.Status != "degraded" {
		t.Errorf("Expected degraded, got %s", health.Status)
	}
	if health.Database != "unreachable" {
		t.Errorf("Expected unreachable database, got %s", health.Database)
	}
}
