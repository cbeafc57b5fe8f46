// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

// Health handles health check requests
//
// @Summary Get system health status
// @Description Returns component health: database connectivity, geocoder circuit-breaker state, and uptime. Degraded when the database is unreachable or the breaker is open.
// @Tags Operational
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status retrieved"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	// Check database connectivity (nil means not connected)
	database := "unreachable"
	if h.db != nil && h.db.Ping(r.Context()) == nil {
		database = "connected"
	}

	// The geocoder is healthy unless its circuit breaker is open; half-open
	// means it is probing the provider again and requests may succeed.
	geocoder := "unconfigured"
	if h.geocoder != nil {
		geocoder = h.geocoder.StateName()
	}

	status := "healthy"
	if database != "connected" || geocoder == "open" {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:        status,
		Database:      database,
		Geocoder:      geocoder,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Version:       version,
	}

	respondSuccess(w, http.StatusOK, health, time.Time{})
}
