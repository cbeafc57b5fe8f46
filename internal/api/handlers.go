// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"runtime"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/auth"
	"github.com/sportbuddy/sportbuddy/internal/config"
	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/geocode"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
)

// version is reported by the health endpoint and the app_info metric.
const version = "1.0.0"

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_auth.go: Login endpoint
//   - handlers_users.go: User registration, profiles, nearby lookup
//   - handlers_sports.go: Sports catalog endpoints
//   - handlers_playdates.go: Playdate CRUD endpoints
//   - handlers_participants.go: Playdate join/leave/roster endpoints
//   - handlers_interests.go: Sport interest endpoints
//   - handlers_geocode.go: Forward geocoding endpoint
//   - handlers_health.go: Health endpoint
type Handler struct {
	db         *database.DB
	geocoder   *geocode.Geocoder
	config     *config.Config
	jwtManager *auth.JWTManager
	startTime  time.Time
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - db: SQLite store for all persistent data
//   - geocoder: circuit-breaker wrapped Mapbox client for address lookups
//   - cfg: application configuration
//   - jwtManager: JWT token manager for login and ownership checks
//
// Example:
//
//	handler := api.NewHandler(db, geocoder, cfg, jwtManager)
//	router := api.NewRouter(handler, auth.NewMiddleware(jwtManager), cfg)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(db *database.DB, geocoder *geocode.Geocoder, cfg *config.Config, jwtManager *auth.JWTManager) *Handler {
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	return &Handler{
		db:         db,
		geocoder:   geocoder,
		config:     cfg,
		jwtManager: jwtManager,
		startTime:  time.Now(),
	}
}
