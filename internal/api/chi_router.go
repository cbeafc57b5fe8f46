// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sportbuddy/sportbuddy/internal/auth"
	"github.com/sportbuddy/sportbuddy/internal/config"
	"github.com/sportbuddy/sportbuddy/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with all routes configured.
// CORS origins come from the security configuration.
func NewRouter(handler *Handler, authMiddleware *auth.Middleware, cfg *config.Config) *Router {
	var origins []string
	if cfg != nil {
		origins = cfg.Security.CORSOrigins
	}

	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: NewChiMiddlewareFromOrigins(origins),
	}
}

// chiMiddlewareAdapter converts an http.HandlerFunc middleware to a Chi-compatible
// http.Handler middleware.
func chiMiddlewareAdapter(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all routes on a Chi router and returns it as the
// server's top-level handler.
//
// Route groups and their per-IP rate limits:
//   - health: 1000/min, public
//   - login: 5/5min, public
//   - registration: 5/min, public
//   - protected reads: 100/min, bearer token required
//   - protected writes + geocode: 30/min, bearer token required
//   - /metrics: Prometheus exposition, public
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global middleware stack
	// ========================
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Unknown paths and wrong methods answer in the standard envelope.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Public endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/api/v1/health", router.handler.Health)
	})

	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).
			Post("/api/v1/auth/login", router.handler.Login)
		r.With(router.chiMiddleware.RateLimitAuth()).
			Post("/api/v1/users", router.handler.RegisterUser)
	})

	// Prometheus metrics exposition
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Protected API
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(chiMiddlewareAdapter(middleware.Compression))
		r.Use(chiMiddlewareAdapter(middleware.SlowRequestLogging(time.Second)))
		r.Use(chiMiddlewareAdapter(middleware.PrometheusMetrics))
		r.Use(chiMiddlewareAdapter(router.middleware.Authenticate))

		// Read endpoints
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitAPI())

			r.Get("/api/v1/users", router.handler.ListUsers)
			r.Get("/api/v1/users/nearby", router.handler.NearbyUsers)
			r.Get("/api/v1/users/{id}", router.handler.GetUser)

			r.Get("/api/v1/sports", router.handler.ListSports)
			r.Get("/api/v1/sports/{id}", router.handler.GetSport)

			r.Get("/api/v1/playdates", router.handler.ListPlaydates)
			r.Get("/api/v1/playdates/{id}", router.handler.GetPlaydate)
			r.Get("/api/v1/playdates/{id}/participants", router.handler.ListParticipants)

			r.Get("/api/v1/sport-interests", router.handler.ListSportInterests)
		})

		// Write endpoints, plus geocode (each call can consume Mapbox quota)
		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimitWrite())

			r.Put("/api/v1/users/{id}", router.handler.UpdateUser)
			r.Delete("/api/v1/users/{id}", router.handler.DeleteUser)

			r.Post("/api/v1/sports", router.handler.CreateSport)

			r.Post("/api/v1/playdates", router.handler.CreatePlaydate)
			r.Put("/api/v1/playdates/{id}", router.handler.UpdatePlaydate)
			r.Delete("/api/v1/playdates/{id}", router.handler.DeletePlaydate)
			r.Post("/api/v1/playdates/{id}/participants", router.handler.JoinPlaydate)
			r.Delete("/api/v1/playdates/{id}/participants", router.handler.LeavePlaydate)

			r.Post("/api/v1/sport-interests", router.handler.AddSportInterest)

			r.Get("/api/v1/geocode", router.handler.GeocodeAddress)
		})
	})

	return r
}
