// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

// Package main is the entry point for the Sport Buddy server application.
//
// Sport Buddy is a social backend for finding people to play sports with.
// Users register with an optional home location, declare the sports they
// are interested in, and create or join playdates: scheduled games at a
// concrete address with an optional participant cap.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog with JSON/console output modes
//  3. Database: SQLite (modernc.org/sqlite, pure Go) with embedded migrations
//  4. Geocoder: Mapbox forward geocoding behind a circuit breaker (optional)
//  5. Authentication: JWT manager with bcrypt password verification
//  6. Supervisor Tree: Suture v4 process supervision
//  7. HTTP Server: Chi router with CORS, rate limiting, and Prometheus metrics
//
// Once initialized, the HTTP server and the uptime metrics reporter run as
// supervised services:
//
//	RootSupervisor ("sportbuddy")
//	├── APISupervisor ("api-layer")
//	│   └── HTTP Server (REST API)
//	└── OpsSupervisor ("ops-layer")
//	    └── Uptime metrics reporter
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (see .env.example)
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Core environment variables:
//
//	# Server
//	HOST=0.0.0.0                 # Listen address
//	HTTP_PORT=8080               # HTTP server port
//	LOG_LEVEL=info               # trace, debug, info, warn, error
//	LOG_FORMAT=json              # json or console
//
//	# Authentication
//	JWT_SECRET=<32+ chars>       # Required, minimum 32 characters
//	JWT_TIMEOUT=24h              # Token lifetime
//
//	# Storage
//	DATABASE_PATH=./data/sportbuddy.db
//
//	# Geocoding (optional)
//	MAPBOX_ACCESS_TOKEN=pk.xxx   # Empty disables address lookups
//
// # Usage
//
// Local development:
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export MAPBOX_ACCESS_TOKEN=pk.your-mapbox-token
//	./sportbuddy
//
// # Graceful Shutdown
//
// SIGINT and SIGTERM cancel the root context. The supervisor tree then stops
// every service; the HTTP server drains in-flight requests for up to
// SHUTDOWN_TIMEOUT before the process exits.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/api"
	"github.com/sportbuddy/sportbuddy/internal/auth"
	"github.com/sportbuddy/sportbuddy/internal/config"
	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/geocode"
	"github.com/sportbuddy/sportbuddy/internal/logging"
	"github.com/sportbuddy/sportbuddy/internal/supervisor"
	"github.com/sportbuddy/sportbuddy/internal/supervisor/services"
)

func main() {
	startTime := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Msg("Starting Sport Buddy with supervisor tree")
	logging.Info().
		Str("db_path", cfg.Database.Path).
		Bool("geocoding_enabled", cfg.Geocoding.AccessToken != "").
		Msg("Configuration loaded")

	// Initialize database (runs embedded migrations)
	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	// Initialize Mapbox geocoder with circuit breaker for fault tolerance.
	// Geocoding is optional: without a token the handler reports the
	// geocoder as unconfigured and address lookups fail with 502.
	var geocoder *geocode.Geocoder
	if cfg.Geocoding.AccessToken != "" {
		geocoder = geocode.NewGeocoder(&cfg.Geocoding)
		logging.Info().
			Str("base_url", cfg.Geocoding.BaseURL).
			Int("rate_per_minute", cfg.Geocoding.RatePerMinute).
			Msg("Mapbox geocoding enabled")
	} else {
		logging.Warn().Msg("Geocoding disabled - set MAPBOX_ACCESS_TOKEN to enable address lookups")
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create structured logger for supervisor using our slog adapter
	// This bridges zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	// Create supervisor tree
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	logging.Info().Msg("JWT authentication enabled")

	middleware := auth.NewMiddleware(jwtManager)
	handler := api.NewHandler(db, geocoder, cfg, jwtManager)
	router := api.NewRouter(handler, middleware, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// === ADD SERVICES TO SUPERVISOR TREE ===

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	tree.AddOpsService(services.NewUptimeService(startTime, 15*time.Second))

	// === START SUPERVISOR TREE ===

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
