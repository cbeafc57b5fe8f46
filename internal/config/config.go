// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package config

import (
	"time"
)

// Config holds all application configuration loaded from environment variables and config files.
// Provides centralized configuration management for all application components: HTTP server,
// SQLite store, authentication, Mapbox geocoding, and logging.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Server.Port, cfg.Database.Path, etc. are now populated
//
// Validation:
// Load() validates all required fields and returns an error if:
//   - Required settings are missing (JWT_SECRET)
//   - Values are malformed (invalid URL format, port out of range)
//
// Secret values are never echoed in validation errors.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Geocoding GeocodingConfig `koanf:"geocoding"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HOST: Bind address (default: 0.0.0.0)
//   - HTTP_PORT: Listen port (default: 8080)
//   - SERVER_TIMEOUT: Read/write timeout for requests (default: 30s)
//   - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// DatabaseConfig holds SQLite store settings.
//
// Environment Variables:
//   - DATABASE_PATH: SQLite file path (default: ./data/sportbuddy.db).
//     Use ":memory:" for an ephemeral in-process database (tests).
type DatabaseConfig struct {
	Path string `koanf:"path"`
}

// SecurityConfig holds authentication and CORS settings.
//
// Environment Variables:
//   - JWT_SECRET: HS256 signing secret, 32+ characters (required)
//   - JWT_TIMEOUT: Token lifetime (default: 24h)
//   - CORS_ORIGINS: Comma-separated allowed origins (default: *)
//
// The JWT secret is required at startup; there is no unauthenticated mode.
type SecurityConfig struct {
	JWTSecret   string        `koanf:"jwt_secret"`
	JWTTimeout  time.Duration `koanf:"jwt_timeout"`
	CORSOrigins []string      `koanf:"cors_origins"`
}

// GeocodingConfig holds Mapbox forward-geocoding client settings.
//
// Environment Variables:
//   - MAPBOX_ACCESS_TOKEN: Mapbox API access token (empty disables geocoding)
//   - MAPBOX_BASE_URL: API base URL (default: https://api.mapbox.com),
//     overridable for test servers
//   - GEOCODING_TIMEOUT: Per-request HTTP timeout (default: 10s)
//   - MAPBOX_RATE_LIMIT: Client-side requests-per-minute ceiling
//     (default: 600, the Mapbox free-tier limit)
type GeocodingConfig struct {
	AccessToken   string        `koanf:"access_token"`
	BaseURL       string        `koanf:"base_url"`
	Timeout       time.Duration `koanf:"timeout"`
	RatePerMinute int           `koanf:"rate_per_minute"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error, fatal, disabled (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line in log entries (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from environment variables and optional config file.
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// This function uses Koanf v2 for flexible, layered configuration management.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
