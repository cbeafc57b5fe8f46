// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package config provides centralized configuration management for Sport Buddy.

This package handles loading, validation, and parsing of configuration for all
application components. It ensures consistent configuration across the backend
and provides sensible defaults for optional settings.

# Configuration Sources

Configuration is loaded via Koanf v2 with layered sources, later layers
overriding earlier ones:

  1. Built-in defaults (defaultConfig)
  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
  3. Environment variables (explicit mapping table)

# Configuration Structure

The package organizes configuration into logical groups:

  - ServerConfig: HTTP server settings (host, port, timeouts)
  - DatabaseConfig: SQLite store path
  - SecurityConfig: JWT signing and CORS settings
  - GeocodingConfig: Mapbox client settings (token, base URL, limits)
  - LoggingConfig: Log level and output format

# Environment Variables

HTTP Server (ServerConfig):
  - HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown deadline (default: 10s)

Database (DatabaseConfig):
  - DATABASE_PATH: SQLite file path (default: ./data/sportbuddy.db)

Security (SecurityConfig):
  - JWT_SECRET: HS256 signing secret, min 32 chars (required)
  - JWT_TIMEOUT: Token lifetime (default: 24h)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Geocoding (GeocodingConfig):
  - MAPBOX_ACCESS_TOKEN: Mapbox API token (required)
  - MAPBOX_BASE_URL: API base URL (default: https://api.mapbox.com)
  - GEOCODING_TIMEOUT: Per-request timeout (default: 10s)
  - MAPBOX_RATE_LIMIT: Requests/minute ceiling (default: 600)

Logging (LoggingConfig):
  - LOG_LEVEL: trace/debug/info/warn/error/fatal/panic (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller location (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	server := &http.Server{
	    Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
	    ReadTimeout:  cfg.Server.Timeout,
	    WriteTimeout: cfg.Server.Timeout,
	}

# Validation

Load() fails fast on invalid configuration: out-of-range port, missing or
short JWT secret, missing Mapbox token, malformed base URL, non-positive
timeouts, unknown log levels. Validation errors name the offending setting
but never echo secret values.

# Thread Safety

Config is immutable after Load() and safe for concurrent reads. There is no
hot-reload: configuration changes require a restart.
*/
package config
