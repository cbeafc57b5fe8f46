// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package config

import (
	"fmt"
)

// minJWTSecretLength is the minimum accepted signing secret length.
// Shorter secrets make HS256 tokens brute-forceable offline.
const minJWTSecretLength = 32

// Validate checks that required configuration is present and valid.
// Secret values (JWT secret, Mapbox token) are never included in errors.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateGeocoding(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server settings
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.Server.ShutdownTimeout)
	}
	return nil
}

// validateDatabase validates store settings
func (c *Config) validateDatabase() error {
	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH must not be empty")
	}
	return nil
}

// validateSecurity validates authentication settings.
// The service has no unauthenticated mode: a signing secret is always required.
func (c *Config) validateSecurity() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters", minJWTSecretLength)
	}
	if c.Security.JWTTimeout <= 0 {
		return fmt.Errorf("JWT_TIMEOUT must be positive, got %s", c.Security.JWTTimeout)
	}
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must not be empty (use * to allow all)")
	}
	return nil
}

// validateGeocoding validates Mapbox client settings. An empty access token
// is not an error: the service starts with geocoding disabled and endpoints
// that need address lookups answer 502.
func (c *Config) validateGeocoding() error {
	if err := validateHTTPURL(c.Geocoding.BaseURL, "MAPBOX_BASE_URL"); err != nil {
		return fmt.Errorf("MAPBOX_BASE_URL is invalid: %w", err)
	}
	if c.Geocoding.Timeout <= 0 {
		return fmt.Errorf("GEOCODING_TIMEOUT must be positive, got %s", c.Geocoding.Timeout)
	}
	if c.Geocoding.RatePerMinute < 1 {
		return fmt.Errorf("MAPBOX_RATE_LIMIT must be at least 1, got %d", c.Geocoding.RatePerMinute)
	}
	return nil
}

// validateLogging validates logging settings
func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, disabled; got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}

	return nil
}
