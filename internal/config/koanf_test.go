// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testJWTSecret satisfies the 32-character minimum.
const testJWTSecret = "unit-test-signing-secret-0123456789abcdef"

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Server defaults
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("Server.Timeout = %v, want 30s", cfg.Server.Timeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}

	// Database defaults
	if cfg.Database.Path != "./data/sportbuddy.db" {
		t.Errorf("Database.Path = %q, want ./data/sportbuddy.db", cfg.Database.Path)
	}

	// Security defaults (secret empty - required field)
	if cfg.Security.JWTSecret != "" {
		t.Errorf("Security.JWTSecret should be empty by default, got %q", cfg.Security.JWTSecret)
	}
	if cfg.Security.JWTTimeout != 24*time.Hour {
		t.Errorf("Security.JWTTimeout = %v, want 24h", cfg.Security.JWTTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}

	// Geocoding defaults (token empty - required field)
	if cfg.Geocoding.AccessToken != "" {
		t.Errorf("Geocoding.AccessToken should be empty by default, got %q", cfg.Geocoding.AccessToken)
	}
	if cfg.Geocoding.BaseURL != "https://api.mapbox.com" {
		t.Errorf("Geocoding.BaseURL = %q, want https://api.mapbox.com", cfg.Geocoding.BaseURL)
	}
	if cfg.Geocoding.Timeout != 10*time.Second {
		t.Errorf("Geocoding.Timeout = %v, want 10s", cfg.Geocoding.Timeout)
	}
	if cfg.Geocoding.RatePerMinute != 600 {
		t.Errorf("Geocoding.RatePerMinute = %d, want 600", cfg.Geocoding.RatePerMinute)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Server
		{"HOST", "server.host"},
		{"HTTP_HOST", "server.host"},
		{"HTTP_PORT", "server.port"},
		{"SERVER_TIMEOUT", "server.timeout"},
		{"SHUTDOWN_TIMEOUT", "server.shutdown_timeout"},

		// Database
		{"DATABASE_PATH", "database.path"},

		// Security
		{"JWT_SECRET", "security.jwt_secret"},
		{"JWT_TIMEOUT", "security.jwt_timeout"},
		{"CORS_ORIGINS", "security.cors_origins"},

		// Geocoding
		{"MAPBOX_ACCESS_TOKEN", "geocoding.access_token"},
		{"MAPBOX_BASE_URL", "geocoding.base_url"},
		{"GEOCODING_TIMEOUT", "geocoding.timeout"},
		{"MAPBOX_RATE_LIMIT", "geocoding.rate_per_minute"},

		// Logging
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},
		{"LOG_CALLER", "logging.caller"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	}()

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}

	t.Run("no config file exists", func(t *testing.T) {
		os.Unsetenv(ConfigPathEnvVar)
		result := findConfigFile()
		if result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		defer os.Remove(configPath)

		result := findConfigFile()
		if result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH overrides defaults", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom.yaml")
		if err := os.WriteFile(customPath, []byte("server:\n  port: 9191\n"), 0o600); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		result := findConfigFile()
		if result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})
}

// TestLoadWithKoanfEnvOverrides verifies ENV > defaults precedence
func TestLoadWithKoanfEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test-token")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("SERVER_TIMEOUT", "45s")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 45*time.Second {
		t.Errorf("Server.Timeout = %v, want 45s", cfg.Server.Timeout)
	}
	if cfg.Database.Path != ":memory:" {
		t.Errorf("Database.Path = %q, want :memory:", cfg.Database.Path)
	}
	if cfg.Security.JWTSecret != testJWTSecret {
		t.Error("Security.JWTSecret not taken from environment")
	}
	if cfg.Geocoding.AccessToken != "pk.test-token" {
		t.Error("Geocoding.AccessToken not taken from environment")
	}
	// Host untouched by env: default survives
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}

	want := []string{"https://app.example.com", "https://admin.example.com"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}
}

// TestLoadWithKoanfConfigFile verifies file layer between defaults and env
func TestLoadWithKoanfConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 3000
  host: 127.0.0.1
security:
  jwt_secret: file-configured-secret-0123456789abcdef
geocoding:
  access_token: pk.from-file
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	// Env layer still beats the file for the port
	t.Setenv("HTTP_PORT", "3001")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() failed: %v", err)
	}

	if cfg.Server.Port != 3001 {
		t.Errorf("Server.Port = %d, want env override 3001", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want file value 127.0.0.1", cfg.Server.Host)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Geocoding.AccessToken != "pk.from-file" {
		t.Error("Geocoding.AccessToken not taken from file")
	}
}

// TestLoadWithKoanfMissingRequired verifies required settings fail the load
func TestLoadWithKoanfMissingRequired(t *testing.T) {
	t.Run("missing JWT secret", func(t *testing.T) {
		t.Setenv("MAPBOX_ACCESS_TOKEN", "pk.test-token")
		t.Setenv("JWT_SECRET", "")

		if _, err := LoadWithKoanf(); err == nil {
			t.Error("LoadWithKoanf() succeeded without JWT_SECRET")
		}
	})

}

// An unset Mapbox token is not a load failure: the server starts with
// geocoding disabled.
func TestLoadWithKoanfEmptyMapboxToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("MAPBOX_ACCESS_TOKEN", "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() failed: %v", err)
	}
	if cfg.Geocoding.AccessToken != "" {
		t.Errorf("Geocoding.AccessToken = %q, want empty", cfg.Geocoding.AccessToken)
	}
}
