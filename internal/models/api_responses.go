// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses, with metadata
// for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Fields:
//   - Status: Response status ("success" or "error")
//   - Data: Response payload (any JSON-serializable type)
//   - Metadata: Query execution metadata (timing, timestamp)
//   - Error: Error details (populated only when Status is "error")
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"id": 7, "username": "annika"},
//	  "metadata": {
//	    "timestamp": "2026-08-01T12:00:00Z",
//	    "query_time_ms": 4
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "email must be a valid email address",
//	    "details": {"field": "email"}
//	  },
//	  "metadata": {"timestamp": "2026-08-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance tracking.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Database/provider execution time in milliseconds
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across all API endpoints for better client handling.
//
// Fields:
//   - Code: Machine-readable error code (e.g., "VALIDATION_ERROR", "NOT_FOUND")
//   - Message: Human-readable error message
//   - Details: Additional context (field names, constraints, etc.)
//
// Stable error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - UNAUTHORIZED: Missing or invalid credentials
//   - FORBIDDEN: Authenticated but not permitted (owner-only operations)
//   - NOT_FOUND: Resource doesn't exist
//   - ALREADY_EXISTS: Uniqueness constraint violated
//   - CAPACITY_REACHED: Playdate participant limit reached
//   - GEOCODING_FAILED: Address lookup provider failure
//   - METHOD_NOT_ALLOWED: HTTP method not supported on this path
//   - RATE_LIMITED: Too many requests
//   - INTERNAL_ERROR: Unexpected server-side failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// LoginRequest represents a login request for JWT authentication.
//
// Fields:
//   - Username: User's login name
//   - Password: User's password (plaintext, transmitted over HTTPS)
//
// Security:
//   - Password is hashed with bcrypt before storage, never logged
//   - Rate limited to 5 attempts per 5 minutes per IP
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response with JWT token.
//
// Fields:
//   - Token: Signed JWT token (HS256 algorithm)
//   - ExpiresAt: Token expiration timestamp
//   - Username: Authenticated username
//   - UserID: Unique user identifier
//
// Token usage:
//   - Sent as Authorization: Bearer <token> header (or `token` cookie)
//   - Validated on every protected endpoint
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
	UserID    int64     `json:"user_id"`
}

// HealthStatus reports component-level service health.
//
// Status is "healthy" when all components are operational and "degraded"
// when the database is unreachable or the geocoding circuit breaker is open.
type HealthStatus struct {
	Status        string  `json:"status"`
	Database      string  `json:"database"`
	Geocoder      string  `json:"geocoder"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version"`
}
