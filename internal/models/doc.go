// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package models defines data structures for the Sport Buddy application.

This package contains all data models used throughout the application:
database entities, the API response envelope, and request/response shapes
shared between the HTTP layer and the store. It serves as the single source
of truth for data structure definitions.

Key Components:

  - User / UserSummary: Registered accounts with optional home locations
  - Sport / SportInterest: Activity catalog and declared preferences
  - Playdate / Participant: Scheduled meetups and their joined users
  - PlaydateTime: DD-MM-YYYY HH:MM:SS wire format for playdate dates
  - APIResponse / APIError / Metadata: Standardized response envelope
  - LoginRequest / LoginResponse: JWT authentication payloads
  - GeocodeResult: Forward-geocoding lookup result
  - HealthStatus: Component-level health report

Usage Example - API Response:

	import "github.com/sportbuddy/sportbuddy/internal/models"

	// Success response
	response := models.APIResponse{
	    Status: "success",
	    Data:   user,
	    Metadata: models.Metadata{
	        Timestamp:   time.Now(),
	        QueryTimeMS: 4,
	    },
	}

	// Error response
	errorResponse := models.APIResponse{
	    Status: "error",
	    Error: &models.APIError{
	        Code:    "NOT_FOUND",
	        Message: "User not found",
	    },
	}

Conventions:

  - IDs are int64 (SQLite INTEGER PRIMARY KEY AUTOINCREMENT)
  - Timestamps are time.Time in Go, rendered RFC 3339 in JSON, except
    playdate dates which use PlaydateTimeLayout
  - Optional columns (home location, participant limit) map to pointers
    so JSON null round-trips losslessly
  - Password hashes never serialize (json:"-")

Thread Safety:

All models are plain data structures, safe for concurrent read access.

See Also:

  - internal/database: Store operations using these models
  - internal/api: HTTP handlers returning these models
  - internal/geocode: Mapbox client producing GeocodeResult coordinates
*/
package models
