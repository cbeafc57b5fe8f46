// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package api provides the HTTP REST API layer for Sport Buddy.

This package implements the JSON endpoints for user accounts, the sports
catalog, playdates and their participants, sport interests, forward
geocoding, and operational health. It is the interface between HTTP clients
and the storage/geocoding layers.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers for all API endpoints
  - Response formatting: Standardized JSON envelopes with metadata
  - Error handling: Stable machine-readable error codes per status
  - Authentication integration: JWT bearer tokens via middleware
  - Rate limiting: Per-IP limits tuned per route group
  - CORS: Cross-Origin Resource Sharing for browser clients

Route Groups:

 1. Public (/api/v1/):
    - Health check (health)
    - Registration (users, POST)
    - Authentication (auth/login)

 2. Protected (/api/v1/, bearer token required):
    - Users (list, profile, update, delete, nearby)
    - Sports catalog (sports)
    - Playdates and participants (playdates, playdates/{id}/participants)
    - Sport interests (sport-interests)
    - Forward geocoding (geocode)

 3. Operational:
    - Prometheus exposition (/metrics)

Response Format:

All endpoints return the standard envelope:

	{
	  "status": "success",
	  "data": { ... },
	  "metadata": {
	    "timestamp": "2026-08-01T12:00:00Z",
	    "query_time_ms": 4
	  }
	}

Errors carry a stable code alongside a human-readable message:

	{
	  "status": "error",
	  "error": {"code": "NOT_FOUND", "message": "Playdate not found"},
	  "metadata": {"timestamp": "2026-08-01T12:00:00Z"}
	}

Authorization:

Mutations on owned resources are restricted to their owner: users may only
update or delete their own account, and playdates may only be updated or
deleted by their creator. Ownership is checked against the JWT claims
stored in the request context by the authentication middleware.
*/
package api
