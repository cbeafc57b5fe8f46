// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

// Package main provides the Sport Buddy HTTP server
//
// Sport Buddy is a social backend for finding people to play sports with:
// user profiles with home locations, a sports catalog, sport interests,
// and capacity-limited playdates with address geocoding.
//
// @title Sport Buddy API
// @version 1.0
// @description Social sport matching backend for organizing playdates
// @description
// @description ## Features
// @description
// @description - **User Profiles**: Registration with optional home location for nearby-player search
// @description - **Sports Catalog**: Single, team, or mixed sports with per-user interests
// @description - **Playdates**: Scheduled games at a concrete address with an optional participant cap
// @description - **Geocoding**: Mapbox forward geocoding resolves addresses to coordinates
// @description
// @description ## Authentication
// @description
// @description Most endpoints require JWT authentication via Bearer header or HTTP-only cookie.
// @description Use `/api/v1/auth/login` to obtain a token. Registration and login are public.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-21T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/sportbuddy/sportbuddy/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token as "Bearer <token>". Obtain via /api/v1/auth/login; the same token is also set as an HTTP-only cookie.
//
// @tag.name Auth
// @tag.description Authentication and session management endpoints
//
// @tag.name Users
// @tag.description User registration, profile management, and nearby-player search
//
// @tag.name Sports
// @tag.description Sports catalog endpoints
//
// @tag.name Interests
// @tag.description Per-user sport interest endpoints
//
// @tag.name Playdates
// @tag.description Playdate creation, listing, update, and deletion
//
// @tag.name Participants
// @tag.description Playdate join, leave, and roster endpoints
//
// @tag.name Geocoding
// @tag.description Forward geocoding lookups via Mapbox
//
// @tag.name Operational
// @tag.description Health checks and Prometheus metrics
package main
