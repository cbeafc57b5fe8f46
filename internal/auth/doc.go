// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

// Package auth provides JWT authentication and password hashing.
//
// Components:
//
//   - JWTManager: Creates and validates HS256-signed tokens carrying the
//     user ID and username. Tokens are stateless; lifetime comes from
//     JWT_TIMEOUT (default 24h).
//   - Middleware.Authenticate: Enforces authentication on protected routes.
//     Reads "Authorization: Bearer <token>" with a fallback to the "token"
//     cookie, and stores *Claims in the request context.
//   - HashPassword / CheckPassword: bcrypt helpers for credential storage.
//     CheckPassword returns ErrInvalidCredentials on mismatch so login
//     responses never distinguish a wrong password from an unknown user.
//
// Usage:
//
//	jwtManager, err := auth.NewJWTManager(&cfg.Security)
//	if err != nil {
//	    return err
//	}
//	authMW := auth.NewMiddleware(jwtManager)
//
//	// In a handler behind authMW.Authenticate:
//	claims, ok := auth.ClaimsFromContext(r.Context())
//	if !ok {
//	    // unreachable when the middleware is wired
//	}
//	ownerID := claims.UserID
//
// Security notes:
//
//   - Tokens signed with any non-HMAC algorithm are rejected.
//   - The signing secret must be at least 32 characters (enforced by
//     config validation) and is never logged.
//   - bcrypt embeds per-hash salts; equal passwords produce distinct hashes.
package auth
