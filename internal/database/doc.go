// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

// Package database provides the SQLite-backed store for users, sports,
// sport interests, playdates and participants.
//
// The store uses modernc.org/sqlite (pure Go, no CGO). New() creates the
// parent directory, opens the database with foreign keys and a busy timeout
// enabled on every connection, creates the schema, and applies pending
// versioned migrations. Pass ":memory:" as the path for an ephemeral
// in-process database (tests).
//
// Error contract:
//
//   - ErrNotFound: the requested or referenced row does not exist
//   - ErrDuplicate: a uniqueness rule was violated (username, email,
//     interest pair, participant pair)
//   - ErrCapacityReached: a join would exceed a playdate's max_participants
//
// All methods take a context.Context and wrap failures with %w so callers
// can errors.Is against the sentinels above.
//
// Concurrency: the pool is pinned to a single connection. SQLite serializes
// writers anyway, and the pin keeps :memory: databases coherent and makes
// the check-then-insert join transaction safe without retry loops.
//
// Timestamps are stored as unix seconds (created_at) and RFC 3339 UTC
// strings (playdate date); both are converted back to time.Time in scans.
//
// Every method reports its duration and outcome to the Prometheus registry
// via metrics.RecordDBQuery, labeled by operation and table.
package database
