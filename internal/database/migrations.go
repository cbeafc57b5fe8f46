// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package database

import (
	"fmt"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/logging"
)

// schema is the initial schema, created whole at startup. Incremental changes
// after the first release go through versioned migrations below, never by
// editing these statements.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	latitude REAL,
	longitude REAL,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sports (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sport_name TEXT NOT NULL,
	sport_type TEXT NOT NULL DEFAULT 'Both' CHECK (sport_type IN ('Single', 'Team', 'Both'))
);

CREATE TABLE IF NOT EXISTS sport_interests (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	sport_id INTEGER NOT NULL REFERENCES sports(id) ON DELETE CASCADE,
	UNIQUE (user_id, sport_id)
);

CREATE TABLE IF NOT EXISTS playdates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	sport_id INTEGER NOT NULL REFERENCES sports(id),
	creator_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	address TEXT NOT NULL,
	longitude REAL NOT NULL,
	latitude REAL NOT NULL,
	date TEXT NOT NULL,
	max_participants INTEGER,
	created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	playdate_id INTEGER NOT NULL REFERENCES playdates(id) ON DELETE CASCADE,
	UNIQUE (user_id, playdate_id)
);

CREATE INDEX IF NOT EXISTS idx_sports_sport_name ON sports(sport_name);
CREATE INDEX IF NOT EXISTS idx_sport_interests_user ON sport_interests(user_id);
CREATE INDEX IF NOT EXISTS idx_sport_interests_sport ON sport_interests(sport_id);
CREATE INDEX IF NOT EXISTS idx_playdates_sport ON playdates(sport_id);
CREATE INDEX IF NOT EXISTS idx_playdates_creator ON playdates(creator_id);
CREATE INDEX IF NOT EXISTS idx_participants_playdate ON participants(playdate_id);
`

// schemaMigrationsTable creates the migration tracking table.
const schemaMigrationsTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at INTEGER NOT NULL
);
`

// Migration represents a versioned database migration.
type Migration struct {
	Version int    // Unique version number (monotonically increasing)
	Name    string // Human-readable migration name
	SQL     string // SQL statement to execute
}

// getMigrations returns all versioned migrations in order.
//
// Migrations are append-only once released: never modify or remove an entry
// users may already have applied. The initial schema lives in the schema
// constant; new migrations start from version 1.
func getMigrations() []Migration {
	return []Migration{
		// Post-release migrations will be added here.
	}
}

// createTables creates the initial schema.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// runMigrations executes only migrations that haven't been applied yet.
func (db *DB) runMigrations() error {
	ctx, cancel := schemaContext()
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, schemaMigrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := db.conn.QueryContext(ctx, `SELECT version FROM schema_migrations ORDER BY version`)
	if err != nil {
		return fmt.Errorf("failed to query applied migrations: %w", err)
	}
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			closeQuietly(rows)
			return fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		closeQuietly(rows)
		return fmt.Errorf("failed to iterate migrations: %w", err)
	}
	closeQuietly(rows)

	newMigrations := 0
	for _, m := range getMigrations() {
		if applied[m.Version] {
			continue
		}

		if _, err := db.conn.ExecContext(ctx, m.SQL); err != nil {
			return fmt.Errorf("failed to execute migration v%d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.conn.ExecContext(ctx,
			`INSERT INTO schema_migrations (version, name, applied_at) VALUES (?, ?, ?)`,
			m.Version, m.Name, time.Now().Unix()); err != nil {
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}

		newMigrations++
	}

	if newMigrations > 0 {
		logging.Info().Int("count", newMigrations).Msg("Applied database migrations")
	}

	return nil
}
