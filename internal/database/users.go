// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

// userColumns is the scan order shared by all single-user queries.
const userColumns = `id, username, first_name, last_name, email, password_hash, latitude, longitude, created_at`

// CreateUser inserts a new user and populates its ID and creation timestamp.
// Returns ErrDuplicate when the username or email is already taken.
func (db *DB) CreateUser(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("insert", "users", start, err) }()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, first_name, last_name, email, password_hash, latitude, longitude, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Username, user.FirstName, user.LastName, user.Email,
		user.PasswordHash, user.Latitude, user.Longitude, user.CreatedAt.Unix(),
	)
	if err != nil {
		if mapped := mapConstraintError(err); errors.Is(mapped, ErrDuplicate) {
			return fmt.Errorf("username or email taken: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new user id: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID. Returns ErrNotFound when absent.
func (db *DB) GetUserByID(ctx context.Context, id int64) (user *models.User, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "users", start, err) }()

	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	user, err = scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	return user, nil
}

// GetUserByUsername retrieves a user by exact username.
// Returns ErrNotFound when absent.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (user *models.User, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "users", start, err) }()

	row := db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	user, err = scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	return user, nil
}

// ListUsers returns all users in summary shape, ordered by ID.
func (db *DB) ListUsers(ctx context.Context) (users []models.UserSummary, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "users", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, username FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer closeWithLog(rows, "user rows")

	users = []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err = rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}
	return users, nil
}

// ListNearbyUsers returns users whose home location lies within radius of
// the given point, by the squared-degree proximity test
// (lat-latitude)^2 + (lon-longitude)^2 <= radius^2.
// Users without a stored home location never match.
func (db *DB) ListNearbyUsers(ctx context.Context, lat, lon, radius float64) (users []models.User, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "users", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		   AND (latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?) <= ? * ?
		 ORDER BY id`,
		lat, lat, lon, lon, radius, radius)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby users: %w", err)
	}
	defer closeWithLog(rows, "user rows")

	users = []models.User{}
	for rows.Next() {
		u, scanErr := scanUserRow(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan nearby user: %w", scanErr)
		}
		users = append(users, *u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nearby users: %w", err)
	}
	return users, nil
}

// UpdateUser persists profile changes (names, email, location, password hash)
// for an existing user. Returns ErrNotFound for an unknown ID and
// ErrDuplicate on an email conflict.
func (db *DB) UpdateUser(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("update", "users", start, err) }()

	res, err := db.conn.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, email = ?, password_hash = ?, latitude = ?, longitude = ?
		 WHERE id = ?`,
		user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Latitude, user.Longitude, user.ID,
	)
	if err != nil {
		if mapped := mapConstraintError(err); errors.Is(mapped, ErrDuplicate) {
			return fmt.Errorf("email taken: %w", ErrDuplicate)
		}
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d: %w", user.ID, ErrNotFound)
	}
	return nil
}

// DeleteUser removes a user. Interests, participations and created playdates
// cascade. Returns ErrNotFound for an unknown ID.
func (db *DB) DeleteUser(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("delete", "users", start, err) }()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows for the shared scan helpers.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanUser scans a single-user query result, mapping sql.ErrNoRows to
// ErrNotFound.
func scanUser(row *sql.Row) (*models.User, error) {
	user, err := scanUserRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// scanUserRow scans one user record in userColumns order.
func scanUserRow(row rowScanner) (*models.User, error) {
	var (
		user      models.User
		lat, lon  sql.NullFloat64
		createdAt int64
	)
	err := row.Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName,
		&user.Email, &user.PasswordHash, &lat, &lon, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if lat.Valid {
		user.Latitude = &lat.Float64
	}
	if lon.Valid {
		user.Longitude = &lon.Float64
	}
	user.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &user, nil
}
