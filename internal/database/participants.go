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

// AddParticipant joins a user to a playdate, enforcing the capacity limit.
//
// The capacity check and the insert run in one transaction so concurrent
// joins cannot overshoot max_participants. Returns ErrNotFound when the
// playdate or user does not exist, ErrDuplicate when the user already
// joined, and ErrCapacityReached when the playdate is full.
func (db *DB) AddParticipant(ctx context.Context, playdateID, userID int64) (participant *models.Participant, err error) {
	start := time.Now()
	defer func() { db.recordQuery("insert", "participants", start, err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var maxParticipants sql.NullInt64
	err = tx.QueryRowContext(ctx,
		`SELECT max_participants FROM playdates WHERE id = ?`, playdateID,
	).Scan(&maxParticipants)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("playdate %d: %w", playdateID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load playdate %d: %w", playdateID, err)
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = ?`, userID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check user %d: %w", userID, err)
	}

	if maxParticipants.Valid {
		var count int64
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM participants WHERE playdate_id = ?`, playdateID,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("failed to count participants: %w", err)
		}
		if count >= maxParticipants.Int64 {
			return nil, fmt.Errorf("playdate %d full (%d/%d): %w",
				playdateID, count, maxParticipants.Int64, ErrCapacityReached)
		}
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO participants (user_id, playdate_id) VALUES (?, ?)`,
		userID, playdateID,
	)
	if err != nil {
		if mapped := mapConstraintError(err); errors.Is(mapped, ErrDuplicate) {
			return nil, fmt.Errorf("user %d already joined playdate %d: %w", userID, playdateID, ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to add participant: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new participant id: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit join: %w", err)
	}

	return &models.Participant{ID: id, UserID: userID, PlaydateID: playdateID}, nil
}

// RemoveParticipant removes a user from a playdate.
// Returns ErrNotFound when the user is not a participant.
func (db *DB) RemoveParticipant(ctx context.Context, playdateID, userID int64) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("delete", "participants", start, err) }()

	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM participants WHERE playdate_id = ? AND user_id = ?`,
		playdateID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove participant: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %d is not a participant of playdate %d: %w", userID, playdateID, ErrNotFound)
	}
	return nil
}

// ListParticipants returns the users joined to a playdate in summary shape.
// Returns ErrNotFound when the playdate does not exist.
func (db *DB) ListParticipants(ctx context.Context, playdateID int64) (users []models.UserSummary, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "participants", start, err) }()

	if err = db.requireRow(ctx, "playdates", "playdate", playdateID); err != nil {
		return nil, err
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT u.id, u.username
		 FROM participants pa
		 JOIN users u ON u.id = pa.user_id
		 WHERE pa.playdate_id = ?
		 ORDER BY pa.id`,
		playdateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer closeWithLog(rows, "participant rows")

	users = []models.UserSummary{}
	for rows.Next() {
		var u models.UserSummary
		if err = rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return users, nil
}
