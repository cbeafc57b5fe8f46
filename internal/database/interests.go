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
	"strings"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

// InterestFilter narrows ListSportInterests. Nil fields are ignored.
type InterestFilter struct {
	UserID  *int64
	SportID *int64
}

// AddSportInterest links a user to a sport and populates the interest ID.
// Returns ErrNotFound when the user or sport does not exist and ErrDuplicate
// when the interest is already declared.
func (db *DB) AddSportInterest(ctx context.Context, interest *models.SportInterest) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("insert", "sport_interests", start, err) }()

	if err = db.requireRow(ctx, "users", "user", interest.UserID); err != nil {
		return err
	}
	if err = db.requireRow(ctx, "sports", "sport", interest.SportID); err != nil {
		return err
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO sport_interests (user_id, sport_id) VALUES (?, ?)`,
		interest.UserID, interest.SportID,
	)
	if err != nil {
		if mapped := mapConstraintError(err); errors.Is(mapped, ErrDuplicate) {
			return fmt.Errorf("interest in sport %d already declared: %w", interest.SportID, ErrDuplicate)
		}
		return fmt.Errorf("failed to add sport interest: %w", err)
	}

	interest.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new interest id: %w", err)
	}
	return nil
}

// ListSportInterests returns interests matching the filter, ordered by ID.
func (db *DB) ListSportInterests(ctx context.Context, filter InterestFilter) (interests []models.SportInterest, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "sport_interests", start, err) }()

	query := `SELECT id, user_id, sport_id FROM sport_interests`
	var conds []string
	var args []interface{}
	if filter.UserID != nil {
		conds = append(conds, "user_id = ?")
		args = append(args, *filter.UserID)
	}
	if filter.SportID != nil {
		conds = append(conds, "sport_id = ?")
		args = append(args, *filter.SportID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sport interests: %w", err)
	}
	defer closeWithLog(rows, "interest rows")

	interests = []models.SportInterest{}
	for rows.Next() {
		var si models.SportInterest
		if err = rows.Scan(&si.ID, &si.UserID, &si.SportID); err != nil {
			return nil, fmt.Errorf("failed to scan sport interest: %w", err)
		}
		interests = append(interests, si)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sport interests: %w", err)
	}
	return interests, nil
}

// requireRow verifies that a row with the given ID exists in table.
// Returns ErrNotFound labeled with the entity name otherwise.
func (db *DB) requireRow(ctx context.Context, table, entity string, id int64) error {
	var exists int
	err := db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM `+table+` WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check %s %d: %w", entity, id, err)
	}
	return nil
}
