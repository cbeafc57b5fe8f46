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

// CreateSport inserts a new catalog entry and populates its ID.
// SportType must be one of Single/Team/Both; the schema CHECK rejects
// anything else.
func (db *DB) CreateSport(ctx context.Context, sport *models.Sport) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("insert", "sports", start, err) }()

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO sports (sport_name, sport_type) VALUES (?, ?)`,
		sport.SportName, sport.SportType,
	)
	if err != nil {
		return fmt.Errorf("failed to create sport: %w", err)
	}

	sport.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new sport id: %w", err)
	}
	return nil
}

// GetSportByID retrieves a sport by ID. Returns ErrNotFound when absent.
func (db *DB) GetSportByID(ctx context.Context, id int64) (sport *models.Sport, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "sports", start, err) }()

	sport = &models.Sport{}
	err = db.conn.QueryRowContext(ctx,
		`SELECT id, sport_name, sport_type FROM sports WHERE id = ?`, id,
	).Scan(&sport.ID, &sport.SportName, &sport.SportType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sport %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sport %d: %w", id, err)
	}
	return sport, nil
}

// ListSports returns the whole catalog ordered by ID.
func (db *DB) ListSports(ctx context.Context) (sports []models.Sport, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "sports", start, err) }()

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, sport_name, sport_type FROM sports ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sports: %w", err)
	}
	defer closeWithLog(rows, "sport rows")

	sports = []models.Sport{}
	for rows.Next() {
		var s models.Sport
		if err = rows.Scan(&s.ID, &s.SportName, &s.SportType); err != nil {
			return nil, fmt.Errorf("failed to scan sport: %w", err)
		}
		sports = append(sports, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sports: %w", err)
	}
	return sports, nil
}
