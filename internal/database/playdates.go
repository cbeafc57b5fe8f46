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

// PlaydateFilter narrows ListPlaydates. Nil fields are ignored.
type PlaydateFilter struct {
	SportID   *int64
	CreatorID *int64
}

// playdateQuery selects playdate rows with their current participant count.
// The LEFT JOIN keeps playdates nobody has joined yet (count 0).
const playdateQuery = `
SELECT p.id, p.title, p.sport_id, p.creator_id, p.address, p.longitude, p.latitude,
       p.date, p.max_participants, p.created_at, COUNT(pa.id)
FROM playdates p
LEFT JOIN participants pa ON pa.playdate_id = p.id`

// CreatePlaydate inserts a new playdate and populates its ID and creation
// timestamp. Returns ErrNotFound when the referenced sport does not exist.
// Coordinates must already be resolved; geocoding happens at the API layer.
func (db *DB) CreatePlaydate(ctx context.Context, p *models.Playdate) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("insert", "playdates", start, err) }()

	if err = db.requireRow(ctx, "sports", "sport", p.SportID); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO playdates (title, sport_id, creator_id, address, longitude, latitude, date, max_participants, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Title, p.SportID, p.CreatorID, p.Address, p.Longitude, p.Latitude,
		p.Date.Time.UTC().Format(time.RFC3339), p.MaxParticipants, p.CreatedAt.Unix(),
	)
	if err != nil {
		if mapped := mapConstraintError(err); errors.Is(mapped, ErrNotFound) {
			return fmt.Errorf("referenced user or sport: %w", ErrNotFound)
		}
		return fmt.Errorf("failed to create playdate: %w", err)
	}

	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new playdate id: %w", err)
	}
	return nil
}

// GetPlaydateByID retrieves a playdate with its participant count.
// Returns ErrNotFound when absent.
func (db *DB) GetPlaydateByID(ctx context.Context, id int64) (p *models.Playdate, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "playdates", start, err) }()

	row := db.conn.QueryRowContext(ctx, playdateQuery+` WHERE p.id = ? GROUP BY p.id`, id)
	p, err = scanPlaydate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("playdate %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get playdate %d: %w", id, err)
	}
	return p, nil
}

// ListPlaydates returns playdates matching the filter with participant
// counts, ordered by ID.
func (db *DB) ListPlaydates(ctx context.Context, filter PlaydateFilter) (playdates []models.Playdate, err error) {
	start := time.Now()
	defer func() { db.recordQuery("select", "playdates", start, err) }()

	query := playdateQuery
	var conds []string
	var args []interface{}
	if filter.SportID != nil {
		conds = append(conds, "p.sport_id = ?")
		args = append(args, *filter.SportID)
	}
	if filter.CreatorID != nil {
		conds = append(conds, "p.creator_id = ?")
		args = append(args, *filter.CreatorID)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " GROUP BY p.id ORDER BY p.id"

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list playdates: %w", err)
	}
	defer closeWithLog(rows, "playdate rows")

	playdates = []models.Playdate{}
	for rows.Next() {
		p, scanErr := scanPlaydate(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan playdate: %w", scanErr)
		}
		playdates = append(playdates, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate playdates: %w", err)
	}
	return playdates, nil
}

// UpdatePlaydate persists changes to title, sport, address, coordinates,
// date and capacity. The creator-only rule is enforced at the API layer.
// Returns ErrNotFound when the playdate or new sport does not exist.
func (db *DB) UpdatePlaydate(ctx context.Context, p *models.Playdate) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("update", "playdates", start, err) }()

	if err = db.requireRow(ctx, "sports", "sport", p.SportID); err != nil {
		return err
	}

	res, err := db.conn.ExecContext(ctx,
		`UPDATE playdates
		 SET title = ?, sport_id = ?, address = ?, longitude = ?, latitude = ?, date = ?, max_participants = ?
		 WHERE id = ?`,
		p.Title, p.SportID, p.Address, p.Longitude, p.Latitude,
		p.Date.Time.UTC().Format(time.RFC3339), p.MaxParticipants, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update playdate %d: %w", p.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("playdate %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// DeletePlaydate removes a playdate; its participant rows cascade.
// Returns ErrNotFound for an unknown ID.
func (db *DB) DeletePlaydate(ctx context.Context, id int64) (err error) {
	start := time.Now()
	defer func() { db.recordQuery("delete", "playdates", start, err) }()

	res, err := db.conn.ExecContext(ctx, `DELETE FROM playdates WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playdate %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("playdate %d: %w", id, ErrNotFound)
	}
	return nil
}

// scanPlaydate scans one playdate row in playdateQuery column order.
func scanPlaydate(row rowScanner) (*models.Playdate, error) {
	var (
		p         models.Playdate
		date      string
		maxPart   sql.NullInt64
		createdAt int64
	)
	err := row.Scan(
		&p.ID, &p.Title, &p.SportID, &p.CreatorID, &p.Address,
		&p.Longitude, &p.Latitude, &date, &maxPart, &createdAt,
		&p.ParticipantCount,
	)
	if err != nil {
		return nil, err
	}

	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return nil, fmt.Errorf("stored date %q is not RFC 3339: %w", date, err)
	}
	p.Date = models.NewPlaydateTime(parsed)

	if maxPart.Valid {
		p.MaxParticipants = &maxPart.Int64
	}
	p.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &p, nil
}
