// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package models

import (
	"fmt"
	"time"
)

// PlaydateTimeLayout is the wire format for playdate dates: day-month-year
// with a 24-hour clock, e.g. "31-12-2026 18:30:00". Times are interpreted
// and rendered in UTC.
const PlaydateTimeLayout = "02-01-2006 15:04:05"

// PlaydateTime wraps time.Time to marshal playdate dates in the
// DD-MM-YYYY HH:MM:SS wire format instead of RFC 3339.
//
// Storage keeps RFC 3339 UTC strings; this type only governs the JSON
// representation on the API surface.
type PlaydateTime struct {
	time.Time
}

// NewPlaydateTime wraps t, normalized to UTC.
func NewPlaydateTime(t time.Time) PlaydateTime {
	return PlaydateTime{Time: t.UTC()}
}

// ParsePlaydateTime parses a wire-format date string.
// Naive timestamps are interpreted as UTC.
func ParsePlaydateTime(s string) (PlaydateTime, error) {
	t, err := time.Parse(PlaydateTimeLayout, s)
	if err != nil {
		return PlaydateTime{}, fmt.Errorf("invalid date %q: expected format DD-MM-YYYY HH:MM:SS: %w", s, err)
	}
	return PlaydateTime{Time: t.UTC()}, nil
}

// MarshalJSON renders the date in the wire format as a JSON string.
func (pt PlaydateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + pt.Time.UTC().Format(PlaydateTimeLayout) + `"`), nil
}

// UnmarshalJSON accepts a wire-format JSON string.
func (pt *PlaydateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date: expected JSON string in format DD-MM-YYYY HH:MM:SS")
	}
	parsed, err := ParsePlaydateTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// Playdate is a scheduled sport meetup at a concrete location.
//
// Coordinates are always present: they are either supplied by the client or
// populated by forward-geocoding the address at creation/update time.
//
// MaxParticipants is nil for unlimited capacity. ParticipantCount carries the
// current number of joined users; the creator is not implicitly a participant.
type Playdate struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	SportID          int64        `json:"sport_id"`
	CreatorID        int64        `json:"creator_id"`
	Address          string       `json:"address"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	Date             PlaydateTime `json:"date"`
	MaxParticipants  *int64       `json:"max_participants"`
	ParticipantCount int64        `json:"participant_count"`
	CreatedAt        time.Time    `json:"created_at"`
}

// Participant records a user who joined a playdate.
// The (UserID, PlaydateID) pair is unique.
type Participant struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	PlaydateID int64 `json:"playdate_id"`
}

// GeocodeResult is the API shape for a forward-geocoding lookup: the queried
// address together with the provider's best-match place name and coordinates.
type GeocodeResult struct {
	Address   string  `json:"address"`
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
