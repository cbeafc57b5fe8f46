// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package models

// Sport type classification values. The storage layer enforces the same set
// with a CHECK constraint.
const (
	SportTypeSingle = "Single"
	SportTypeTeam   = "Team"
	SportTypeBoth   = "Both"
)

// Sport is a catalog entry describing an activity users can declare interest
// in and schedule playdates for.
type Sport struct {
	ID        int64  `json:"id"`
	SportName string `json:"sport_name"`
	SportType string `json:"sport_type"`
}

// SportInterest links a user to a sport they want to play.
// The (UserID, SportID) pair is unique; duplicates are rejected.
type SportInterest struct {
	ID      int64 `json:"id"`
	UserID  int64 `json:"user_id"`
	SportID int64 `json:"sport_id"`
}
