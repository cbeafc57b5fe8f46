// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package models

import (
	"time"
)

// User is a registered account with an optional home location.
//
// The home location (Latitude/Longitude) powers the nearby-users lookup and
// may be set at registration or via profile update. Both fields are nil when
// the user has not shared a location; such users never match a nearby query.
//
// PasswordHash carries the bcrypt hash and is never serialized to JSON.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasLocation reports whether the user has shared a home location.
// Both coordinates must be present; a lone latitude is treated as unset.
func (u *User) HasLocation() bool {
	return u.Latitude != nil && u.Longitude != nil
}

// UserSummary is the compact user shape returned by list endpoints and
// participant listings: identity without profile details.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Summary converts a full user record to its list shape.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username}
}
