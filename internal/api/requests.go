// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

// Request DTOs with go-playground/validator struct tags. Every request body
// is decoded into one of these and validated before any store or geocoder
// call; failures surface as VALIDATION_ERROR envelopes with field details.
//
// Coordinates travel as pointer pairs so "not provided" is distinguishable
// from 0,0 (a real point off the West African coast). The required_with
// tags reject a lone latitude or longitude.

// LoginValidation mirrors models.LoginRequest for validation only.
// Bounds match registration so attackers learn nothing new from them.
type LoginValidation struct {
	Username string `validate:"required,max=50"`
	Password string `validate:"required,max=72"`
}

// RegisterUserRequest is the body of POST /api/v1/users.
type RegisterUserRequest struct {
	Username  string   `json:"username" validate:"required,min=3,max=50,alphanum"`
	FirstName string   `json:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name" validate:"required,max=50"`
	Email     string   `json:"email" validate:"required,email,max=120"`
	Password  string   `json:"password" validate:"required,min=8,max=72"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// UpdateUserRequest is the body of PUT /api/v1/users/{id}. The username is
// immutable; the password is re-hashed only when provided.
type UpdateUserRequest struct {
	FirstName string   `json:"first_name" validate:"required,max=50"`
	LastName  string   `json:"last_name" validate:"required,max=50"`
	Email     string   `json:"email" validate:"required,email,max=120"`
	Password  string   `json:"password" validate:"omitempty,min=8,max=72"`
	Latitude  *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
}

// NearbyUsersQuery validates the query parameters of GET /api/v1/users/nearby.
type NearbyUsersQuery struct {
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
	Radius    float64 `validate:"gt=0"`
}

// CreateSportRequest is the body of POST /api/v1/sports.
type CreateSportRequest struct {
	SportName string `json:"sport_name" validate:"required,min=2,max=100"`
	SportType string `json:"sport_type" validate:"omitempty,oneof=Single Team Both"`
}

// CreatePlaydateRequest is the body of POST /api/v1/playdates. Date uses
// the DD-MM-YYYY HH:MM:SS wire format and is parsed after validation. When
// the coordinate pair is omitted the address is forward-geocoded.
type CreatePlaydateRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	SportID         int64    `json:"sport_id" validate:"required,gt=0"`
	Address         string   `json:"address" validate:"required,max=255"`
	Date            string   `json:"date" validate:"required"`
	Latitude        *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	MaxParticipants *int64   `json:"max_participants" validate:"omitempty,gte=2,lte=1000"`
}

// UpdatePlaydateRequest is the body of PUT /api/v1/playdates/{id}. Same
// shape as creation; an address change without explicit coordinates
// re-geocodes.
type UpdatePlaydateRequest struct {
	Title           string   `json:"title" validate:"required,max=100"`
	SportID         int64    `json:"sport_id" validate:"required,gt=0"`
	Address         string   `json:"address" validate:"required,max=255"`
	Date            string   `json:"date" validate:"required"`
	Latitude        *float64 `json:"latitude" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude       *float64 `json:"longitude" validate:"required_with=Latitude,omitempty,longitude"`
	MaxParticipants *int64   `json:"max_participants" validate:"omitempty,gte=2,lte=1000"`
}

// ParticipantRequest is the optional body of POST and DELETE
// /api/v1/playdates/{id}/participants. UserID defaults to the
// authenticated user when omitted.
type ParticipantRequest struct {
	UserID *int64 `json:"user_id" validate:"omitempty,gt=0"`
}

// AddSportInterestRequest is the body of POST /api/v1/sport-interests.
// UserID defaults to the authenticated user when omitted.
type AddSportInterestRequest struct {
	SportID int64  `json:"sport_id" validate:"required,gt=0"`
	UserID  *int64 `json:"user_id" validate:"omitempty,gt=0"`
}
