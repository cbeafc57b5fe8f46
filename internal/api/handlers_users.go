// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/auth"
	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/logging"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

// defaultNearbyRadius is the nearby-users search radius in degrees when the
// request does not specify one.
const defaultNearbyRadius = 10.0

// RegisterUser handles new account registration
//
// @Summary Register a new user
// @Description Creates a user account with a bcrypt-hashed password and optional home location
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "User registration data"
// @Success 201 {object} models.APIResponse{data=models.User} "User created"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 409 {object} models.APIResponse "Username or email already registered"
// @Router /users [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	var req RegisterUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process password", err)
		return
	}

	user := &models.User{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}

	start := time.Now()
	if err := h.db.CreateUser(r.Context(), user); err != nil {
		respondStoreError(w, err, "User not found", "Username or email already registered")
		return
	}

	metrics.UsersRegistered.Inc()
	logging.Info().Int64("user_id", user.ID).Str("username", sanitizeLogValue(user.Username)).Msg("User registered")

	respondSuccess(w, http.StatusCreated, user, start)
}

// ListUsers returns user summaries, optionally filtered by exact username
//
// @Summary List users
// @Description Returns id+username summaries for all users; ?username= narrows to an exact match (0 or 1 entries)
// @Tags Users
// @Produce json
// @Param username query string false "Exact username filter"
// @Success 200 {object} models.APIResponse{data=[]models.UserSummary} "Users retrieved"
// @Router /users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	start := time.Now()

	if username := r.URL.Query().Get("username"); username != "" {
		user, err := h.db.GetUserByUsername(r.Context(), username)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondSuccess(w, http.StatusOK, []models.UserSummary{}, start)
				return
			}
			respondStoreError(w, err, "User not found", "")
			return
		}

		respondSuccess(w, http.StatusOK, []models.UserSummary{user.Summary()}, start)
		return
	}

	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, users, start)
}

// GetUser returns a full user profile
//
// @Summary Get user by ID
// @Description Returns the full profile for one user; the password hash is never serialized
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.User} "User retrieved"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	user, err := h.db.GetUserByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, user, start)
}

// UpdateUser updates the caller's own profile
//
// @Summary Update user profile
// @Description Updates name, email, home location, and optionally the password. Users may only update their own record.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body UpdateUserRequest true "Updated profile"
// @Success 200 {object} models.APIResponse{data=models.User} "User updated"
// @Failure 403 {object} models.APIResponse "Not the account owner"
// @Failure 404 {object} models.APIResponse "User not found"
// @Failure 409 {object} models.APIResponse "Email already registered"
// @Router /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPut) || !h.requireDB(w) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}
	if claims.UserID != id {
		respondError(w, http.StatusForbidden, "FORBIDDEN", "You can only update your own profile", nil)
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.db.GetUserByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Latitude = req.Latitude
	user.Longitude = req.Longitude

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process password", err)
			return
		}
		user.PasswordHash = hash
	}

	start := time.Now()
	if err := h.db.UpdateUser(r.Context(), user); err != nil {
		respondStoreError(w, err, "User not found", "Email already registered")
		return
	}

	respondSuccess(w, http.StatusOK, user, start)
}

// DeleteUser removes the caller's own account
//
// @Summary Delete user account
// @Description Deletes the account and cascades to interests, participations, and created playdates. Users may only delete their own record.
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 "User deleted"
// @Failure 403 {object} models.APIResponse "Not the account owner"
// @Failure 404 {object} models.APIResponse "User not found"
// @Router /users/{id} [delete]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) || !h.requireDB(w) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}
	if claims.UserID != id {
		respondError(w, http.StatusForbidden, "FORBIDDEN", "You can only delete your own account", nil)
		return
	}

	if err := h.db.DeleteUser(r.Context(), id); err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	logging.Info().Int64("user_id", id).Msg("User account deleted")
	w.WriteHeader(http.StatusNoContent)
}

// NearbyUsers returns users whose home location lies within a radius
//
// @Summary Find nearby users
// @Description Returns users within the given radius of a point, using the squared-degree proximity test. Users without a home location never match.
// @Tags Users
// @Produce json
// @Param latitude query number true "Center latitude"
// @Param longitude query number true "Center longitude"
// @Param radius query number false "Search radius in degrees" default(10)
// @Success 200 {object} models.APIResponse{data=[]models.User} "Nearby users retrieved"
// @Failure 400 {object} models.APIResponse "Invalid coordinates"
// @Router /users/nearby [get]
func (h *Handler) NearbyUsers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	lat, err := parseFloatQuery(r, "latitude")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	lon, err := parseFloatQuery(r, "longitude")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	radius := defaultNearbyRadius
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "radius must be a number", nil)
			return
		}
	}

	query := NearbyUsersQuery{Latitude: lat, Longitude: lon, Radius: radius}
	if apiErr := validateRequest(&query); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	users, err := h.db.ListNearbyUsers(r.Context(), lat, lon, radius)
	if err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, users, start)
}
