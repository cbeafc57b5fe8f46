// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sportbuddy/sportbuddy/internal/auth"
	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/logging"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

// Login handles user authentication requests
//
// @Summary Authenticate user
// @Description Authenticates user with username and password, returns JWT token in body and HTTP-only cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Authentication successful"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 401 {object} models.APIResponse "Invalid credentials"
// @Failure 500 {object} models.APIResponse "Internal server error"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	req, ok := h.parseLoginRequest(w, r)
	if !ok {
		return
	}

	user, ok := h.authenticateCredentials(w, r, req)
	if !ok {
		return
	}

	h.generateAndSendToken(w, r, user)
}

// parseLoginRequest parses and validates the login request body.
func (h *Handler) parseLoginRequest(w http.ResponseWriter, r *http.Request) (*models.LoginRequest, bool) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return nil, false
	}

	validationReq := LoginValidation{
		Username: req.Username,
		Password: req.Password,
	}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondValidationError(w, apiErr)
		return nil, false
	}

	return &req, true
}

// authenticateCredentials verifies username and password against the store.
// Unknown usernames and wrong passwords produce the same 401 so the two
// cases are indistinguishable to a caller.
func (h *Handler) authenticateCredentials(w http.ResponseWriter, r *http.Request, req *models.LoginRequest) (*models.User, bool) {
	user, err := h.db.GetUserByUsername(r.Context(), req.Username)
	if err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed", err)
			return nil, false
		}

		metrics.RecordAuthAttempt(false)
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
		return nil, false
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		metrics.RecordAuthAttempt(false)
		logging.Warn().Str("username", sanitizeLogValue(req.Username)).Msg("Login failed: wrong password")
		respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
		return nil, false
	}

	return user, true
}

// generateAndSendToken mints a JWT, sets the auth cookie, and responds.
func (h *Handler) generateAndSendToken(w http.ResponseWriter, r *http.Request, user *models.User) {
	token, err := h.jwtManager.GenerateToken(user.ID, user.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate authentication token", err)
		return
	}

	metrics.RecordAuthAttempt(true)
	expiresAt := time.Now().Add(h.jwtManager.Timeout())

	h.setAuthCookie(w, r, token, expiresAt)
	respondSuccess(w, http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  user.Username,
		UserID:    user.ID,
	}, time.Time{})
}

// setAuthCookie sets the authentication cookie
func (h *Handler) setAuthCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
}
