// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

// AddSportInterest records that a user wants to play a sport
//
// @Summary Add a sport interest
// @Description Links a user (default: the authenticated user) to a sport. The pair is unique.
// @Tags Interests
// @Accept json
// @Produce json
// @Param interest body AddSportInterestRequest true "Interest data"
// @Success 201 {object} models.APIResponse{data=models.SportInterest} "Interest recorded"
// @Failure 404 {object} models.APIResponse "Sport or user not found"
// @Failure 409 {object} models.APIResponse "Interest already recorded"
// @Router /sport-interests [post]
func (h *Handler) AddSportInterest(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	var req AddSportInterestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	userID := int64(0)
	if req.UserID != nil {
		userID = *req.UserID
	} else {
		claims, ok := claimsFromRequest(w, r)
		if !ok {
			return
		}
		userID = claims.UserID
	}

	interest := &models.SportInterest{
		UserID:  userID,
		SportID: req.SportID,
	}

	start := time.Now()
	if err := h.db.AddSportInterest(r.Context(), interest); err != nil {
		respondStoreError(w, err, "Sport or user not found", "Interest already recorded")
		return
	}

	respondSuccess(w, http.StatusCreated, interest, start)
}

// ListSportInterests returns interests, optionally filtered
//
// @Summary List sport interests
// @Description Returns user-sport interest links; ?user_id= and ?sport_id= narrow the listing
// @Tags Interests
// @Produce json
// @Param user_id query int false "Filter by user"
// @Param sport_id query int false "Filter by sport"
// @Success 200 {object} models.APIResponse{data=[]models.SportInterest} "Interests retrieved"
// @Router /sport-interests [get]
func (h *Handler) ListSportInterests(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	userID, err := parseInt64Query(r, "user_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	sportID, err := parseInt64Query(r, "sport_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	start := time.Now()
	interests, err := h.db.ListSportInterests(r.Context(), database.InterestFilter{
		UserID:  userID,
		SportID: sportID,
	})
	if err != nil {
		respondStoreError(w, err, "Interest not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, interests, start)
}
