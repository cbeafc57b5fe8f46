// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
)

// JoinPlaydate adds a participant to a playdate
//
// @Summary Join a playdate
// @Description Adds a user (default: the authenticated user) to a playdate. Capacity is checked and the row inserted in one transaction.
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path int true "Playdate ID"
// @Param participant body ParticipantRequest false "Participant (defaults to the caller)"
// @Success 201 {object} models.APIResponse{data=models.Participant} "Participant added"
// @Failure 404 {object} models.APIResponse "Playdate or user not found"
// @Failure 409 {object} models.APIResponse "Already joined or capacity reached"
// @Router /playdates/{id}/participants [post]
func (h *Handler) JoinPlaydate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	playdateID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID, ok := h.participantUserID(w, r)
	if !ok {
		return
	}

	start := time.Now()
	participant, err := h.db.AddParticipant(r.Context(), playdateID, userID)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrCapacityReached):
			metrics.PlaydateJoins.WithLabelValues("full").Inc()
		case errors.Is(err, database.ErrDuplicate):
			metrics.PlaydateJoins.WithLabelValues("duplicate").Inc()
		}
		respondStoreError(w, err, "Playdate or user not found", "User already joined this playdate")
		return
	}

	metrics.PlaydateJoins.WithLabelValues("joined").Inc()
	respondSuccess(w, http.StatusCreated, participant, start)
}

// LeavePlaydate removes a participant from a playdate
//
// @Summary Leave a playdate
// @Description Removes a user (default: the authenticated user) from a playdate's participant list
// @Tags Participants
// @Accept json
// @Param id path int true "Playdate ID"
// @Param participant body ParticipantRequest false "Participant (defaults to the caller)"
// @Success 204 "Participant removed"
// @Failure 404 {object} models.APIResponse "Not a participant"
// @Router /playdates/{id}/participants [delete]
func (h *Handler) LeavePlaydate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodDelete) || !h.requireDB(w) {
		return
	}

	playdateID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	userID, ok := h.participantUserID(w, r)
	if !ok {
		return
	}

	if err := h.db.RemoveParticipant(r.Context(), playdateID, userID); err != nil {
		respondStoreError(w, err, "User is not a participant of this playdate", "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListParticipants returns the joined users of a playdate
//
// @Summary List playdate participants
// @Description Returns the playdate's participants as user summaries, in join order
// @Tags Participants
// @Produce json
// @Param id path int true "Playdate ID"
// @Success 200 {object} models.APIResponse{data=[]models.UserSummary} "Participants retrieved"
// @Failure 404 {object} models.APIResponse "Playdate not found"
// @Router /playdates/{id}/participants [get]
func (h *Handler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	playdateID, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	participants, err := h.db.ListParticipants(r.Context(), playdateID)
	if err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, participants, start)
}

// participantUserID resolves the target user of a join/leave request: the
// user_id from the optional body, or the authenticated user when the body
// is empty or omits it.
func (h *Handler) participantUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	var req ParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err)
		return 0, false
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return 0, false
	}

	if req.UserID != nil {
		return *req.UserID, true
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
