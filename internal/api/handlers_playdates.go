// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/database"
	"github.com/sportbuddy/sportbuddy/internal/logging"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

// CreatePlaydate schedules a new playdate
//
// @Summary Create a playdate
// @Description Schedules a playdate for a sport at an address. When latitude/longitude are omitted the address is forward-geocoded via Mapbox. The creator is the authenticated user and is not implicitly a participant.
// @Tags Playdates
// @Accept json
// @Produce json
// @Param playdate body CreatePlaydateRequest true "Playdate data"
// @Success 201 {object} models.APIResponse{data=models.Playdate} "Playdate created"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 404 {object} models.APIResponse "Sport not found"
// @Failure 502 {object} models.APIResponse "Geocoding failed"
// @Router /playdates [post]
func (h *Handler) CreatePlaydate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	claims, ok := claimsFromRequest(w, r)
	if !ok {
		return
	}

	var req CreatePlaydateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	date, err := models.ParsePlaydateTime(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "date must use the format DD-MM-YYYY HH:MM:SS", err)
		return
	}

	// Reject unknown sports before spending a geocoding call.
	if _, err := h.db.GetSportByID(r.Context(), req.SportID); err != nil {
		respondStoreError(w, err, "Sport not found", "")
		return
	}

	lat, lon, ok := h.resolveCoordinates(w, r, req.Address, req.Latitude, req.Longitude)
	if !ok {
		return
	}

	playdate := &models.Playdate{
		Title:           req.Title,
		SportID:         req.SportID,
		CreatorID:       claims.UserID,
		Address:         req.Address,
		Latitude:        lat,
		Longitude:       lon,
		Date:            date,
		MaxParticipants: req.MaxParticipants,
	}

	start := time.Now()
	if err := h.db.CreatePlaydate(r.Context(), playdate); err != nil {
		respondStoreError(w, err, "Sport or creator not found", "")
		return
	}

	metrics.PlaydatesCreated.Inc()
	logging.Info().
		Int64("playdate_id", playdate.ID).
		Int64("creator_id", playdate.CreatorID).
		Int64("sport_id", playdate.SportID).
		Msg("Playdate created")

	respondSuccess(w, http.StatusCreated, playdate, start)
}

// ListPlaydates returns playdates, optionally filtered
//
// @Summary List playdates
// @Description Returns playdates with participant counts; ?sport_id= and ?creator_id= narrow the listing
// @Tags Playdates
// @Produce json
// @Param sport_id query int false "Filter by sport"
// @Param creator_id query int false "Filter by creator"
// @Success 200 {object} models.APIResponse{data=[]models.Playdate} "Playdates retrieved"
// @Router /playdates [get]
func (h *Handler) ListPlaydates(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	sportID, err := parseInt64Query(r, "sport_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	creatorID, err := parseInt64Query(r, "creator_id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	start := time.Now()
	playdates, err := h.db.ListPlaydates(r.Context(), database.PlaydateFilter{
		SportID:   sportID,
		CreatorID: creatorID,
	})
	if err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, playdates, start)
}

// GetPlaydate returns a single playdate with its participant count
//
// @Summary Get playdate by ID
// @Tags Playdates
// @Produce json
// @Param id path int true "Playdate ID"
// @Success 200 {object} models.APIResponse{data=models.Playdate} "Playdate retrieved"
// @Failure 404 {object} models.APIResponse "Playdate not found"
// @Router /playdates/{id} [get]
func (h *Handler) GetPlaydate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	playdate, err := h.db.GetPlaydateByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, playdate, start)
}

// UpdatePlaydate updates a playdate the caller created
//
// @Summary Update a playdate
// @Description Replaces title, sport, address, date, coordinates, and capacity. Creator only. An address change without explicit coordinates re-geocodes.
// @Tags Playdates
// @Accept json
// @Produce json
// @Param id path int true "Playdate ID"
// @Param playdate body UpdatePlaydateRequest true "Updated playdate"
// @Success 200 {object} models.APIResponse{data=models.Playdate} "Playdate updated"
// @Failure 403 {object} models.APIResponse "Not the creator"
// @Failure 404 {object} models.APIResponse "Playdate or sport not found"
// @Failure 502 {object} models.APIResponse "Geocoding failed"
// @Router /playdates/{id} [put]
func (h *Handler) UpdatePlaydate(w http.ResponseWriter, r *http.Request) {
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

	playdate, err := h.db.GetPlaydateByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}
	if playdate.CreatorID != claims.UserID {
		respondError(w, http.StatusForbidden, "FORBIDDEN", "Only the creator can update a playdate", nil)
		return
	}

	var req UpdatePlaydateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	date, err := models.ParsePlaydateTime(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "date must use the format DD-MM-YYYY HH:MM:SS", err)
		return
	}

	lat, lon := playdate.Latitude, playdate.Longitude
	switch {
	case req.Latitude != nil && req.Longitude != nil:
		lat, lon = *req.Latitude, *req.Longitude
	case req.Address != playdate.Address:
		// Address changed without explicit coordinates: the stored point
		// no longer matches, so re-geocode.
		lat, lon, ok = h.resolveCoordinates(w, r, req.Address, nil, nil)
		if !ok {
			return
		}
	}

	playdate.Title = req.Title
	playdate.SportID = req.SportID
	playdate.Address = req.Address
	playdate.Latitude = lat
	playdate.Longitude = lon
	playdate.Date = date
	playdate.MaxParticipants = req.MaxParticipants

	start := time.Now()
	if err := h.db.UpdatePlaydate(r.Context(), playdate); err != nil {
		respondStoreError(w, err, "Playdate or sport not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, playdate, start)
}

// DeletePlaydate removes a playdate the caller created
//
// @Summary Delete a playdate
// @Description Deletes a playdate and cascades to its participant rows. Creator only.
// @Tags Playdates
// @Param id path int true "Playdate ID"
// @Success 204 "Playdate deleted"
// @Failure 403 {object} models.APIResponse "Not the creator"
// @Failure 404 {object} models.APIResponse "Playdate not found"
// @Router /playdates/{id} [delete]
func (h *Handler) DeletePlaydate(w http.ResponseWriter, r *http.Request) {
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

	playdate, err := h.db.GetPlaydateByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}
	if playdate.CreatorID != claims.UserID {
		respondError(w, http.StatusForbidden, "FORBIDDEN", "Only the creator can delete a playdate", nil)
		return
	}

	if err := h.db.DeletePlaydate(r.Context(), id); err != nil {
		respondStoreError(w, err, "Playdate not found", "")
		return
	}

	logging.Info().Int64("playdate_id", id).Msg("Playdate deleted")
	w.WriteHeader(http.StatusNoContent)
}

// resolveCoordinates returns the coordinate pair for a playdate: the
// client-provided pair when present, otherwise the forward-geocoded
// address. Any geocoding failure (no results, provider error, open
// breaker) fails the request with 502.
func (h *Handler) resolveCoordinates(w http.ResponseWriter, r *http.Request, address string, lat, lon *float64) (float64, float64, bool) {
	if lat != nil && lon != nil {
		return *lat, *lon, true
	}

	if h.geocoder == nil {
		respondError(w, http.StatusBadGateway, "GEOCODING_FAILED", "Geocoding service not available", nil)
		return 0, 0, false
	}

	result, err := h.geocoder.Forward(r.Context(), address)
	if err != nil {
		respondError(w, http.StatusBadGateway, "GEOCODING_FAILED", "Failed to geocode address", err)
		return 0, 0, false
	}

	return result.Latitude, result.Longitude, true
}
