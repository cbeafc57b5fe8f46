// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"net/http"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

// CreateSport adds a sport to the catalog
//
// @Summary Create a sport
// @Description Adds a sport with a Single/Team/Both type (default Both) to the shared catalog
// @Tags Sports
// @Accept json
// @Produce json
// @Param sport body CreateSportRequest true "Sport data"
// @Success 201 {object} models.APIResponse{data=models.Sport} "Sport created"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 409 {object} models.APIResponse "Sport already exists"
// @Router /sports [post]
func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) || !h.requireDB(w) {
		return
	}

	var req CreateSportRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	sport := &models.Sport{
		SportName: req.SportName,
		SportType: req.SportType,
	}
	if sport.SportType == "" {
		sport.SportType = models.SportTypeBoth
	}

	start := time.Now()
	if err := h.db.CreateSport(r.Context(), sport); err != nil {
		respondStoreError(w, err, "Sport not found", "Sport already exists")
		return
	}

	respondSuccess(w, http.StatusCreated, sport, start)
}

// ListSports returns the sports catalog
//
// @Summary List sports
// @Description Returns every sport in the catalog in insertion order
// @Tags Sports
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.Sport} "Sports retrieved"
// @Router /sports [get]
func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	start := time.Now()
	sports, err := h.db.ListSports(r.Context())
	if err != nil {
		respondStoreError(w, err, "Sport not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, sports, start)
}

// GetSport returns a single sport
//
// @Summary Get sport by ID
// @Tags Sports
// @Produce json
// @Param id path int true "Sport ID"
// @Success 200 {object} models.APIResponse{data=models.Sport} "Sport retrieved"
// @Failure 404 {object} models.APIResponse "Sport not found"
// @Router /sports/{id} [get]
func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) || !h.requireDB(w) {
		return
	}

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	start := time.Now()
	sport, err := h.db.GetSportByID(r.Context(), id)
	if err != nil {
		respondStoreError(w, err, "Sport not found", "")
		return
	}

	respondSuccess(w, http.StatusOK, sport, start)
}
