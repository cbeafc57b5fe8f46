// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/geocode"
)

// GeocodeAddress forward-geocodes an address
//
// @Summary Geocode an address
// @Description Resolves an address to coordinates via the Mapbox forward-geocoding provider, returning the best match
// @Tags Geocoding
// @Produce json
// @Param address query string true "Address to geocode"
// @Success 200 {object} models.APIResponse{data=models.GeocodeResult} "Address resolved"
// @Failure 400 {object} models.APIResponse "Missing address"
// @Failure 404 {object} models.APIResponse "No results for address"
// @Failure 502 {object} models.APIResponse "Provider failure"
// @Router /geocode [get]
func (h *Handler) GeocodeAddress(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "address is required", nil)
		return
	}

	if h.geocoder == nil {
		respondError(w, http.StatusBadGateway, "GEOCODING_FAILED", "Geocoding service not available", nil)
		return
	}

	start := time.Now()
	result, err := h.geocoder.Forward(r.Context(), address)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "No results for address", nil)
			return
		}
		respondError(w, http.StatusBadGateway, "GEOCODING_FAILED", "Failed to geocode address", err)
		return
	}

	respondSuccess(w, http.StatusOK, result, start)
}
