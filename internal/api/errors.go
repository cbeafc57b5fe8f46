// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

// errors.go - Store error to HTTP status mapping
//
// Store sentinels cross the handler boundary here and nowhere else, so the
// code-to-status mapping stays in one place.

package api

import (
	"errors"
	"net/http"

	"github.com/sportbuddy/sportbuddy/internal/database"
)

// respondStoreError maps a store error onto the envelope. notFound and
// duplicate supply operation-specific phrasing; anything that is not a
// known sentinel becomes a 500 with the detail logged, never echoed.
func respondStoreError(w http.ResponseWriter, err error, notFound, duplicate string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", notFound, nil)
	case errors.Is(err, database.ErrDuplicate):
		respondError(w, http.StatusConflict, "ALREADY_EXISTS", duplicate, nil)
	case errors.Is(err, database.ErrCapacityReached):
		respondError(w, http.StatusConflict, "CAPACITY_REACHED", "Playdate has reached its participant limit", nil)
	default:
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Database operation failed", err)
	}
}
