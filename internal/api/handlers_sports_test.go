// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sportbuddy/sportbuddy/internal/models"
)

func TestCreateSport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := seedUser(t, env.db, "alice", "alice@example.com")
	token := authToken(t, env, user)

	tests := []struct {
		name     string
		body     map[string]string
		wantType string
	}{
		{
			name:     "type defaults to Both",
			body:     map[string]string{"sport_name": "Tennis"},
			wantType: models.SportTypeBoth,
		},
		{
			name:     "explicit team type",
			body:     map[string]string{"sport_name": "Football", "sport_type": "Team"},
			wantType: models.SportTypeTeam,
		},
		{
			name:     "explicit single type",
			body:     map[string]string{"sport_name": "Squash", "sport_type": "Single"},
			wantType: models.SportTypeSingle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, env, http.MethodPost, "/api/v1/sports", token, tt.body)
			response := assertSuccessResponse(t, w, http.StatusCreated, tt.name)

			var sport models.Sport
			decodeData(t, response, &sport, tt.name)
			if sport.ID <= 0 {
				t.Errorf("Expected a positive sport ID, got %d", sport.ID)
			}
			if sport.SportType != tt.wantType {
				t.Errorf("Expected sport type %s, got %s", tt.wantType, sport.SportType)
			}
		})
	}
}

func TestCreateSport_Validation(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := seedUser(t, env.db, "alice", "alice@example.com")
	token := authToken(t, env, user)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"sport_type": "Team"}},
		{"name too short", map[string]string{"sport_name": "X"}},
		{"unknown type", map[string]string{"sport_name": "Chess", "sport_type": "Mixed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, env, http.MethodPost, "/api/v1/sports", token, tt.body)
			assertErrorResponse(t, w, http.StatusBadRequest, "VALIDATION_ERROR", tt.name)
		})
	}
}

func TestListSports(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := seedUser(t, env.db, "alice", "alice@example.com")
	token := authToken(t, env, user)
	seedSport(t, env.db, "Tennis", models.SportTypeSingle)
	seedSport(t, env.db, "Football", models.SportTypeTeam)

	w := doRequest(t, env, http.MethodGet, "/api/v1/sports", token, nil)
	response := assertSuccessResponse(t, w, http.StatusOK, "list sports")

	var sports []models.Sport
	decodeData(t, response, &sports, "list sports")
	if len(sports) != 2 {
		t.Fatalf("Expected 2 sports, got %d", len(sports))
	}
}

func TestGetSport(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)
	user := seedUser(t, env.db, "alice", "alice@example.com")
	token := authToken(t, env, user)
	sport := seedSport(t, env.db, "Tennis", models.SportTypeSingle)

	t.Run("found", func(t *testing.T) {
		w := doRequest(t, env, http.MethodGet, fmt.Sprintf("/api/v1/sports/%d", sport.ID), token, nil)
		response := assertSuccessResponse(t, w, http.StatusOK, "get sport")

		var got models.Sport
		decodeData(t, response, &got, "get sport")
		if got.ID != sport.ID || got.SportName != "Tennis" {
			t.Errorf("Unexpected sport: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(t, env, http.MethodGet, "/api/v1/sports/9999", token, nil)
		assertErrorResponse(t, w, http.StatusNotFound, "NOT_FOUND", "get missing sport")
	})
}
