// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/logging"
)

func TestSlowRequestLogging_LogsSlowRequest(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prev)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	wrapped := SlowRequestLogging(time.Millisecond)(handler.ServeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/nearby", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	out := buf.String()
	if !strings.Contains(out, "Slow request detected") {
		t.Errorf("Expected slow request warning, got log output: %s", out)
	}
	if !strings.Contains(out, "/api/v1/users/nearby") {
		t.Errorf("Expected path in log output: %s", out)
	}
}

func TestSlowRequestLogging_FastRequestSilent(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prev)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	wrapped := SlowRequestLogging(time.Second)(handler.ServeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sports", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if buf.Len() != 0 {
		t.Errorf("Expected no log output for fast request, got: %s", buf.String())
	}
}

func TestSlowRequestLogging_CapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prev)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
		w.WriteHeader(http.StatusBadGateway)
	})

	wrapped := SlowRequestLogging(time.Millisecond)(handler.ServeHTTP)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/playdates", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("Expected status passthrough, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "502") {
		t.Errorf("Expected status code in log output: %s", buf.String())
	}
}

func TestSlowRequestLogging_ZeroThresholdUsesDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	defer logging.SetLogger(prev)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Zero threshold falls back to the one second default, so an
	// instant request must not be flagged.
	wrapped := SlowRequestLogging(0)(handler.ServeHTTP)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()

	wrapped(rec, req)

	if buf.Len() != 0 {
		t.Errorf("Expected no log output with default threshold, got: %s", buf.String())
	}
}
