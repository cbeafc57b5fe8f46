// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

// newTestGeocoder builds a Geocoder against the test server with fast,
// non-retrying inner requests so breaker behavior dominates the test.
func newTestGeocoder(serverURL string) *Geocoder {
	g := NewGeocoder(testConfig(serverURL))
	g.client.maxRetries = 0
	g.client.retryBaseDelay = time.Millisecond
	return g
}

func TestGeocoderForward_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(featureJSON))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)
	result, err := geocoder.Forward(context.Background(), "Museumplein 6, Amsterdam")
	if err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if result.Latitude != 52.358 || result.Longitude != 4.8852 {
		t.Errorf("coordinates = (%f, %f), want (52.358, 4.8852)", result.Latitude, result.Longitude)
	}
	if got := geocoder.StateName(); got != "closed" {
		t.Errorf("StateName() = %q, want closed", got)
	}
}

func TestGeocoder_OpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)
	ctx := context.Background()

	// Ten straight failures reach the trip threshold.
	for i := 0; i < 10; i++ {
		if _, err := geocoder.Forward(ctx, "Nowhere 1"); err == nil {
			t.Fatalf("Forward() #%d succeeded against a failing server", i+1)
		}
	}
	if got := geocoder.StateName(); got != "open" {
		t.Fatalf("StateName() = %q after 10 failures, want open", got)
	}

	before := calls.Load()
	_, err := geocoder.Forward(ctx, "Nowhere 1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Forward() with open breaker error = %v, want ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("open breaker still let a request reach the provider")
	}
}

func TestGeocoder_NoResultsDoesNotTrip(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(emptyJSON))
	}))
	defer server.Close()

	geocoder := newTestGeocoder(server.URL)
	ctx := context.Background()

	// Well past the 10-request trip threshold; empty matches must not count
	// as provider failures.
	for i := 0; i < 12; i++ {
		if _, err := geocoder.Forward(ctx, "Atlantis Hoofdstraat 1"); !errors.Is(err, ErrNoResults) {
			t.Fatalf("Forward() #%d error = %v, want ErrNoResults", i+1, err)
		}
	}

	if got := geocoder.StateName(); got != "closed" {
		t.Errorf("StateName() = %q after no-result lookups, want closed", got)
	}
	if got := calls.Load(); got != 12 {
		t.Errorf("server saw %d requests, want 12 (breaker must stay closed)", got)
	}
}
