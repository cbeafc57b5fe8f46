// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package geocode resolves street addresses to coordinates through the Mapbox
forward geocoding API.

Components:

  - Client: HTTP client with a client-side quota limiter and exponential
    backoff retries for HTTP 429, 5xx and transport errors
  - Geocoder: Client wrapped in a circuit breaker so a provider outage
    fails fast instead of stacking timeouts under request handlers

Usage:

	geocoder := geocode.NewGeocoder(&cfg.Geocoding)
	result, err := geocoder.Forward(ctx, "Museumplein 6, Amsterdam")
	if errors.Is(err, geocode.ErrNoResults) {
	    // address matched nothing
	}

Error Contract:

	ErrNoResults   - the provider answered but matched no places
	ErrRateLimited - HTTP 429 persisted through every backoff retry
	other errors   - transport failures, non-200 statuses, open breaker

The access token travels only in the request query string; transport errors
are stripped of their URL so the token never reaches logs.
*/
package geocode
