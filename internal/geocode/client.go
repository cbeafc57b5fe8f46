// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package geocode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/sportbuddy/sportbuddy/internal/config"
	"github.com/sportbuddy/sportbuddy/internal/metrics"
	"github.com/sportbuddy/sportbuddy/internal/models"
)

const (
	defaultBaseURL       = "https://api.mapbox.com"
	defaultTimeout       = 10 * time.Second
	defaultRatePerMinute = 600 // Mapbox free-tier ceiling

	// maxErrorBodySize caps how much of an error response body is read for
	// diagnostics, preventing unbounded allocation on large error pages.
	maxErrorBodySize = 8 * 1024
)

// ErrNoResults indicates the provider matched no places for the address.
var ErrNoResults = errors.New("no geocoding results for address")

// ErrRateLimited indicates the provider kept answering HTTP 429 after all
// backoff retries were spent.
var ErrRateLimited = errors.New("geocoding rate limit exceeded")

// Client resolves street addresses to coordinates using the Mapbox forward
// geocoding API (v5).
//
// Features:
//   - Client-side request budget via a token-bucket limiter sized to the
//     configured requests-per-minute quota
//   - Automatic retry with exponential backoff (1s, 2s, 4s by default) on
//     HTTP 429, 5xx and transport errors, honoring Retry-After
//   - Typed result decoding limited to the best match (limit=1)
//   - Context support for cancellation and timeouts
//
// Thread Safety: safe for concurrent use. Each call builds its own request.
//
// Example:
//
//	client := geocode.NewClient(&cfg.Geocoding)
//	result, err := client.Forward(ctx, "Museumplein 6, Amsterdam")
//	if errors.Is(err, geocode.ErrNoResults) {
//	    // address matched nothing
//	}
type Client struct {
	baseURL        string
	accessToken    string
	client         *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewClient creates a Mapbox forward-geocoding client from the configuration,
// filling in the production defaults (api.mapbox.com, 10s timeout, 600
// requests per minute) for unset fields.
func NewClient(cfg *config.GeocodingConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perMinute := cfg.RatePerMinute
	if perMinute <= 0 {
		perMinute = defaultRatePerMinute
	}
	burst := perMinute / 60
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:        baseURL,
		accessToken:    cfg.AccessToken,
		client:         &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst),
		maxRetries:     3,
		retryBaseDelay: 1 * time.Second,
	}
}

// forwardResponse is the subset of the Mapbox geocoding response this
// service consumes. Center carries [longitude, latitude].
type forwardResponse struct {
	Features []forwardFeature `json:"features"`
}

type forwardFeature struct {
	PlaceName string    `json:"place_name"`
	Center    []float64 `json:"center"`
}

// Forward resolves an address to its best-matching place name and
// coordinates. Returns ErrNoResults when the provider matches nothing and
// ErrRateLimited when the provider kept rejecting the request after all
// retries.
func (c *Client) Forward(ctx context.Context, address string) (result *models.GeocodeResult, err error) {
	start := time.Now()
	defer func() { metrics.RecordGeocodingRequest(time.Since(start), classifyResult(err)) }()

	if strings.TrimSpace(address) == "" {
		return nil, errors.New("address must not be empty")
	}

	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?%s",
		c.baseURL, url.PathEscape(address), params.Encode())

	resp, err := c.doRequestWithBackoff(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("geocoding request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var fr forwardResponse
	if err = json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(fr.Features) == 0 {
		return nil, fmt.Errorf("address %q: %w", address, ErrNoResults)
	}

	feature := fr.Features[0]
	if len(feature.Center) < 2 {
		return nil, fmt.Errorf("malformed geocoding feature: center has %d coordinates", len(feature.Center))
	}

	// Mapbox center order is [longitude, latitude].
	return &models.GeocodeResult{
		Address:   address,
		PlaceName: feature.PlaceName,
		Latitude:  feature.Center[1],
		Longitude: feature.Center[0],
	}, nil
}

// doRequestWithBackoff performs the request under the client-side quota
// limiter with automatic retries. HTTP 429, 5xx and transport errors retry
// with exponential backoff (Retry-After wins when present); other statuses
// return immediately for the caller to interpret.
func (c *Client) doRequestWithBackoff(ctx context.Context, reqURL string) (*http.Response, error) {
	var lastErr error
	var retryAfter string

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if err := c.waitBackoff(ctx, attempt-1, retryAfter); err != nil {
				return nil, err
			}
			metrics.GeocodingRetries.Inc()
		}
		retryAfter = ""

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// url.Error embeds the full request URL, access token included.
			// Keep only the root cause so the token never reaches logs.
			var uerr *url.Error
			if errors.As(err, &uerr) {
				err = uerr.Err
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			lastErr = fmt.Errorf("geocoding request failed: %w", err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			retryAfter = resp.Header.Get("Retry-After")
			_ = resp.Body.Close() // retrying anyway
			lastErr = fmt.Errorf("%w (HTTP 429)", ErrRateLimited)
		case resp.StatusCode >= http.StatusInternalServerError:
			_ = resp.Body.Close()
			lastErr = fmt.Errorf("geocoding request failed with status %d", resp.StatusCode)
		default:
			return resp, nil
		}
	}

	return nil, lastErr
}

// waitBackoff sleeps for the exponential backoff delay (base, 2x, 4x, ...)
// or for the provider's Retry-After seconds when given. Cancellable via ctx.
func (c *Client) waitBackoff(ctx context.Context, attempt int, retryAfter string) error {
	delay := c.retryBaseDelay * time.Duration(1<<uint(attempt))
	if retryAfter != "" {
		// Retry-After carries integer seconds (RFC 6585).
		if seconds, err := time.ParseDuration(retryAfter + "s"); err == nil {
			delay = seconds
		}
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// classifyResult folds an error into a bounded metrics label.
func classifyResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNoResults):
		return "no_results"
	case errors.Is(err, ErrRateLimited):
		return "rate_limited"
	default:
		return "error"
	}
}

// readBodyForError reads at most maxErrorBodySize bytes of a response body
// for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		body = append(body, []byte("... (truncated)")...)
	}
	return body
}
