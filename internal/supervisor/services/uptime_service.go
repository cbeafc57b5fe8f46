// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

package services

import (
	"context"
	"time"

	"github.com/sportbuddy/sportbuddy/internal/metrics"
)

// UptimeService publishes process uptime to the app_uptime_seconds gauge
// on a fixed interval, so dashboards can spot restarts.
type UptimeService struct {
	startTime time.Time
	interval  time.Duration
	name      string
}

// NewUptimeService creates an uptime publisher measuring from startTime.
// Non-positive intervals fall back to 15s.
func NewUptimeService(startTime time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		startTime: startTime,
		interval:  interval,
		name:      "uptime-metrics",
	}
}

// Serve implements suture.Service. The gauge is set once immediately so a
// freshly restarted service reports before the first tick.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	metrics.AppUptime.Set(time.Since(u.startTime).Seconds())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			metrics.AppUptime.Set(time.Since(u.startTime).Seconds())
		}
	}
}

// String implements fmt.Stringer for supervisor logging.
func (u *UptimeService) String() string {
	return u.name
}
