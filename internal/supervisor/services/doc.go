// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package services provides suture.Service wrappers for Sport Buddy components.

Each wrapper adapts a component's lifecycle to suture's context-aware Serve
pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Available services:

HTTP Server (HTTPServerService):
  - Wraps *http.Server, translating blocking ListenAndServe into a
    supervised service with graceful Shutdown on context cancellation

Uptime Metrics (UptimeService):
  - Publishes process uptime to the app_uptime_seconds gauge on a ticker
*/
package services
