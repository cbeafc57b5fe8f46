// Sport Buddy - Social Sport Matching Backend
// Copyright 2026 Sport Buddy contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sportbuddy/sportbuddy

/*
Package supervisor provides process supervision for Sport Buddy using suture v4.

This package implements a small supervisor tree that manages the lifecycle of
the application's long-running services with automatic restart, failure
isolation, and graceful shutdown.

# Overview

The tree separates request serving from background upkeep:

	RootSupervisor ("sportbuddy")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── OpsSupervisor ("ops-layer")
	    └── UptimeService

A crash in the ops layer (metrics upkeep) never interrupts the HTTP server,
and each layer restarts independently with its own failure counting.

# Key Features

Automatic Restart:
  - Crashed services are restarted with exponential backoff
  - Configurable failure thresholds and decay rates

Graceful Shutdown:
  - Context cancellation triggers orderly shutdown
  - Configurable shutdown timeout per service
  - UnstoppedServiceReport for debugging shutdown hangs

Structured Logging:
  - Supervisor events flow through sutureslog into the application's
    zerolog logger (see logging.NewSlogLogger)

# Usage

	logger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	tree.AddOpsService(services.NewUptimeService(startTime, 15*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
