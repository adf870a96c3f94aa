// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package supervisor provides process supervision for EngagePredict using suture v4.

# Overview

Long-running services are organized into three layers for failure isolation:

	RootSupervisor ("engagepredict")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService (history GC, media cache sweep)
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService (prediction events to history)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A failing maintenance pass or event router never takes the API down.
Crashed services restart with suture's backoff; after FailureThreshold
failures within the decay window the layer backs off for FailureBackoff.

# Startup Order

The event bus is an in-process gochannel pub/sub that drops messages
published before its subscribers exist. The server therefore starts the
tree, waits for the bus to report running, and only then adds the API
service:

	errCh := tree.ServeBackground(ctx)
	tree.AddMessagingService(services.NewEventRouterService(bus, logger))
	<-bus.Running()
	tree.AddAPIService(services.NewHTTPServerService(server, timeout, logger))

# Logging

Supervisor events (service panics, restarts, backoff) are logged through
sutureslog with a *slog.Logger bridged to zerolog by
logging.NewSlogLogger.

# Shutdown

Canceling the Serve context stops every layer. Services that miss
ShutdownTimeout are listed by UnstoppedServiceReport.
*/
package supervisor
