// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package services provides suture.Service wrappers for EngagePredict components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve pattern and implements fmt.Stringer so supervisor logs name it.

# Available Services

API Server (HTTPServerService, "api-server"):
  - Wraps *http.Server; ListenAndServe runs in a goroutine
  - On cancellation calls Shutdown with a bounded timeout

Event Router (EventRouterService, "event-router"):
  - Runs the watermill router behind the prediction event bus
  - An unexpected stop returns suture.ErrDoNotRestart; a stopped watermill
    router cannot be run again

Maintenance (MaintenanceService, "maintenance-service"):
  - Sweeps expired media analysis cache entries
  - Runs BadgerDB value log GC on the history store
  - Failures are logged and the service keeps ticking

# Usage Example

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())

	tree.AddDataService(services.NewMaintenanceService(store, analyzer, services.MaintenanceConfig{}, logger))
	tree.AddMessagingService(services.NewEventRouterService(bus, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))

	errCh := tree.ServeBackground(ctx)

Dependencies are small interfaces (HTTPServer, EventRouter,
GarbageCollector, CacheJanitor) so this package does not import the
components it supervises.
*/
package services
