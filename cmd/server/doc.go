// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package main is the entry point for the EngagePredict server.

EngagePredict scores a proposed social media post 0-100, classifies it as
Low, Medium or High engagement, and returns feedback, improvement tips and
estimated reach, likes and comments. Scores come from a trained
three-model ensemble when its artifacts are present and from a
deterministic rule-based scorer otherwise.

# Application Architecture

	RootSupervisor ("engagepredict")
	├── DataSupervisor ("data-layer")
	│   └── MaintenanceService (history value log GC, media cache sweep)
	├── MessagingSupervisor ("messaging-layer")
	│   └── EventRouterService (prediction.recorded -> history store)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Ensemble: model artifacts from MODELS_DIR, or the fallback scorer
 4. Engine: platform profiles, media analyzer, circuit breaker
 5. Supervisor Tree: Suture v4 process supervision
 6. History: BadgerDB store and the watermill event bus (if enabled)
 7. HTTP Server: added only after the event bus is running

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=8000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Models
	MODELS_DIR=models            # manifest.json and model artifacts
	MODELS_REQUIRED=false        # fail startup instead of falling back

	# History
	HISTORY_ENABLED=true
	HISTORY_PATH=/data/history
	HISTORY_IN_MEMORY=false

	# Identity
	JWT_SECRET=<32+ chars>       # unset: X-User-ID header identity

	# Security
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

# Signal Handling

On SIGINT or SIGTERM the server:

 1. Stops the HTTP server, waiting for in-flight requests
 2. Stops the event router after queued predictions are recorded
 3. Closes the event bus and the history store
 4. Reports any services that failed to stop

# Usage Examples

Development:

	LOG_FORMAT=console HISTORY_IN_MEMORY=true go run ./cmd/server

Production:

	export JWT_SECRET=$(openssl rand -base64 32)
	export MODELS_DIR=/models MODELS_REQUIRED=true
	./engagepredict

# API Documentation

Swagger documentation is served at /swagger/index.html. Prometheus
metrics are exposed at /metrics.
*/
package main
