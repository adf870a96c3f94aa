// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package api provides the HTTP REST API layer for EngagePredict.

Every response uses the same envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {...}}}

Key Components:

  - Router: chi route configuration and the global middleware stack
  - Handler: request handlers backed by the prediction engine and history store
  - ResponseWriter: envelope formatting and error-code mapping
  - ChiMiddleware: go-chi/cors and go-chi/httprate factories

Endpoints:

  - GET  /                              service info
  - GET  /metrics                       Prometheus exposition
  - GET  /swagger/*                     OpenAPI UI
  - GET  /api/v1/health                 status, model state, uptime
  - GET  /api/v1/health/live            liveness probe
  - GET  /api/v1/platforms              platform profiles
  - POST /api/v1/predict                score a post
  - POST /api/v1/analyze-media          describe an uploaded image or video
  - GET  /api/v1/history                caller's predictions, newest first
  - GET  /api/v1/history/{id}           one prediction
  - DELETE /api/v1/history/{id}         delete one prediction

Health endpoints are exempt from rate limiting. History routes require an
identity: a bearer token when a JWT secret is configured, otherwise the
X-User-ID header. /predict accepts anonymous callers; identified
predictions are published to the event bus and recorded asynchronously.

Status Codes:

  - 400 malformed JSON, validation failure, missing upload
  - 401 missing or invalid credentials
  - 403 history record owned by another user
  - 413 body or upload over its limit
  - 415 unsupported media type (details.supported_types)
  - 422 media that could not be decoded
  - 429 rate limit exceeded
  - 503 history disabled
*/
package api
