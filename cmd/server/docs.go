// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package main provides the EngagePredict HTTP server
//
// @title EngagePredict API
// @version 1.0
// @description Social media engagement prediction for Instagram, TikTok, YouTube, Twitter and Facebook posts.
// @description
// @description ## Identity
// @description
// @description When the server has a JWT secret, send `Authorization: Bearer <token>`.
// @description Otherwise identify with the `X-User-ID` header. Anonymous predictions are not recorded.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health endpoints are exempt.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "VALIDATION_FAILED", "message": "...", "details": {}},
// @description   "meta": {"request_id": "...", "timestamp": "2026-03-01T12:00:00Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/engagepredict/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer JWT. The subject claim is the user ID.
//
// @tag.name Core
// @tag.description Service info, health checks and platform profiles
//
// @tag.name Prediction
// @tag.description Engagement scoring and media analysis
//
// @tag.name History
// @tag.description The caller's recorded predictions
package main
