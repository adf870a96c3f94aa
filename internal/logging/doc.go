// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package logging provides the zerolog-based structured logging used across
// EngagePredict.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("History write failed")
//
// # Components
//
// Long-lived components take a zerolog.Logger by injection and tag it:
//
//	logger := logging.WithComponent("history")
//
// The pure scoring packages do not log.
//
// # Request Context
//
// The API middleware stores a request_id and correlation_id in the request
// context. Ctx adds both to every entry. The correlation ID is copied into
// event bus metadata so history writes can be traced back to the request.
//
// # slog Bridge
//
// Suture and Watermill log through log/slog. NewSlogLogger and SlogHandler
// route those records into the global zerolog stream.
package logging
