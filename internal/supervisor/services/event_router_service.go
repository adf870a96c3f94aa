// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

// EventRouter is the lifecycle of the prediction event bus.
// Satisfied by *events.Bus.
type EventRouter interface {
	Run(ctx context.Context) error
	IsRunning() bool
}

// EventRouterService runs the event router under supervision.
//
// A watermill router cannot be started twice, so an unexpected stop is
// reported with suture.ErrDoNotRestart instead of being retried. The API
// keeps serving predictions; only history recording stops.
type EventRouterService struct {
	router EventRouter
	logger zerolog.Logger
	name   string
}

// NewEventRouterService wraps router.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEventRouterService(router EventRouter, logger zerolog.Logger) *EventRouterService {
	return &EventRouterService{
		router: router,
		logger: logger.With().Str("service", "event-router").Logger(),
		name:   "event-router",
	}
}

// Serve implements suture.Service.
func (s *EventRouterService) Serve(ctx context.Context) error {
	if s.router.IsRunning() {
		return fmt.Errorf("event router already running: %w", suture.ErrDoNotRestart)
	}

	err := s.router.Run(ctx)
	if ctx.Err() != nil {
		s.logger.Info().Msg("Event router stopped")
		return ctx.Err()
	}

	s.logger.Error().Err(err).Msg("Event router stopped unexpectedly, prediction history will not be recorded")
	if err != nil {
		return fmt.Errorf("event router: %w: %w", err, suture.ErrDoNotRestart)
	}
	return fmt.Errorf("event router exited: %w", suture.ErrDoNotRestart)
}

// String implements fmt.Stringer for suture's logs.
func (s *EventRouterService) String() string {
	return s.name
}
