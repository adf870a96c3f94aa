// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaintenanceInterval is used when MaintenanceConfig.Interval is unset.
const DefaultMaintenanceInterval = 10 * time.Minute

// GarbageCollector reclaims storage space. Satisfied by *history.BadgerStore.
type GarbageCollector interface {
	RunGC() error
}

// CacheJanitor drops expired cache entries. Satisfied by *media.Analyzer.
type CacheJanitor interface {
	CleanupExpired() int
}

// MaintenanceConfig configures the maintenance service.
type MaintenanceConfig struct {
	// Interval between maintenance passes.
	Interval time.Duration

	// RunOnStartup performs a pass before the first tick.
	RunOnStartup bool
}

// MaintenanceService periodically garbage-collects the history store and
// sweeps the media analysis cache. Either dependency may be nil.
type MaintenanceService struct {
	gc      GarbageCollector
	janitor CacheJanitor
	config  MaintenanceConfig
	logger  zerolog.Logger
	name    string
}

// NewMaintenanceService creates the service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewMaintenanceService(gc GarbageCollector, janitor CacheJanitor, cfg MaintenanceConfig, logger zerolog.Logger) *MaintenanceService {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultMaintenanceInterval
	}
	return &MaintenanceService{
		gc:      gc,
		janitor: janitor,
		config:  cfg,
		logger:  logger.With().Str("service", "maintenance").Logger(),
		name:    "maintenance-service",
	}
}

// Serve implements suture.Service. Pass failures are logged, never returned.
func (s *MaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("Maintenance service starting")

	if s.config.RunOnStartup {
		s.runOnce()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

// runOnce performs one maintenance pass.
func (s *MaintenanceService) runOnce() {
	start := time.Now()
	evicted := 0

	if s.janitor != nil {
		evicted = s.janitor.CleanupExpired()
	}
	if s.gc != nil {
		if err := s.gc.RunGC(); err != nil {
			s.logger.Warn().Err(err).Msg("History garbage collection failed")
		}
	}

	s.logger.Debug().
		Int("cache_evicted", evicted).
		Dur("duration", time.Since(start)).
		Msg("Maintenance pass complete")
}

// String implements fmt.Stringer for suture's logs.
func (s *MaintenanceService) String() string {
	return s.name
}
