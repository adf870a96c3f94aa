// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/engagepredict/internal/ensemble"
	"github.com/tomtom215/engagepredict/internal/metrics"
)

// BreakerName labels the ensemble breaker in metrics and logs.
const BreakerName = "ensemble"

// BreakerConfig controls the circuit breaker around ensemble inference.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive classifier errors that
	// opens the breaker.
	FailureThreshold uint32

	// Timeout is how long the breaker stays open before a trial request.
	Timeout time.Duration

	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32
}

// DefaultBreakerConfig returns the production breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
		MaxRequests:      1,
	}
}

func (c BreakerConfig) validate() error {
	if c.FailureThreshold == 0 {
		return errors.New("breaker failure threshold must be at least 1")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("breaker timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreaker(cfg BreakerConfig, logger zerolog.Logger) *gobreaker.CircuitBreaker[*ensemble.Prediction] {
	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1
	}

	return gobreaker.NewCircuitBreaker[*ensemble.Prediction](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: maxRequests,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("Ensemble circuit breaker state transition")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
		},
	})
}

// isRejection reports whether err came from the breaker rather than a
// classifier.
func isRejection(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
