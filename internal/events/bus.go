// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/logging"
	"github.com/tomtom215/engagepredict/internal/metrics"
)

// Topics
const (
	TopicPredictionRecorded = "prediction.recorded"
	TopicPoisoned           = "prediction.poison"
)

// Metadata keys copied from the request context.
const (
	MetadataCorrelationID = "correlation_id"
	MetadataRequestID     = "request_id"
)

// BusConfig holds configuration for the event bus.
type BusConfig struct {
	// OutputBuffer is the per-subscriber channel buffer.
	OutputBuffer int64

	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	// Retry configuration
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64
}

// DefaultBusConfig returns production defaults.
func DefaultBusConfig() BusConfig {
	return BusConfig{
		OutputBuffer:         256,
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     2 * time.Second,
		RetryMultiplier:      2.0,
	}
}

// Bus is the in-process event bus. It owns a Watermill gochannel pub/sub
// and a router with panic recovery, retry and a poison topic for messages
// that still fail after the retries.
type Bus struct {
	pubsub *gochannel.GoChannel
	router *message.Router
	logger zerolog.Logger
}

// NewBus creates the bus. Handlers are registered before Run.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBus(cfg BusConfig, logger zerolog.Logger) (*Bus, error) {
	defaults := DefaultBusConfig()
	if cfg.OutputBuffer <= 0 {
		cfg.OutputBuffer = defaults.OutputBuffer
	}
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = defaults.CloseTimeout
	}
	if cfg.RetryMultiplier <= 0 {
		cfg.RetryMultiplier = defaults.RetryMultiplier
	}

	wmLogger := watermill.NewSlogLogger(logging.NewSlogLogger("events"))

	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: cfg.OutputBuffer,
	}, wmLogger)

	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: cfg.CloseTimeout}, wmLogger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	// Middleware runs outer to inner in the order added:
	// 1. PoisonQueue - park messages that failed every retry
	// 2. Recoverer - convert handler panics to errors
	// 3. Retry - exponential backoff for transient failures
	poison, err := middleware.PoisonQueue(pubsub, TopicPoisoned)
	if err != nil {
		return nil, fmt.Errorf("create poison queue middleware: %w", err)
	}
	router.AddMiddleware(poison)
	router.AddMiddleware(middleware.Recoverer)

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          wmLogger,
	}
	router.AddMiddleware(retry.Middleware)

	return &Bus{
		pubsub: pubsub,
		router: router,
		logger: logger.With().Str("component", "events").Logger(),
	}, nil
}

// PublishPrediction publishes a prediction.recorded event for rec. The
// correlation and request IDs in ctx travel in the message metadata.
func (b *Bus) PublishPrediction(ctx context.Context, rec *history.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal prediction event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataCorrelationID, id)
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		msg.Metadata.Set(MetadataRequestID, id)
	}

	err = b.pubsub.Publish(TopicPredictionRecorded, msg)
	metrics.RecordEventPublish(TopicPredictionRecorded, err)
	if err != nil {
		return fmt.Errorf("publish %s: %w", TopicPredictionRecorded, err)
	}
	return nil
}

// Subscribe exposes the underlying pub/sub for consumers outside the router.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Run starts the router and blocks until ctx is canceled or Close is called.
func (b *Bus) Run(ctx context.Context) error {
	b.logger.Info().Int("handlers", len(b.router.Handlers())).Msg("Event router starting")
	return b.router.Run(ctx)
}

// Running returns a channel that closes once every handler is subscribed.
func (b *Bus) Running() <-chan struct{} {
	return b.router.Running()
}

// IsRunning reports whether the router is processing messages.
func (b *Bus) IsRunning() bool {
	return b.router.IsRunning()
}

// Close stops the router, waiting for in-flight handlers, then closes the
// pub/sub.
func (b *Bus) Close() error {
	routerErr := b.router.Close()
	pubsubErr := b.pubsub.Close()
	return errors.Join(routerErr, pubsubErr)
}

// contextFromMessage rebuilds the logging context carried in metadata.
func contextFromMessage(msg *message.Message) context.Context {
	ctx := msg.Context()
	if id := msg.Metadata.Get(MetadataCorrelationID); id != "" {
		ctx = logging.ContextWithCorrelationID(ctx, id)
	}
	if id := msg.Metadata.Get(MetadataRequestID); id != "" {
		ctx = logging.ContextWithRequestID(ctx, id)
	}
	return ctx
}
