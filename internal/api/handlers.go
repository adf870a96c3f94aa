// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"context"
	"time"

	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/media"
	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
	"github.com/tomtom215/engagepredict/internal/recommend"
)

// Version is reported by the service info and health endpoints. Overridden
// at build time with -ldflags.
var Version = "dev"

// ServiceName is reported by the service info endpoint.
const ServiceName = "engagepredict"

// Predictor is the engine surface used by the handlers.
//
// Satisfied by *engine.Engine.
type Predictor interface {
	Predict(ctx context.Context, post models.Post) (*models.EngagementResult, error)
	Recommend(score int, post models.Post) recommend.Recommendations
	AnalyzeMedia(ctx context.Context, data []byte, contentType string) (*models.MediaInfo, error)
	IsReady() bool
	Source() models.ScoringSource
	Profiles() *platform.Registry
}

// HistoryReader serves the history endpoints.
//
// Satisfied by *history.BadgerStore.
type HistoryReader interface {
	Get(ctx context.Context, id string) (*history.Record, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*history.Record, error)
	Delete(ctx context.Context, id, userID string) error
	ClampLimit(limit int) int
}

// EventPublisher publishes prediction events.
//
// Satisfied by *events.Bus.
type EventPublisher interface {
	PublishPrediction(ctx context.Context, rec *history.Record) error
}

// HandlerConfig holds handler limits.
type HandlerConfig struct {
	// MaxUploadBytes bounds /analyze-media uploads.
	MaxUploadBytes int64

	// HeaderIdentity is true when no JWT secret is configured and the
	// userId body field may identify the caller.
	HeaderIdentity bool
}

// DefaultMaxUploadBytes matches media.max_upload_bytes.
const DefaultMaxUploadBytes = 50 << 20

// Handler contains the dependencies of the API handlers.
//
// Handler methods are split across files:
//   - handlers_health.go: service info, health and platforms
//   - handlers_predict.go: prediction and media analysis
//   - handlers_history.go: per-user prediction history
type Handler struct {
	engine    Predictor
	history   HistoryReader  // nil when history is disabled
	publisher EventPublisher // nil when history is disabled
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates the API handler. history and publisher may be nil, in
// which case predictions are not recorded and the history routes answer 503.
func NewHandler(engine Predictor, historyReader HistoryReader, publisher EventPublisher, cfg HandlerConfig) *Handler {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Handler{
		engine:    engine,
		history:   historyReader,
		publisher: publisher,
		config:    cfg,
		startTime: time.Now(),
	}
}

// supportedMediaTypes is reported in 415 responses.
func supportedMediaTypes() []string {
	return media.SupportedTypes()
}
