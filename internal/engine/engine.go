// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/engagepredict/internal/ensemble"
	"github.com/tomtom215/engagepredict/internal/fallback"
	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/feedback"
	"github.com/tomtom215/engagepredict/internal/media"
	"github.com/tomtom215/engagepredict/internal/metrics"
	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
	"github.com/tomtom215/engagepredict/internal/recommend"
)

// Count estimator bounds. Each count is trunc(base*m) + U[lo, hi] with
// m = score/50.
const (
	reachBase, reachLo, reachHi          = 500, 100, 500
	likesBase, likesLo, likesHi          = 50, 10, 50
	commentsBase, commentsLo, commentsHi = 10, 2, 15
)

// Deps are the collaborators of an Engine. Predictor may be nil, which
// selects the fallback scorer for the lifetime of the engine.
type Deps struct {
	Profiles  *platform.Registry
	Predictor *ensemble.Predictor
	Media     *media.Analyzer
	Logger    zerolog.Logger
	Rand      RandSource
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	breaker BreakerConfig
}

// WithBreaker overrides the ensemble circuit breaker settings.
func WithBreaker(cfg BreakerConfig) Option {
	return func(o *options) {
		o.breaker = cfg
	}
}

// Engine scores posts. It holds no per-request state and is safe for
// concurrent use.
type Engine struct {
	profiles  *platform.Registry
	predictor *ensemble.Predictor
	breaker   *gobreaker.CircuitBreaker[*ensemble.Prediction]
	media     *media.Analyzer
	rand      RandSource
	logger    zerolog.Logger
}

// New builds an engine. Missing Profiles, Media and Rand are replaced by
// their defaults.
//
//nolint:gocritic // hugeParam: deps passed by value for immutability
func New(deps Deps, opts ...Option) (*Engine, error) {
	o := options{breaker: DefaultBreakerConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.breaker.validate(); err != nil {
		return nil, err
	}

	logger := deps.Logger.With().Str("component", "engine").Logger()

	e := &Engine{
		profiles: deps.Profiles,
		media:    deps.Media,
		rand:     deps.Rand,
		logger:   logger,
	}
	if e.profiles == nil {
		e.profiles = platform.NewRegistry()
	}
	if e.media == nil {
		e.media = media.NewAnalyzer(media.Config{}, deps.Logger)
	}
	if e.rand == nil {
		e.rand = NewRandSource(DefaultSeed)
	}
	if deps.Predictor.IsReady() {
		e.predictor = deps.Predictor
		e.breaker = newBreaker(o.breaker, logger)
	}

	metrics.SetModelReady(e.IsReady())
	logger.Info().Str("source", string(e.Source())).Msg("Prediction engine initialized")
	return e, nil
}

// IsReady reports whether the trained ensemble is in use.
func (e *Engine) IsReady() bool {
	return e.predictor != nil
}

// Source returns the scoring variant selected at construction. Individual
// results may still come from the fallback when the ensemble fails.
func (e *Engine) Source() models.ScoringSource {
	if e.IsReady() {
		return models.SourceEnsemble
	}
	return models.SourceFallback
}

// BreakerState returns the ensemble breaker state, or "" without an ensemble.
func (e *Engine) BreakerState() string {
	if e.breaker == nil {
		return ""
	}
	return e.breaker.State().String()
}

// Profiles returns the platform registry.
func (e *Engine) Profiles() *platform.Registry {
	return e.profiles
}

// Predict scores a post. Malformed optional attributes resolve to defaults,
// and ensemble failures are served by the fallback scorer, so the only error
// is a done context.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func (e *Engine) Predict(ctx context.Context, post models.Post) (*models.EngagementResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	profile := e.profiles.Lookup(post.Platform)

	result := &models.EngagementResult{Source: models.SourceFallback}
	scored := false

	if e.predictor != nil {
		if pred, ok := e.predictEnsemble(post, profile); ok {
			result.Score = pred.Score
			result.Tier = pred.Tier
			result.Source = models.SourceEnsemble
			result.Confidence = pred.Confidence
			result.Votes = pred.Votes
			scored = true
		}
	}

	if !scored {
		fb := fallback.Score(post, profile)
		result.Score = fb.Score
		result.Tier = fb.Tier
	}

	result.Feedback = feedback.Generate(post, profile)
	result.PredictedReach, result.PredictedLikes, result.PredictedComments = e.estimateCounts(result.Score)

	metrics.RecordPrediction(string(result.Source), result.Tier.String(), result.Score, time.Since(start))
	return result, nil
}

//nolint:gocritic // hugeParam: post passed by value for immutability
func (e *Engine) predictEnsemble(post models.Post, profile platform.Profile) (*ensemble.Prediction, bool) {
	vec := features.Extract(post, profile)

	pred, err := e.breaker.Execute(func() (*ensemble.Prediction, error) {
		return e.predictor.Predict(vec)
	})
	if err == nil {
		metrics.RecordCircuitBreakerRequest(BreakerName, "success")
		return pred, true
	}

	if isRejection(err) {
		metrics.RecordCircuitBreakerRequest(BreakerName, "rejected")
		e.logger.Debug().Err(err).Msg("Ensemble unavailable, using fallback scorer")
		return nil, false
	}

	metrics.RecordCircuitBreakerRequest(BreakerName, "failure")
	metrics.RecordEnsembleFailure()
	e.logger.Error().Err(err).Str("platform", profile.Name).Msg("Ensemble prediction failed, using fallback scorer")
	return nil, false
}

// estimateCounts derives presentation estimates from the score. The draws
// are not part of the classification.
func (e *Engine) estimateCounts(score int) (reach, likes, comments int) {
	m := float64(score) / 50
	reach = int(reachBase*m) + uniform(e.rand, reachLo, reachHi)
	likes = int(likesBase*m) + uniform(e.rand, likesLo, likesHi)
	comments = int(commentsBase*m) + uniform(e.rand, commentsLo, commentsHi)
	return reach, likes, comments
}

// Recommend returns tips and priority actions for a scored post.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func (e *Engine) Recommend(score int, post models.Post) recommend.Recommendations {
	profile := e.profiles.Lookup(post.Platform)
	s := features.Measure(post, profile)
	return recommend.Generate(recommend.Input{
		Score:         score,
		Platform:      profile.Platform,
		Media:         post.Media,
		CaptionLength: s.CaptionLength,
		HashtagCount:  s.HashtagCount,
	})
}

// AnalyzeMedia describes uploaded media. Errors match media.ErrUnsupportedType
// or media.ErrDecodeFailed.
func (e *Engine) AnalyzeMedia(ctx context.Context, data []byte, contentType string) (*models.MediaInfo, error) {
	return e.media.Analyze(ctx, data, contentType)
}
