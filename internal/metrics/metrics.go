// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Prediction throughput, latency and score distribution
// - Ensemble readiness and circuit breaker state
// - Media analysis and its cache
// - Prediction history writes and event delivery
// - API endpoint latency and throughput

var (
	// Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagepredict_predictions_total",
			Help: "Total number of engagement predictions",
		},
		[]string{"source", "tier"}, // source: "ensemble", "fallback"
	)

	PredictionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "engagepredict_prediction_score",
			Help:    "Distribution of engagement scores (0-100)",
			Buckets: prometheus.LinearBuckets(10, 10, 10), // 10, 20, ..., 100
		},
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engagepredict_prediction_duration_seconds",
			Help:    "Duration of engagement predictions in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5}, // In-process inference is sub-millisecond
		},
		[]string{"source"},
	)

	EnsembleFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagepredict_ensemble_failures_total",
			Help: "Total number of ensemble inference failures served by the fallback scorer",
		},
	)

	ModelReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engagepredict_model_ready",
			Help: "Whether the trained ensemble is loaded (1) or the fallback is in use (0)",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Media Metrics
	MediaAnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagepredict_media_analyses_total",
			Help: "Total number of media analyses by result",
		},
		[]string{"result"}, // "image", "video", "default", "unsupported", "decode_failed"
	)

	MediaCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagepredict_media_cache_hits_total",
			Help: "Total number of media analysis cache hits",
		},
	)

	MediaCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "engagepredict_media_cache_misses_total",
			Help: "Total number of media analysis cache misses",
		},
	)

	// History Metrics
	HistoryWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagepredict_history_writes_total",
			Help: "Total number of prediction history writes by result",
		},
		[]string{"result"}, // "success", "error"
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engagepredict_events_published_total",
			Help: "Total number of events published to the in-process bus",
		},
		[]string{"topic", "result"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordPrediction records one completed prediction.
func RecordPrediction(source, tier string, score int, duration time.Duration) {
	PredictionsTotal.WithLabelValues(source, tier).Inc()
	PredictionScore.Observe(float64(score))
	PredictionDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordEnsembleFailure counts an ensemble error that was served by the
// fallback scorer.
func RecordEnsembleFailure() {
	EnsembleFailures.Inc()
}

// SetModelReady records whether the trained ensemble is in use.
func SetModelReady(ready bool) {
	if ready {
		ModelReady.Set(1)
	} else {
		ModelReady.Set(0)
	}
}

// RecordCircuitBreakerRequest records a call through a named breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a state change and updates the
// state gauge.
func RecordCircuitBreakerTransition(name, from, to string) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
}

func breakerStateValue(state string) float64 {
	switch state {
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return 0
	}
}

// RecordMediaAnalysis counts a media analysis by result.
func RecordMediaAnalysis(result string) {
	MediaAnalysesTotal.WithLabelValues(result).Inc()
}

// RecordMediaCache counts a media cache lookup.
func RecordMediaCache(hit bool) {
	if hit {
		MediaCacheHits.Inc()
	} else {
		MediaCacheMisses.Inc()
	}
}

// RecordHistoryWrite counts a history write.
func RecordHistoryWrite(err error) {
	if err != nil {
		HistoryWritesTotal.WithLabelValues("error").Inc()
		return
	}
	HistoryWritesTotal.WithLabelValues("success").Inc()
}

// RecordEventPublish counts an event publish attempt.
func RecordEventPublish(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
