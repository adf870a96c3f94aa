// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto at
package initialization and exposed by the API at /metrics.

# Available Metrics

Prediction Metrics:
  - engagepredict_predictions_total: Predictions by scoring source and tier (counter)
  - engagepredict_prediction_score: Score distribution (histogram)
  - engagepredict_prediction_duration_seconds: Scoring latency by source (histogram)
  - engagepredict_ensemble_failures_total: Ensemble errors served by the fallback (counter)
  - engagepredict_model_ready: 1 when the trained ensemble is loaded (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state, 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Calls by result (counter)
  - circuit_breaker_state_transitions_total: State changes (counter)

Media Metrics:
  - engagepredict_media_analyses_total: Analyses by result (counter)
  - engagepredict_media_cache_hits_total / _misses_total (counters)

History Metrics:
  - engagepredict_history_writes_total: Writes by result (counter)
  - engagepredict_events_published_total: Bus publishes by topic and result (counter)

API Metrics:
  - api_requests_total: Requests by method, endpoint, status_code (counter)
  - api_request_duration_seconds: Latency by method, endpoint (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

# Usage Example

	start := time.Now()
	result, err := engine.Predict(ctx, post)
	if err == nil {
	    metrics.RecordPrediction(string(result.Source), result.Tier.String(), result.Score, time.Since(start))
	}
*/
package metrics
