// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// Collectors are process-global, so tests assert deltas rather than
// absolute values.

func TestRecordPrediction(t *testing.T) {
	before := testutil.ToFloat64(PredictionsTotal.WithLabelValues("fallback", "High"))

	RecordPrediction("fallback", "High", 88, 250*time.Microsecond)

	after := testutil.ToFloat64(PredictionsTotal.WithLabelValues("fallback", "High"))
	if after-before != 1 {
		t.Errorf("predictions_total delta = %v, want 1", after-before)
	}

	var m dto.Metric
	if err := PredictionScore.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("prediction_score histogram has no samples")
	}
}

func TestSetModelReady(t *testing.T) {
	SetModelReady(true)
	if got := testutil.ToFloat64(ModelReady); got != 1 {
		t.Errorf("model_ready = %v, want 1", got)
	}
	SetModelReady(false)
	if got := testutil.ToFloat64(ModelReady); got != 0 {
		t.Errorf("model_ready = %v, want 0", got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	tests := []struct {
		to   string
		want float64
	}{
		{"open", 2},
		{"half-open", 1},
		{"closed", 0},
	}

	for _, tt := range tests {
		RecordCircuitBreakerTransition("test-breaker", "closed", tt.to)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != tt.want {
			t.Errorf("state after transition to %s = %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestRecordHistoryWrite(t *testing.T) {
	okBefore := testutil.ToFloat64(HistoryWritesTotal.WithLabelValues("success"))
	errBefore := testutil.ToFloat64(HistoryWritesTotal.WithLabelValues("error"))

	RecordHistoryWrite(nil)
	RecordHistoryWrite(errors.New("disk full"))

	if d := testutil.ToFloat64(HistoryWritesTotal.WithLabelValues("success")) - okBefore; d != 1 {
		t.Errorf("success delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(HistoryWritesTotal.WithLabelValues("error")) - errBefore; d != 1 {
		t.Errorf("error delta = %v, want 1", d)
	}
}

func TestRecordMediaCache(t *testing.T) {
	hits := testutil.ToFloat64(MediaCacheHits)
	misses := testutil.ToFloat64(MediaCacheMisses)

	RecordMediaCache(true)
	RecordMediaCache(false)
	RecordMediaCache(false)

	if d := testutil.ToFloat64(MediaCacheHits) - hits; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(MediaCacheMisses) - misses; d != 2 {
		t.Errorf("misses delta = %v, want 2", d)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("active requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/predict", "200"))
	RecordAPIRequest("POST", "/api/v1/predict", "200", 15*time.Millisecond)
	if d := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/api/v1/predict", "200")) - before; d != 1 {
		t.Errorf("api_requests_total delta = %v, want 1", d)
	}
}
