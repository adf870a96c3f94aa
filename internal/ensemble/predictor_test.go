// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package ensemble

import (
	"errors"
	"math"
	"testing"

	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
)

// fixedClassifier returns the same distribution for every input.
type fixedClassifier struct {
	name  string
	proba models.ClassProbabilities
	err   error
	seen  []float64
}

func (f *fixedClassifier) Name() string { return f.name }

func (f *fixedClassifier) PredictProba(x []float64) (models.ClassProbabilities, error) {
	f.seen = x
	return f.proba, f.err
}

func identityNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	n, err := NewNormalizer(make([]float64, features.Size), make([]float64, features.Size))
	if err != nil {
		t.Fatalf("NewNormalizer() error = %v", err)
	}
	return n
}

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	if math.Abs(w.Sum()-1) > 1e-6 {
		t.Errorf("Sum() = %v, want 1", w.Sum())
	}
	if err := w.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestWeights_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		w       Weights
		wantErr bool
	}{
		{"default", DefaultWeights(), false},
		{"equal thirds", Weights{1.0 / 3, 1.0 / 3, 1.0 / 3}, false},
		{"short", Weights{0.3, 0.3, 0.3}, true},
		{"negative", Weights{1.2, -0.1, -0.1}, true},
		{"nan", Weights{math.NaN(), 0.5, 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.w.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizer(t *testing.T) {
	t.Parallel()

	mean := make([]float64, features.Size)
	scale := make([]float64, features.Size)
	mean[0], scale[0] = 100, 50
	scale[1] = 0 // treated as 1

	n, err := NewNormalizer(mean, scale)
	if err != nil {
		t.Fatalf("NewNormalizer() error = %v", err)
	}

	var v features.Vector
	v[0], v[1] = 200, 7
	out := n.Transform(v)
	if out[0] != 2 {
		t.Errorf("out[0] = %v, want 2", out[0])
	}
	if out[1] != 7 {
		t.Errorf("out[1] = %v, want 7", out[1])
	}

	if _, err := NewNormalizer(mean[:3], scale); err == nil {
		t.Error("NewNormalizer() with short mean should fail")
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		p    models.ClassProbabilities
		want int
	}{
		{"all low", models.ClassProbabilities{1, 0, 0}, 25},
		{"all medium", models.ClassProbabilities{0, 1, 0}, 62},
		{"all high", models.ClassProbabilities{0, 0, 1}, 95},
		{"mixed", models.ClassProbabilities{0.2, 0.3, 0.5}, 71},           // 71.1
		{"fraction rounds", models.ClassProbabilities{0, 0.75, 0.25}, 70}, // 70.25
		{"rounds up", models.ClassProbabilities{0.5, 0, 0.5}, 60},         // 60.0
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(tt.p); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.p, got, tt.want)
			}
		})
	}
}

func TestScore_MonotonicInHigh(t *testing.T) {
	t.Parallel()

	// Shifting mass from Medium to High never lowers the score.
	prev := -1
	for i := 0; i <= 100; i++ {
		h := float64(i) / 100 * 0.8
		p := models.ClassProbabilities{0.2, 0.8 - h, h}
		s := Score(p)
		if s < prev {
			t.Fatalf("score decreased from %d to %d at High=%v", prev, s, h)
		}
		prev = s
	}
}

func TestPredictor_Predict(t *testing.T) {
	t.Parallel()

	lr := &fixedClassifier{name: "lr", proba: models.ClassProbabilities{0.1, 0.3, 0.6}}
	rf := &fixedClassifier{name: "rf", proba: models.ClassProbabilities{0.2, 0.2, 0.6}}
	knn := &fixedClassifier{name: "knn", proba: models.ClassProbabilities{0, 1, 0}}

	p, err := NewPredictor(identityNormalizer(t), DefaultWeights(), lr, rf, knn)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}
	if !p.IsReady() {
		t.Fatal("IsReady() = false, want true")
	}

	var v features.Vector
	v[features.CaptionLength] = 150
	got, err := p.Predict(v)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}

	// 0.3*lr + 0.4*rf + 0.3*knn
	want := models.ClassProbabilities{0.11, 0.47, 0.42}
	for i := range want {
		if math.Abs(got.Probabilities[i]-want[i]) > 1e-9 {
			t.Fatalf("Probabilities = %v, want %v", got.Probabilities, want)
		}
	}
	if got.Tier != models.TierMedium {
		t.Errorf("Tier = %v, want Medium", got.Tier)
	}
	if math.Abs(got.Confidence-0.47) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.47", got.Confidence)
	}
	// 0.11*25 + 0.47*62 + 0.42*95 = 2.75 + 29.14 + 39.9 = 71.79
	if got.Score != 72 {
		t.Errorf("Score = %d, want 72", got.Score)
	}
	if len(got.Votes) != 3 || got.Votes[0].Role != RolePrimary || got.Votes[2].Tier != models.TierMedium {
		t.Errorf("Votes = %+v", got.Votes)
	}
	if lr.seen[features.CaptionLength] != 150 {
		t.Errorf("classifier saw %v, want normalized vector", lr.seen)
	}
}

func TestPredictor_TieBreaksLow(t *testing.T) {
	t.Parallel()

	same := &fixedClassifier{name: "same", proba: models.ClassProbabilities{0.5, 0.5, 0}}
	p, err := NewPredictor(identityNormalizer(t), DefaultWeights(), same, same, same)
	if err != nil {
		t.Fatalf("NewPredictor() error = %v", err)
	}
	got, err := p.Predict(features.Vector{})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Tier != models.TierLow {
		t.Errorf("Tier = %v, want Low", got.Tier)
	}
}

func TestPredictor_ClassifierFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name string
		bad  *fixedClassifier
	}{
		{"error", &fixedClassifier{name: "bad", err: boom}},
		{"nan", &fixedClassifier{name: "bad", proba: models.ClassProbabilities{math.NaN(), 0, 1}}},
		{"unnormalized", &fixedClassifier{name: "bad", proba: models.ClassProbabilities{1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok := &fixedClassifier{name: "ok", proba: models.ClassProbabilities{0, 0, 1}}
			p, err := NewPredictor(identityNormalizer(t), DefaultWeights(), ok, tt.bad, ok)
			if err != nil {
				t.Fatalf("NewPredictor() error = %v", err)
			}
			if _, err := p.Predict(features.Vector{}); err == nil {
				t.Error("Predict() should fail")
			}
		})
	}
}

func TestNewPredictor_RequiresEveryComponent(t *testing.T) {
	t.Parallel()

	c := &fixedClassifier{name: "c", proba: models.ClassProbabilities{1, 0, 0}}
	n := identityNormalizer(t)

	if _, err := NewPredictor(nil, DefaultWeights(), c, c, c); err == nil {
		t.Error("missing normalizer should fail")
	}
	if _, err := NewPredictor(n, DefaultWeights(), c, nil, c); err == nil {
		t.Error("missing classifier should fail")
	}
	if _, err := NewPredictor(n, Weights{1, 1, 1}, c, c, c); err == nil {
		t.Error("bad weights should fail")
	}

	var nilPredictor *Predictor
	if nilPredictor.IsReady() {
		t.Error("nil predictor reports ready")
	}
	if _, err := nilPredictor.Predict(features.Vector{}); !errors.Is(err, ErrNotReady) {
		t.Errorf("Predict() on nil = %v, want ErrNotReady", err)
	}
}
