// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package ensemble

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/engagepredict/internal/ensemble/algorithms"
	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
)

// writeModelDir writes a complete, valid artifact set and returns its path.
// Every classifier strongly favours High when caption_length is positive.
func writeModelDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	zeros := make([]float64, features.Size)
	ones := make([]float64, features.Size)
	for i := range ones {
		ones[i] = 1
	}

	coef := make([][]float64, 3)
	for k := range coef {
		coef[k] = make([]float64, features.Size)
	}
	coef[0][features.CaptionLength] = 5 // "High" column in alphabetical order
	coef[1][features.CaptionLength] = -5

	point := func(v float64) []float64 {
		p := make([]float64, features.Size)
		p[features.CaptionLength] = v
		return p
	}

	files := map[string]any{
		ManifestFile: Manifest{
			SchemaVersion: SchemaVersion,
			FeatureCount:  features.Size,
			Classes:       []string{"High", "Low", "Medium"},
			Weights:       DefaultWeights(),
			Roles:         DefaultRoles(),
		},
		NormalizerFile: normalizerArtifact{Mean: zeros, Scale: ones},
		algorithms.NameLogisticRegression + ".json": algorithms.LogisticRegressionArtifact{
			Classes:   []string{"High", "Low", "Medium"},
			Coef:      coef,
			Intercept: []float64{0, 0, 0},
		},
		algorithms.NameRandomForest + ".json": algorithms.RandomForestArtifact{
			Classes: []string{"Low", "Medium", "High"},
			Trees: []algorithms.TreeArtifact{{Nodes: []algorithms.TreeNode{
				{Feature: features.CaptionLength, Threshold: 0, Left: 1, Right: 2},
				{Left: algorithms.LeafNode, Right: algorithms.LeafNode, Value: []float64{10, 0, 0}},
				{Left: algorithms.LeafNode, Right: algorithms.LeafNode, Value: []float64{0, 1, 9}},
			}}},
		},
		algorithms.NameKNN + ".json": algorithms.KNNArtifact{
			Classes: []string{"Low", "Medium", "High"},
			K:       1,
			Weights: algorithms.WeightsUniform,
			Points:  [][]float64{point(-1), point(1)},
			Labels:  []int{0, 2},
		},
	}

	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	t.Parallel()

	p, err := Load(writeModelDir(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !p.IsReady() {
		t.Fatal("IsReady() = false")
	}

	var v features.Vector
	v[features.CaptionLength] = 2
	got, err := p.Predict(v)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Tier != models.TierHigh {
		t.Errorf("Tier = %v, want High (p=%v)", got.Tier, got.Probabilities)
	}
	if got.Score < models.TierHighThreshold {
		t.Errorf("Score = %d, want >= %d", got.Score, models.TierHighThreshold)
	}
	for _, vote := range got.Votes {
		if vote.Tier != models.TierHigh {
			t.Errorf("%s voted %v, want High", vote.Model, vote.Tier)
		}
	}

	v[features.CaptionLength] = -2
	got, err = p.Predict(v)
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	if got.Tier != models.TierLow {
		t.Errorf("Tier = %v, want Low (p=%v)", got.Tier, got.Probabilities)
	}
}

func TestLoad_AllOrNothing(t *testing.T) {
	t.Parallel()

	for _, missing := range []string{ManifestFile, NormalizerFile, "logistic_regression.json", "random_forest.json", "knn.json"} {
		t.Run(missing, func(t *testing.T) {
			t.Parallel()
			dir := writeModelDir(t)
			if err := os.Remove(filepath.Join(dir, missing)); err != nil {
				t.Fatal(err)
			}
			p, err := Load(dir)
			if !errors.Is(err, ErrArtifactMissing) {
				t.Errorf("Load() error = %v, want ErrArtifactMissing", err)
			}
			if p != nil {
				t.Error("Load() returned a predictor alongside an error")
			}
		})
	}
}

func TestLoad_InvalidManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
	}{
		{"schema", `{"schema_version":2,"feature_count":14,"weights":{"primary":0.3,"secondary":0.4,"tertiary":0.3}}`},
		{"feature count", `{"schema_version":1,"feature_count":13,"weights":{"primary":0.3,"secondary":0.4,"tertiary":0.3}}`},
		{"weights", `{"schema_version":1,"feature_count":14,"weights":{"primary":0.5,"secondary":0.4,"tertiary":0.3}}`},
		{"classes", `{"schema_version":1,"feature_count":14,"classes":["Low","High"],"weights":{"primary":0.3,"secondary":0.4,"tertiary":0.3}}`},
		{"unknown algorithm", `{"schema_version":1,"feature_count":14,"weights":{"primary":0.3,"secondary":0.4,"tertiary":0.3},"roles":{"primary":"svm","secondary":"random_forest","tertiary":"knn"}}`},
		{"not json", `{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := writeModelDir(t)
			if err := os.WriteFile(filepath.Join(dir, ManifestFile), []byte(tt.manifest), 0o600); err != nil {
				t.Fatal(err)
			}
			if p, err := Load(dir); err == nil || p != nil {
				t.Errorf("Load() = (%v, %v), want error and nil predictor", p, err)
			}
		})
	}
}

func TestLoad_CorruptClassifier(t *testing.T) {
	t.Parallel()

	dir := writeModelDir(t)
	if err := os.WriteFile(filepath.Join(dir, "knn.json"), []byte(`{"classes":["Low","Medium","High"],"k":5,"points":[],"labels":[]}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if p, err := Load(dir); err == nil || p != nil {
		t.Errorf("Load() = (%v, %v), want error and nil predictor", p, err)
	}
}

func TestLoadOrFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	if p := LoadOrFallback(t.TempDir(), logger); p != nil {
		t.Error("LoadOrFallback() on an empty dir returned a predictor")
	}
	if !strings.Contains(buf.String(), "fallback") {
		t.Errorf("log output %q does not mention the fallback", buf.String())
	}

	if p := LoadOrFallback(writeModelDir(t), logger); !p.IsReady() {
		t.Error("LoadOrFallback() on a valid dir is not ready")
	}
}
