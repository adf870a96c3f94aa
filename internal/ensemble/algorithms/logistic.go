// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package algorithms

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagepredict/internal/models"
)

// LogisticRegressionArtifact is the serialized multinomial logistic
// regression model.
type LogisticRegressionArtifact struct {
	Classes   []string    `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LogisticRegression scores each class linearly and converts the scores to
// probabilities with a softmax:
//
//	z_k = intercept_k + sum_j coef_kj * x_j
//	p_k = exp(z_k) / sum_i exp(z_i)
type LogisticRegression struct {
	baseClassifier
	coef      [][]float64
	intercept []float64
}

// DecodeLogisticRegression parses and validates a logistic regression
// artifact for inputs of the given width.
func DecodeLogisticRegression(data []byte, features int) (*LogisticRegression, error) {
	var a LogisticRegressionArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", NameLogisticRegression, err)
	}
	return NewLogisticRegression(&a, features)
}

// NewLogisticRegression builds a classifier from an in-memory artifact.
func NewLogisticRegression(a *LogisticRegressionArtifact, features int) (*LogisticRegression, error) {
	base, err := newBase(NameLogisticRegression, features, a.Classes)
	if err != nil {
		return nil, err
	}
	if len(a.Coef) != len(a.Classes) || len(a.Intercept) != len(a.Classes) {
		return nil, fmt.Errorf("%s: need %d coefficient rows and intercepts, got %d and %d",
			NameLogisticRegression, len(a.Classes), len(a.Coef), len(a.Intercept))
	}
	for k, row := range a.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("%s: coefficient row %d has %d values, want %d", NameLogisticRegression, k, len(row), features)
		}
		if !finite(row) {
			return nil, fmt.Errorf("%s: coefficient row %d is not finite", NameLogisticRegression, k)
		}
	}
	if !finite(a.Intercept) {
		return nil, fmt.Errorf("%s: intercept is not finite", NameLogisticRegression)
	}

	return &LogisticRegression{
		baseClassifier: base,
		coef:           a.Coef,
		intercept:      a.Intercept,
	}, nil
}

// PredictProba returns the class distribution for a normalized vector.
func (m *LogisticRegression) PredictProba(x []float64) (models.ClassProbabilities, error) {
	if err := m.checkInput(x); err != nil {
		return models.ClassProbabilities{}, err
	}

	logits := make([]float64, len(m.coef))
	maxLogit := math.Inf(-1)
	for k, row := range m.coef {
		z := m.intercept[k]
		for j, w := range row {
			z += w * x[j]
		}
		logits[k] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	// Shift by the max logit so exp cannot overflow.
	for k, z := range logits {
		logits[k] = math.Exp(z - maxLogit)
	}

	return m.remap(logits)
}
