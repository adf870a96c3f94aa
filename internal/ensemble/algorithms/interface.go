// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package algorithms implements inference for the trained classifiers that
// make up the engagement ensemble.
//
// Each classifier is decoded from a JSON artifact produced offline and maps a
// normalized feature vector to a probability distribution over the
// engagement tiers.
//
// # Algorithms
//
//   - LogisticRegression: multinomial (softmax) linear model
//   - RandomForest: averaged decision-tree leaf distributions
//   - KNN: k-nearest-neighbours with uniform or inverse-distance voting
//
// # Class Order
//
// Artifacts may list their classes in any order (label encoders usually sort
// them alphabetically). Every classifier remaps its output onto the
// canonical Low, Medium, High order before returning it.
//
// # Thread Safety
//
// Classifiers are immutable after decoding and safe for concurrent use.
package algorithms

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/engagepredict/internal/models"
)

// Algorithm names as they appear in the model manifest.
const (
	NameLogisticRegression = "logistic_regression"
	NameRandomForest       = "random_forest"
	NameKNN                = "knn"
)

// ErrInvalidInput is returned when a feature vector has the wrong width.
var ErrInvalidInput = errors.New("invalid feature vector")

// ErrInvalidOutput is returned when a classifier produces a distribution
// that is not finite or does not sum to a positive value.
var ErrInvalidOutput = errors.New("invalid class distribution")

// baseClassifier holds the state shared by every classifier.
type baseClassifier struct {
	name     string
	features int

	// columns maps artifact class columns to canonical tiers.
	columns []models.Tier
}

// Name returns the algorithm identifier.
func (b *baseClassifier) Name() string {
	return b.name
}

// NumFeatures returns the expected input width.
func (b *baseClassifier) NumFeatures() int {
	return b.features
}

func (b *baseClassifier) checkInput(x []float64) error {
	if len(x) != b.features {
		return fmt.Errorf("%w: %s expects %d features, got %d", ErrInvalidInput, b.name, b.features, len(x))
	}
	return nil
}

// remap converts per-column scores into canonical tier order and normalizes
// them to sum to one.
func (b *baseClassifier) remap(columns []float64) (models.ClassProbabilities, error) {
	var out models.ClassProbabilities
	var total float64
	for i, v := range columns {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return out, fmt.Errorf("%w: %s produced %v", ErrInvalidOutput, b.name, v)
		}
		out[b.columns[i]] += v
		total += v
	}
	if total <= 0 {
		return out, fmt.Errorf("%w: %s produced an all-zero distribution", ErrInvalidOutput, b.name)
	}
	for i := range out {
		out[i] /= total
	}
	return out, nil
}

// classColumns validates an artifact class list and returns the column to
// tier mapping. The list must be a permutation of Low, Medium, High.
func classColumns(classes []string) ([]models.Tier, error) {
	if len(classes) != models.NumTiers {
		return nil, fmt.Errorf("expected %d classes, got %d", models.NumTiers, len(classes))
	}
	seen := make(map[models.Tier]bool, models.NumTiers)
	columns := make([]models.Tier, len(classes))
	for i, c := range classes {
		tier, ok := models.ParseTier(c)
		if !ok {
			return nil, fmt.Errorf("unknown class %q", c)
		}
		if seen[tier] {
			return nil, fmt.Errorf("duplicate class %q", c)
		}
		seen[tier] = true
		columns[i] = tier
	}
	return columns, nil
}

func newBase(name string, features int, classes []string) (baseClassifier, error) {
	if features <= 0 {
		return baseClassifier{}, fmt.Errorf("%s: feature count must be positive", name)
	}
	columns, err := classColumns(classes)
	if err != nil {
		return baseClassifier{}, fmt.Errorf("%s: %w", name, err)
	}
	return baseClassifier{name: name, features: features, columns: columns}, nil
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
