// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package ensemble

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
)

// Role names of the three ensemble members.
const (
	RolePrimary   = "primary"
	RoleSecondary = "secondary"
	RoleTertiary  = "tertiary"
)

// Score anchors applied to each class probability.
const (
	lowAnchor    = 25
	mediumAnchor = 62
	highAnchor   = 95
)

// weightTolerance is the allowed deviation of the weight sum from 1.
const weightTolerance = 1e-6

// ErrNotReady is returned by Predict on a predictor missing a component.
var ErrNotReady = errors.New("ensemble is not ready")

// Classifier maps a normalized feature vector to a class distribution in
// canonical tier order.
type Classifier interface {
	Name() string
	PredictProba(x []float64) (models.ClassProbabilities, error)
}

// Weights are the combination weights of the three roles.
type Weights struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
	Tertiary  float64 `json:"tertiary"`
}

// DefaultWeights returns the standard 0.30/0.40/0.30 split.
func DefaultWeights() Weights {
	return Weights{Primary: 0.30, Secondary: 0.40, Tertiary: 0.30}
}

// Sum returns the total weight.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Sum() float64 {
	return w.Primary + w.Secondary + w.Tertiary
}

// Validate checks that weights are non-negative, finite and sum to 1.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Validate() error {
	for _, v := range []float64{w.Primary, w.Secondary, w.Tertiary} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weights must be finite and non-negative, got %+v", w)
		}
	}
	if math.Abs(w.Sum()-1) > weightTolerance {
		return fmt.Errorf("weights must sum to 1, got %v", w.Sum())
	}
	return nil
}

// Normalizer standardizes each feature as (x - mean) / scale.
type Normalizer struct {
	Mean  [features.Size]float64
	Scale [features.Size]float64
}

// NewNormalizer builds a normalizer from per-feature statistics. A zero
// scale is treated as 1.
func NewNormalizer(mean, scale []float64) (*Normalizer, error) {
	if len(mean) != features.Size || len(scale) != features.Size {
		return nil, fmt.Errorf("normalizer needs %d means and scales, got %d and %d", features.Size, len(mean), len(scale))
	}
	n := &Normalizer{}
	for i := range features.Size {
		if math.IsNaN(mean[i]) || math.IsInf(mean[i], 0) || math.IsNaN(scale[i]) || math.IsInf(scale[i], 0) {
			return nil, fmt.Errorf("normalizer slot %d is not finite", i)
		}
		n.Mean[i] = mean[i]
		n.Scale[i] = scale[i]
		if n.Scale[i] == 0 {
			n.Scale[i] = 1
		}
	}
	return n, nil
}

// Transform returns the standardized vector.
func (n *Normalizer) Transform(v features.Vector) features.Vector {
	var out features.Vector
	for i := range v {
		out[i] = (v[i] - n.Mean[i]) / n.Scale[i]
	}
	return out
}

type member struct {
	role       string
	weight     float64
	classifier Classifier
}

// Predictor combines three classifiers into one weighted decision. It is
// immutable once built and safe for concurrent use.
type Predictor struct {
	normalizer *Normalizer
	members    [3]member
}

// Prediction is the outcome of one ensemble decision.
type Prediction struct {
	Score         int
	Tier          models.Tier
	Confidence    float64
	Probabilities models.ClassProbabilities
	Votes         []models.ModelVote
}

// NewPredictor builds a predictor. Every component is required; a predictor
// is never built from a partial set.
func NewPredictor(normalizer *Normalizer, weights Weights, primary, secondary, tertiary Classifier) (*Predictor, error) {
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if primary == nil || secondary == nil || tertiary == nil {
		return nil, errors.New("all three classifiers are required")
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	return &Predictor{
		normalizer: normalizer,
		members: [3]member{
			{role: RolePrimary, weight: weights.Primary, classifier: primary},
			{role: RoleSecondary, weight: weights.Secondary, classifier: secondary},
			{role: RoleTertiary, weight: weights.Tertiary, classifier: tertiary},
		},
	}, nil
}

// IsReady reports whether the predictor has every component. A nil
// predictor is not ready.
func (p *Predictor) IsReady() bool {
	if p == nil || p.normalizer == nil {
		return false
	}
	for _, m := range p.members {
		if m.classifier == nil {
			return false
		}
	}
	return true
}

// Weights returns the combination weights.
func (p *Predictor) Weights() Weights {
	return Weights{
		Primary:   p.members[0].weight,
		Secondary: p.members[1].weight,
		Tertiary:  p.members[2].weight,
	}
}

// Predict normalizes the vector, queries each classifier and combines the
// distributions. Any classifier error fails the whole prediction.
func (p *Predictor) Predict(v features.Vector) (*Prediction, error) {
	if !p.IsReady() {
		return nil, ErrNotReady
	}

	x := p.normalizer.Transform(v).Slice()

	var combined models.ClassProbabilities
	votes := make([]models.ModelVote, 0, len(p.members))

	for _, m := range p.members {
		proba, err := m.classifier.PredictProba(x)
		if err != nil {
			return nil, fmt.Errorf("%s classifier %s: %w", m.role, m.classifier.Name(), err)
		}
		if err := checkDistribution(proba); err != nil {
			return nil, fmt.Errorf("%s classifier %s: %w", m.role, m.classifier.Name(), err)
		}

		for i := range combined {
			combined[i] += m.weight * proba[i]
		}

		tier := proba.Argmax()
		votes = append(votes, models.ModelVote{
			Role:          m.role,
			Model:         m.classifier.Name(),
			Weight:        m.weight,
			Tier:          tier,
			Confidence:    proba[tier],
			Probabilities: proba,
		})
	}

	tier := combined.Argmax()
	return &Prediction{
		Score:         Score(combined),
		Tier:          tier,
		Confidence:    combined[tier],
		Probabilities: combined,
		Votes:         votes,
	}, nil
}

// Score maps a class distribution onto the 0-100 scale by anchoring each
// class at a fixed point and taking the expectation.
func Score(p models.ClassProbabilities) int {
	raw := p[models.TierLow]*lowAnchor + p[models.TierMedium]*mediumAnchor + p[models.TierHigh]*highAnchor
	score := int(math.Round(raw))
	return max(0, min(100, score))
}

func checkDistribution(p models.ClassProbabilities) error {
	var total float64
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("invalid probability %v", v)
		}
		total += v
	}
	if math.Abs(total-1) > 1e-6 {
		return fmt.Errorf("probabilities sum to %v", total)
	}
	return nil
}
