// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package algorithms

import (
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagepredict/internal/models"
)

// KNN voting schemes.
const (
	WeightsUniform  = "uniform"
	WeightsDistance = "distance"
)

// KNNArtifact is the serialized training set of a k-nearest-neighbours
// classifier. Labels index into Classes.
type KNNArtifact struct {
	Classes []string    `json:"classes"`
	K       int         `json:"k"`
	Weights string      `json:"weights"`
	Points  [][]float64 `json:"points"`
	Labels  []int       `json:"labels"`
}

// KNN classifies by the labels of the K closest training points under
// Euclidean distance.
//
// With uniform weights each neighbour contributes one vote. With distance
// weights a neighbour contributes 1/d; when any neighbour sits at distance
// zero only the exact matches vote.
type KNN struct {
	baseClassifier
	k        int
	distance bool
	points   [][]float64
	labels   []int
}

// neighbor is a training point and its distance to the query.
type neighbor struct {
	index    int
	distance float64
}

// DecodeKNN parses and validates a KNN artifact.
func DecodeKNN(data []byte, features int) (*KNN, error) {
	var a KNNArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", NameKNN, err)
	}
	return NewKNN(&a, features)
}

// NewKNN builds a classifier from an in-memory artifact.
func NewKNN(a *KNNArtifact, features int) (*KNN, error) {
	base, err := newBase(NameKNN, features, a.Classes)
	if err != nil {
		return nil, err
	}

	var distance bool
	switch a.Weights {
	case WeightsUniform, "":
	case WeightsDistance:
		distance = true
	default:
		return nil, fmt.Errorf("%s: unknown weights %q", NameKNN, a.Weights)
	}

	if len(a.Points) == 0 {
		return nil, fmt.Errorf("%s: no training points", NameKNN)
	}
	if len(a.Labels) != len(a.Points) {
		return nil, fmt.Errorf("%s: %d labels for %d points", NameKNN, len(a.Labels), len(a.Points))
	}
	if a.K <= 0 || a.K > len(a.Points) {
		return nil, fmt.Errorf("%s: k=%d must be in [1,%d]", NameKNN, a.K, len(a.Points))
	}
	for i, p := range a.Points {
		if len(p) != features {
			return nil, fmt.Errorf("%s: point %d has %d features, want %d", NameKNN, i, len(p), features)
		}
		if !finite(p) {
			return nil, fmt.Errorf("%s: point %d is not finite", NameKNN, i)
		}
		if a.Labels[i] < 0 || a.Labels[i] >= len(a.Classes) {
			return nil, fmt.Errorf("%s: label %d of point %d is out of range", NameKNN, a.Labels[i], i)
		}
	}

	return &KNN{
		baseClassifier: base,
		k:              a.K,
		distance:       distance,
		points:         a.Points,
		labels:         a.Labels,
	}, nil
}

// PredictProba returns the class distribution for a normalized vector.
func (m *KNN) PredictProba(x []float64) (models.ClassProbabilities, error) {
	if err := m.checkInput(x); err != nil {
		return models.ClassProbabilities{}, err
	}

	nearest := m.nearest(x)
	votes := make([]float64, len(m.columns))

	if !m.distance {
		for _, n := range nearest {
			votes[m.labels[n.index]]++
		}
		return m.remap(votes)
	}

	exact := false
	for _, n := range nearest {
		if n.distance == 0 {
			votes[m.labels[n.index]]++
			exact = true
		}
	}
	if !exact {
		for _, n := range nearest {
			votes[m.labels[n.index]] += 1 / n.distance
		}
	}
	return m.remap(votes)
}

// nearest returns the k closest points. Equal distances keep training order.
func (m *KNN) nearest(x []float64) []neighbor {
	all := make([]neighbor, len(m.points))
	for i, p := range m.points {
		all[i] = neighbor{index: i, distance: euclidean(x, p)}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].distance < all[j].distance
	})
	return all[:m.k]
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
