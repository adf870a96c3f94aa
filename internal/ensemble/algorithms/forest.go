// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package algorithms

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagepredict/internal/models"
)

// LeafNode marks a node without children.
const LeafNode = -1

// TreeNode is one node of a serialized decision tree. Internal nodes route
// x[Feature] <= Threshold to Left, everything else to Right. Leaves carry
// per-class counts or fractions in Value.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      int       `json:"left"`
	Right     int       `json:"right"`
	Value     []float64 `json:"value"`
}

// TreeArtifact is a flat node list; node 0 is the root.
type TreeArtifact struct {
	Nodes []TreeNode `json:"nodes"`
}

// RandomForestArtifact is the serialized forest.
type RandomForestArtifact struct {
	Classes []string       `json:"classes"`
	Trees   []TreeArtifact `json:"trees"`
}

// RandomForest averages the normalized leaf distributions of its trees.
type RandomForest struct {
	baseClassifier
	trees [][]TreeNode
}

// DecodeRandomForest parses and validates a random forest artifact.
func DecodeRandomForest(data []byte, features int) (*RandomForest, error) {
	var a RandomForestArtifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", NameRandomForest, err)
	}
	return NewRandomForest(&a, features)
}

// NewRandomForest builds a forest from an in-memory artifact. Child indices
// must point forward in the node list, which rules out cycles.
func NewRandomForest(a *RandomForestArtifact, features int) (*RandomForest, error) {
	base, err := newBase(NameRandomForest, features, a.Classes)
	if err != nil {
		return nil, err
	}
	if len(a.Trees) == 0 {
		return nil, fmt.Errorf("%s: no trees", NameRandomForest)
	}

	trees := make([][]TreeNode, len(a.Trees))
	for t, tree := range a.Trees {
		if err := validateTree(tree.Nodes, features, len(a.Classes)); err != nil {
			return nil, fmt.Errorf("%s: tree %d: %w", NameRandomForest, t, err)
		}
		trees[t] = tree.Nodes
	}

	return &RandomForest{baseClassifier: base, trees: trees}, nil
}

func validateTree(nodes []TreeNode, features, classes int) error {
	if len(nodes) == 0 {
		return fmt.Errorf("empty tree")
	}
	for i, n := range nodes {
		if n.Left == LeafNode || n.Right == LeafNode {
			if n.Left != n.Right {
				return fmt.Errorf("node %d has exactly one child", i)
			}
			if len(n.Value) != classes {
				return fmt.Errorf("leaf %d has %d values, want %d", i, len(n.Value), classes)
			}
			var total float64
			for _, v := range n.Value {
				if v < 0 {
					return fmt.Errorf("leaf %d has a negative value", i)
				}
				total += v
			}
			if total <= 0 || !finite(n.Value) {
				return fmt.Errorf("leaf %d has no usable distribution", i)
			}
			continue
		}
		if n.Feature < 0 || n.Feature >= features {
			return fmt.Errorf("node %d splits on feature %d, want [0,%d)", i, n.Feature, features)
		}
		if n.Left <= i || n.Right <= i || n.Left >= len(nodes) || n.Right >= len(nodes) {
			return fmt.Errorf("node %d has out-of-order children %d, %d", i, n.Left, n.Right)
		}
		if !finite([]float64{n.Threshold}) {
			return fmt.Errorf("node %d threshold is not finite", i)
		}
	}
	return nil
}

// PredictProba returns the class distribution for a normalized vector.
func (m *RandomForest) PredictProba(x []float64) (models.ClassProbabilities, error) {
	if err := m.checkInput(x); err != nil {
		return models.ClassProbabilities{}, err
	}

	sum := make([]float64, len(m.columns))
	for _, nodes := range m.trees {
		leaf := walk(nodes, x)
		var total float64
		for _, v := range leaf.Value {
			total += v
		}
		for k, v := range leaf.Value {
			sum[k] += v / total
		}
	}

	n := float64(len(m.trees))
	for k := range sum {
		sum[k] /= n
	}
	return m.remap(sum)
}

func walk(nodes []TreeNode, x []float64) *TreeNode {
	i := 0
	for {
		n := &nodes[i]
		if n.Left == LeafNode {
			return n
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}
