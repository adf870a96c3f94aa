// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package engine

import (
	"math/rand"
	"sync"
)

// DefaultSeed seeds the count estimator when no source is injected.
const DefaultSeed int64 = 42

// RandSource supplies uniform integers in [0, n).
type RandSource interface {
	Intn(n int) int
}

// lockedRand serializes access to a math/rand source.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSource returns a goroutine-safe source seeded with seed.
func NewRandSource(seed int64) RandSource {
	return &lockedRand{
		rng: rand.New(rand.NewSource(seed)), //nolint:gosec // estimator noise, not security
	}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// uniform draws from [lo, hi] inclusive.
func uniform(src RandSource, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
