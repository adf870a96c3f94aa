// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package ensemble combines three independently trained classifiers into one
engagement decision.

# Prediction

A feature vector is standardized by the stored Normalizer, each classifier
returns a distribution over Low, Medium and High, and the distributions are
combined with fixed weights (0.30/0.40/0.30 by default):

	combined = w1*p1 + w2*p2 + w3*p3
	tier     = argmax(combined)    // ties resolve to the lower tier
	score    = round(25*Low + 62*Medium + 95*High), clamped to [0,100]

# Artifacts

Load reads a model directory containing manifest.json, normalizer.json and
one JSON file per algorithm (logistic_regression.json, random_forest.json,
knn.json). Loading is all or nothing. A directory with any missing or
invalid file yields no predictor, and callers route every request to the
rule-based fallback instead.

# Thread Safety

A Predictor is immutable after construction and may be shared across
goroutines without locking.
*/
package ensemble
