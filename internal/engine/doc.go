// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package engine is the prediction facade used by the transport layer.

An Engine is built once at startup from immutable dependencies. When the
trained ensemble loaded completely it scores every post; otherwise the
rule-based fallback scorer does, and IsReady reports false.

# Failure Handling

Ensemble inference runs behind a gobreaker circuit breaker. A classifier
error is logged, counted in engagepredict_ensemble_failures_total, and that
request is scored by the fallback. After FailureThreshold consecutive errors
the breaker opens and requests go straight to the fallback until it
half-opens. Predict itself only fails on a done context.

# Predicted Counts

Reach, likes and comments are presentation estimates with uniform noise
drawn from the injected RandSource. Tests inject a fixed source to assert
exact values.
*/
package engine
