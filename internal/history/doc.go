// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package history stores per-user prediction history in BadgerDB.
//
// Keys:
//
//	prediction:<id>                                       JSON Record
//	prediction_user:<escaped user>:<inverted nanos>:<id>  record ID
//
// The index key embeds math.MaxInt64 minus the creation time in nanoseconds,
// zero padded, so a forward prefix scan returns the newest record first.
// Records are written by the history-recorder event handler, never on the
// request path. Anonymous predictions are not stored.
package history
