// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package fallback implements rule-based engagement scoring used when no
// trained ensemble is available. Scores share the ensemble's 0-100 scale and
// tier vocabulary.
package fallback

import (
	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

// BaseScore is the starting point before any adjustment.
const BaseScore = 50

// Score adjustments. All adjustments are additive, so the order they are
// applied in does not change the clamped result.
const (
	DeltaResolutionHD     = 15
	DeltaResolution720p   = 5
	DeltaResolutionLow    = -10
	DeltaOrientationMatch = 15
	DeltaOrientationMiss  = -10
	DeltaInRange          = 10
	DeltaOutOfRange       = -5
	DeltaPeakHour         = 10
	DeltaBestDay          = 5
)

// Adjustment is one contribution to a fallback score.
type Adjustment struct {
	Factor string
	Delta  int
}

// Result is a fallback score with its breakdown.
type Result struct {
	Score       int
	Tier        models.Tier
	Adjustments []Adjustment
}

// Score rates a post with additive rules.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func Score(post models.Post, profile platform.Profile) Result {
	s := features.Measure(post, profile)
	adj := make([]Adjustment, 0, 6)

	if m := post.Media; m != nil {
		switch {
		case m.Resolution.IsHD():
			adj = append(adj, Adjustment{"resolution", DeltaResolutionHD})
		case m.Resolution == models.Resolution720p:
			adj = append(adj, Adjustment{"resolution", DeltaResolution720p})
		case m.Resolution.IsLow():
			adj = append(adj, Adjustment{"resolution", DeltaResolutionLow})
		}

		if !profile.AcceptsAnyOrientation() {
			if m.Orientation == profile.PreferredOrientation {
				adj = append(adj, Adjustment{"orientation", DeltaOrientationMatch})
			} else {
				adj = append(adj, Adjustment{"orientation", DeltaOrientationMiss})
			}
		}
	}

	adj = append(adj, rangeAdjustment("caption_length", profile.CaptionLength.Contains(s.CaptionLength)))
	adj = append(adj, rangeAdjustment("hashtag_count", profile.HashtagCount.Contains(s.HashtagCount)))

	if s.IsPeakHour {
		adj = append(adj, Adjustment{"peak_hour", DeltaPeakHour})
	}
	if s.IsBestDay {
		adj = append(adj, Adjustment{"best_day", DeltaBestDay})
	}

	total := BaseScore
	for _, a := range adj {
		total += a.Delta
	}
	score := max(0, min(100, total))

	return Result{
		Score:       score,
		Tier:        models.TierForScore(score),
		Adjustments: adj,
	}
}

func rangeAdjustment(factor string, inRange bool) Adjustment {
	if inRange {
		return Adjustment{factor, DeltaInRange}
	}
	return Adjustment{factor, DeltaOutOfRange}
}
