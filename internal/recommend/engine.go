// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package recommend maps an engagement score and a post's shortfalls to
// actionable tips.
//
// Tip tiers use their own thresholds (high at 80, medium at 60) and are
// independent of the engine's Low/Medium/High classification.
package recommend

import (
	"fmt"

	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

// Tip tier thresholds.
const (
	HighTipThreshold   = 80
	MediumTipThreshold = 60
)

// Output limits.
const (
	MaxPlatformTips    = 3
	MaxGeneralTips     = 2
	MaxPriorityActions = 3
)

// Shortfall thresholds for priority actions.
const (
	MinCaptionLength = 50
	MaxCaptionLength = 2000
	MinHashtags      = 3
	MaxHashtags      = 15
)

// ScoreTier selects which curated tip lists apply.
type ScoreTier int

const (
	ScoreTierLow ScoreTier = iota
	ScoreTierMedium
	ScoreTierHigh
)

// String returns the lowercase tier name.
func (t ScoreTier) String() string {
	switch t {
	case ScoreTierLow:
		return "low"
	case ScoreTierMedium:
		return "medium"
	case ScoreTierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ScoreTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TierForScore buckets a score into a tip tier.
func TierForScore(score int) ScoreTier {
	switch {
	case score >= HighTipThreshold:
		return ScoreTierHigh
	case score >= MediumTipThreshold:
		return ScoreTierMedium
	default:
		return ScoreTierLow
	}
}

// Input carries the signals the recommendation engine needs.
type Input struct {
	Score         int
	Platform      platform.Platform
	Media         *models.MediaInfo
	CaptionLength int
	HashtagCount  int
}

// Recommendations are the tips for one post.
type Recommendations struct {
	// Tips holds platform tips followed by general tips.
	Tips []string `json:"tips"`

	// PriorityActions are concrete fixes for detected shortfalls.
	PriorityActions []string `json:"priorityActions"`

	ScoreTier ScoreTier `json:"scoreTier"`
}

// Generate builds the recommendations for a post.
//
//nolint:gocritic // hugeParam: in passed by value for immutability
func Generate(in Input) Recommendations {
	tier := TierForScore(in.Score)

	pt := platformTips(in.Platform, tier)
	gt := generalTips(tier)

	tips := make([]string, 0, MaxPlatformTips+MaxGeneralTips)
	tips = append(tips, pt[:min(MaxPlatformTips, len(pt))]...)
	tips = append(tips, gt[:min(MaxGeneralTips, len(gt))]...)

	actions := priorityActions(in)
	if len(actions) > MaxPriorityActions {
		actions = actions[:MaxPriorityActions]
	}

	return Recommendations{
		Tips:            tips,
		PriorityActions: actions,
		ScoreTier:       tier,
	}
}

//nolint:gocritic // hugeParam: in passed by value for immutability
func priorityActions(in Input) []string {
	actions := make([]string, 0, 4)

	if m := in.Media; m != nil {
		switch {
		case portraitFirst(in.Platform) && m.Orientation == models.OrientationLandscape:
			actions = append(actions, "🔄 Crop to Portrait (9:16) for 40% more reach")
		case in.Platform == platform.YouTube && m.Orientation == models.OrientationPortrait:
			actions = append(actions, "🔄 Use Landscape (16:9) for better viewing experience")
		}

		if m.Resolution.IsLow() {
			actions = append(actions, "📹 Upgrade to 1080p for professional quality")
		}
	}

	switch {
	case in.CaptionLength < MinCaptionLength:
		actions = append(actions, "✍️ Write a longer, more engaging caption")
	case in.CaptionLength > MaxCaptionLength:
		actions = append(actions, "✂️ Shorten your caption for better readability")
	}

	switch {
	case in.HashtagCount < MinHashtags:
		actions = append(actions, fmt.Sprintf("#️⃣ Add %d more relevant hashtags", MinHashtags-in.HashtagCount))
	case in.HashtagCount > MaxHashtags:
		actions = append(actions, "#️⃣ Reduce hashtags to avoid looking spammy")
	}

	return actions
}

func portraitFirst(p platform.Platform) bool {
	return p == platform.Instagram || p == platform.TikTok
}
