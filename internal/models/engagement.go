// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Tier is the coarse engagement classification. The numeric value doubles as
// the canonical class index used by classifiers: Low=0, Medium=1, High=2.
type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

// NumTiers is the size of the class vocabulary.
const NumTiers = 3

// Canonical score thresholds shared by every score-to-tier conversion in the
// engine. The recommendation tip tiers are defined separately.
const (
	TierHighThreshold   = 75
	TierMediumThreshold = 50
)

// Tiers returns the canonical class order.
func Tiers() [NumTiers]Tier {
	return [NumTiers]Tier{TierLow, TierMedium, TierHigh}
}

// TierForScore buckets a 0-100 score using the canonical thresholds.
func TierForScore(score int) Tier {
	switch {
	case score >= TierHighThreshold:
		return TierHigh
	case score >= TierMediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// String returns the class label.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low"
	case TierMedium:
		return "Medium"
	case TierHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// ParseTier maps a class label to a Tier.
func ParseTier(s string) (Tier, bool) {
	switch s {
	case "Low":
		return TierLow, true
	case "Medium":
		return TierMedium, true
	case "High":
		return TierHigh, true
	default:
		return TierLow, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	parsed, ok := ParseTier(string(text))
	if !ok {
		return fmt.Errorf("unknown engagement tier %q", text)
	}
	*t = parsed
	return nil
}

// ClassProbabilities is a probability distribution over the canonical tiers,
// indexed by Tier.
type ClassProbabilities [NumTiers]float64

// Argmax returns the most probable tier. Ties resolve to the lower tier.
func (p ClassProbabilities) Argmax() Tier {
	tiers := Tiers()
	best := tiers[0]
	for _, t := range tiers[1:] {
		if p[t] > p[best] {
			best = t
		}
	}
	return best
}

// MarshalJSON encodes the distribution keyed by class label.
func (p ClassProbabilities) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]float64{
		TierLow.String():    p[TierLow],
		TierMedium.String(): p[TierMedium],
		TierHigh.String():   p[TierHigh],
	})
}

// FeedbackKind is the severity of a feedback observation.
type FeedbackKind string

const (
	FeedbackSuccess FeedbackKind = "success"
	FeedbackWarning FeedbackKind = "warning"
	FeedbackError   FeedbackKind = "error"
)

// FeedbackItem is one human-readable observation about a post.
type FeedbackItem struct {
	Kind    FeedbackKind `json:"type"`
	Message string       `json:"text"`

	// Impact is the signed effect on engagement, e.g. "+15%".
	Impact string `json:"impact"`
}

// ScoringSource identifies which scoring variant produced a result.
type ScoringSource string

const (
	SourceEnsemble ScoringSource = "ensemble"
	SourceFallback ScoringSource = "fallback"
)

// ModelVote is one classifier's contribution to an ensemble decision.
type ModelVote struct {
	Role          string             `json:"role"`
	Model         string             `json:"model"`
	Weight        float64            `json:"weight"`
	Tier          Tier               `json:"tier"`
	Confidence    float64            `json:"confidence"`
	Probabilities ClassProbabilities `json:"probabilities"`
}

// EngagementResult is the outcome of scoring one post.
type EngagementResult struct {
	Score int  `json:"score"`
	Tier  Tier `json:"engagementLevel"`

	Source ScoringSource `json:"source"`

	// Confidence is the combined probability of the chosen tier. Zero on the
	// fallback path.
	Confidence float64 `json:"confidence,omitempty"`

	// Votes is the per-model breakdown. Empty on the fallback path.
	Votes []ModelVote `json:"votes,omitempty"`

	Feedback []FeedbackItem `json:"feedback"`

	// Predicted counts are a presentation estimate, not part of the
	// classification.
	PredictedReach    int `json:"predictedReach"`
	PredictedLikes    int `json:"predictedLikes"`
	PredictedComments int `json:"predictedComments"`
}

// Post is the set of raw attributes describing a proposed social media post.
type Post struct {
	Caption  string
	Hashtags string

	// Platform is matched case-insensitively; unknown names use the
	// instagram profile.
	Platform string

	// PostingTime is "HH:MM". Malformed values resolve to hour 12.
	PostingTime string

	// DayOfWeek is an English weekday name, matched case-sensitively.
	DayOfWeek string

	Location       string
	TargetAudience string

	// Media is nil when the post has no analyzed media.
	Media *MediaInfo

	UserID string
}
