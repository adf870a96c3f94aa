// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package features

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

// Size is the width of the feature vector.
const Size = 14

// Feature slots. Trained classifiers are coupled to this exact order.
const (
	CaptionLength = iota
	HashtagCount
	PostingHour
	IsPeakHour
	IsBestDay
	ResolutionScore
	OrientationMatch
	MediaQuality
	PlatformEncoded
	HasLocation
	HasCTA
	HasEmoji
	HashtagRatio
	CaptionRatio
)

// DefaultHour is used when the posting time cannot be parsed.
const DefaultHour = 12

// Media defaults applied when no MediaInfo is supplied or a category is
// unrecognized.
const (
	defaultResolutionScore = 3 // 1080p
	defaultMediaQuality    = 2 // High
)

var names = [Size]string{
	"caption_length",
	"hashtag_count",
	"posting_hour",
	"is_peak_hour",
	"is_best_day",
	"resolution_score",
	"orientation_match",
	"media_quality",
	"platform_encoded",
	"has_location",
	"has_cta",
	"has_emoji",
	"hashtag_ratio",
	"caption_ratio",
}

// Names returns the feature names in slot order.
func Names() [Size]string {
	return names
}

// Vector is the fixed-order numeric encoding of a post.
type Vector [Size]float64

// Slice returns the vector as a slice for classifier input.
func (v Vector) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, v[:])
	return out
}

// hashtagPattern matches "#" followed by letters, digits or underscores in
// any script.
var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

var ctaWords = []string{"comment", "share", "like", "follow", "click", "link", "tag", "save", "check"}

// Signals are the raw measurements shared by the extractor, the fallback
// scorer, the feedback generator and the recommendation engine.
type Signals struct {
	CaptionLength int
	HashtagCount  int
	Hour          int
	IsPeakHour    bool
	IsBestDay     bool
}

// Measure computes the raw signals for a post against a platform profile.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func Measure(post models.Post, profile platform.Profile) Signals {
	hour := ParseHour(post.PostingTime)
	return Signals{
		CaptionLength: CountCaption(post.Caption),
		HashtagCount:  CountHashtags(post.Hashtags),
		Hour:          hour,
		IsPeakHour:    profile.IsPeakHour(hour),
		IsBestDay:     profile.IsBestDay(post.DayOfWeek),
	}
}

// CountCaption returns the caption length in code points.
func CountCaption(caption string) int {
	return utf8.RuneCountInString(caption)
}

// CountHashtags counts hashtag tokens in text.
func CountHashtags(text string) int {
	return len(hashtagPattern.FindAllStringIndex(text, -1))
}

// ParseHour reads the hour from an "HH:MM" string. A missing colon or a
// non-numeric or empty hour yields DefaultHour. The hour is not range
// checked.
func ParseHour(postingTime string) int {
	head, _, found := strings.Cut(postingTime, ":")
	if !found {
		return DefaultHour
	}
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return DefaultHour
	}
	return hour
}

// HasCallToAction reports whether the caption contains any call-to-action
// word, case-insensitively. Matching is by substring.
func HasCallToAction(caption string) bool {
	lower := strings.ToLower(caption)
	for _, w := range ctaWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// ContainsEmoji reports whether the caption contains a code point in
// U+1F600 to U+1F9FF.
func ContainsEmoji(caption string) bool {
	for _, r := range caption {
		if r >= 0x1F600 && r <= 0x1F9FF {
			return true
		}
	}
	return false
}

// Extract builds the feature vector for a post.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func Extract(post models.Post, profile platform.Profile) Vector {
	s := Measure(post, profile)

	var v Vector
	v[CaptionLength] = float64(s.CaptionLength)
	v[HashtagCount] = float64(s.HashtagCount)
	v[PostingHour] = float64(s.Hour)
	v[IsPeakHour] = boolToFloat(s.IsPeakHour)
	v[IsBestDay] = boolToFloat(s.IsBestDay)
	v[ResolutionScore] = defaultResolutionScore
	v[OrientationMatch] = 1
	v[MediaQuality] = defaultMediaQuality

	if m := post.Media; m != nil {
		v[ResolutionScore] = resolutionScore(m.Resolution)
		v[OrientationMatch] = boolToFloat(OrientationMatches(profile, m.Orientation))
		v[MediaQuality] = qualityScore(m.Quality)
	}

	v[PlatformEncoded] = float64(profile.Platform)
	v[HasLocation] = 0 // location is not part of the trained schema
	v[HasCTA] = boolToFloat(HasCallToAction(post.Caption))
	v[HasEmoji] = boolToFloat(ContainsEmoji(post.Caption))
	v[HashtagRatio] = ratio(s.HashtagCount, profile.HashtagCount.Max)
	v[CaptionRatio] = ratio(s.CaptionLength, profile.CaptionLength.Max)

	return v
}

// OrientationMatches reports whether a media orientation satisfies the
// profile preference. Any preference accepts every orientation.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func OrientationMatches(profile platform.Profile, o models.Orientation) bool {
	if profile.AcceptsAnyOrientation() {
		return true
	}
	return o == profile.PreferredOrientation
}

func resolutionScore(r models.Resolution) float64 {
	switch r {
	case models.ResolutionSD:
		return 0
	case models.Resolution480p:
		return 1
	case models.Resolution720p:
		return 2
	case models.Resolution1080p:
		return 3
	case models.Resolution4K:
		return 4
	default:
		return defaultResolutionScore
	}
}

func qualityScore(q models.Quality) float64 {
	switch q {
	case models.QualityLow:
		return 0
	case models.QualityMedium:
		return 1
	case models.QualityHigh:
		return 2
	default:
		return defaultMediaQuality
	}
}

func ratio(n, limit int) float64 {
	if limit <= 0 {
		return 0
	}
	return float64(n) / float64(limit)
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
