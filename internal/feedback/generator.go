// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

// Package feedback turns a post's raw attributes into human-readable
// observations with a signed engagement impact. The output does not depend
// on which scoring path produced the score.
package feedback

import (
	"fmt"

	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

// Overnight hours in [0, OvernightEnd] are flagged when they are not peak.
const OvernightEnd = 6

// Generate returns the observations for a post in a fixed order: resolution,
// orientation, caption length, hashtag count, posting time, day.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func Generate(post models.Post, profile platform.Profile) []models.FeedbackItem {
	s := features.Measure(post, profile)
	items := make([]models.FeedbackItem, 0, 6)

	if m := post.Media; m != nil {
		if item, ok := resolution(m.Resolution); ok {
			items = append(items, item)
		}
		if !profile.AcceptsAnyOrientation() {
			items = append(items, orientation(m.Orientation, profile))
		}
	}

	items = append(items, caption(s.CaptionLength, profile.CaptionLength))
	items = append(items, hashtags(s.HashtagCount, profile.HashtagCount))

	switch {
	case s.IsPeakHour:
		items = append(items, success("Great posting time for maximum engagement", "+10%"))
	case s.Hour >= 0 && s.Hour <= OvernightEnd:
		items = append(items, failure("Post during peak hours for more engagement", "-10%"))
	}

	if s.IsBestDay {
		items = append(items, success(fmt.Sprintf("%s is a high-engagement day for %s", post.DayOfWeek, profile.Name), "+5%"))
	}

	return items
}

func resolution(r models.Resolution) (models.FeedbackItem, bool) {
	switch {
	case r.IsHD():
		return success(fmt.Sprintf("Excellent %s resolution for maximum clarity", r), "+15%"), true
	case r == models.Resolution720p:
		return warning("Consider 1080p for professional quality", "+5%"), true
	case r.IsLow():
		return failure("Low resolution may reduce engagement", "-10%"), true
	default:
		return models.FeedbackItem{}, false
	}
}

//nolint:gocritic // hugeParam: profile passed by value for immutability
func orientation(o models.Orientation, profile platform.Profile) models.FeedbackItem {
	if o == profile.PreferredOrientation {
		return success(fmt.Sprintf("%s orientation is perfect for %s", o, profile.Name), "+15%")
	}
	return failure(fmt.Sprintf("Switch to %s for higher reach on %s", profile.PreferredOrientation, profile.Name), "-10%")
}

func caption(length int, r platform.Range) models.FeedbackItem {
	switch {
	case r.Contains(length):
		return success("Caption length is optimized for engagement", "+10%")
	case length < r.Min:
		return warning(fmt.Sprintf("Add more context to your caption (aim for %d+ characters)", r.Min), "-5%")
	default:
		return warning(fmt.Sprintf("Consider shortening your caption for better readability (under %d characters)", r.Max), "-5%")
	}
}

// hashtags penalizes over-tagging harder than under-tagging.
func hashtags(count int, r platform.Range) models.FeedbackItem {
	switch {
	case r.Contains(count):
		return success(fmt.Sprintf("%d hashtags is within the optimal range", count), "+10%")
	case count < r.Min:
		return warning(fmt.Sprintf("Add %d more hashtags for better discoverability", r.Min-count), "-5%")
	default:
		return failure(fmt.Sprintf("Too many hashtags may look spammy. Reduce to %d", r.Max), "-10%")
	}
}

func success(msg, impact string) models.FeedbackItem {
	return models.FeedbackItem{Kind: models.FeedbackSuccess, Message: msg, Impact: impact}
}

func warning(msg, impact string) models.FeedbackItem {
	return models.FeedbackItem{Kind: models.FeedbackWarning, Message: msg, Impact: impact}
}

func failure(msg, impact string) models.FeedbackItem {
	return models.FeedbackItem{Kind: models.FeedbackError, Message: msg, Impact: impact}
}
