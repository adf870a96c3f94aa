// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package models defines the data structures shared by the engagement engine
and its adapters.

Key Components:

  - Post: raw attributes of a proposed social media post
  - MediaInfo: structured description of an uploaded image or video
  - EngagementResult: score, tier, feedback and predicted counts
  - FeedbackItem: one signed-impact observation about a post
  - ModelVote: one classifier's contribution to an ensemble decision

Closed Enumerations:

Categorical values are int-backed enums with String, Parse and text
marshaling. Unrecognized wire values decode to the Unknown member instead of
failing, and every consumer maps Unknown to its documented default.

  - Orientation: Portrait, Landscape, Square (Any for platform preferences)
  - Resolution: SD, 480p, 720p, 1080p, 4K
  - Quality: Low, Medium, High
  - Tier: Low, Medium, High (also the classifier class index)

Tier Thresholds:

TierForScore buckets a 0-100 score with the canonical thresholds (High at 75,
Medium at 50). The fallback scorer and any other score-to-tier conversion
use it, so both scoring paths share one vocabulary and one scale.

Usage Example:

	import "github.com/tomtom215/engagepredict/internal/models"

	post := models.Post{
	    Caption:     "Sunset over the bay",
	    Hashtags:    "#sunset #travel #bay",
	    Platform:    "instagram",
	    PostingTime: "19:30",
	    DayOfWeek:   "Wednesday",
	    Media: &models.MediaInfo{
	        Orientation: models.OrientationPortrait,
	        Resolution:  models.Resolution1080p,
	        Quality:     models.QualityHigh,
	    },
	}

JSON Marshaling:

Field names follow the client wire format (camelCase). Enums marshal as
their display names, and ClassProbabilities marshals as an object keyed by
tier name.

Thread Safety:

All models are plain data. They are safe for concurrent reads and carry no
internal locks.
*/
package models
