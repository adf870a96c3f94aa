// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package history

import (
	"time"

	"github.com/tomtom215/engagepredict/internal/features"
	"github.com/tomtom215/engagepredict/internal/models"
)

// Record is one stored prediction. The caption itself is not kept; only
// the measurements that drove the score.
type Record struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`

	Platform       string            `json:"platform"`
	CaptionLength  int               `json:"captionLength"`
	HashtagCount   int               `json:"hashtagCount"`
	PostingTime    string            `json:"postingTime"`
	DayOfWeek      string            `json:"dayOfWeek"`
	Location       string            `json:"location,omitempty"`
	TargetAudience string            `json:"targetAudience,omitempty"`
	MediaInfo      *models.MediaInfo `json:"mediaInfo,omitempty"`

	Score    int                   `json:"score"`
	Tier     models.Tier           `json:"engagementLevel"`
	Source   models.ScoringSource  `json:"source"`
	Feedback []models.FeedbackItem `json:"feedback"`
	Tips     []string              `json:"tips"`

	PredictedReach    int `json:"predictedReach"`
	PredictedLikes    int `json:"predictedLikes"`
	PredictedComments int `json:"predictedComments"`
}

// NewRecord captures a scored post for user. ID and CreatedAt are assigned
// by the store when left empty.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func NewRecord(userID string, post models.Post, result *models.EngagementResult, tips []string) *Record {
	return &Record{
		UserID:            userID,
		Platform:          post.Platform,
		CaptionLength:     features.CountCaption(post.Caption),
		HashtagCount:      features.CountHashtags(post.Hashtags),
		PostingTime:       post.PostingTime,
		DayOfWeek:         post.DayOfWeek,
		Location:          post.Location,
		TargetAudience:    post.TargetAudience,
		MediaInfo:         post.Media,
		Score:             result.Score,
		Tier:              result.Tier,
		Source:            result.Source,
		Feedback:          result.Feedback,
		Tips:              tips,
		PredictedReach:    result.PredictedReach,
		PredictedLikes:    result.PredictedLikes,
		PredictedComments: result.PredictedComments,
	}
}
