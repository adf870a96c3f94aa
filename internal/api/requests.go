// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/engagepredict/internal/models"
)

// Request defaults applied to absent or blank fields.
const (
	DefaultPlatform       = "instagram"
	DefaultPostingTime    = "12:00"
	DefaultDayOfWeek      = "Wednesday"
	DefaultTargetAudience = "General"
)

// maxPredictBodyBytes bounds the JSON body of /predict. The largest valid
// request (10000-character caption plus 2000-character hashtags, up to four
// bytes per character) fits comfortably.
const maxPredictBodyBytes = 1 << 20

// PredictRequest is the body of POST /api/v1/predict.
//
// Only size limits are validated. Malformed optional values such as an
// unparseable postingTime or an unknown platform are accepted and scored
// with their documented fallbacks.
type PredictRequest struct {
	Caption        string            `json:"caption" validate:"max=10000"`
	Hashtags       string            `json:"hashtags" validate:"max=2000"`
	Platform       string            `json:"platform" validate:"max=32"`
	PostingTime    string            `json:"postingTime" validate:"max=16"`
	DayOfWeek      string            `json:"dayOfWeek" validate:"max=16"`
	Location       string            `json:"location" validate:"max=256"`
	TargetAudience string            `json:"targetAudience" validate:"max=256"`
	MediaInfo      *MediaInfoRequest `json:"mediaInfo,omitempty"`

	// UserID identifies the caller when no JWT secret is configured.
	UserID string `json:"userId,omitempty" validate:"max=128"`
}

// MediaInfoRequest is the client's description of already analyzed media.
// Unknown enum names decode to their Unknown values.
type MediaInfoRequest struct {
	Type        string             `json:"type,omitempty" validate:"max=16"`
	Width       int                `json:"width" validate:"gte=0"`
	Height      int                `json:"height" validate:"gte=0"`
	Orientation models.Orientation `json:"orientation"`
	AspectRatio string             `json:"aspectRatio,omitempty" validate:"max=32"`
	Resolution  models.Resolution  `json:"resolution"`
	Quality     models.Quality     `json:"qualityScore"`
	Duration    *int               `json:"duration,omitempty" validate:"omitempty,gte=0"`
}

// isEmpty reports whether no media field was supplied, as with "mediaInfo": {}.
func (m *MediaInfoRequest) isEmpty() bool {
	return m == nil || *m == MediaInfoRequest{}
}

// toPost applies the request defaults and builds the engine input.
func (req *PredictRequest) toPost(userID string) models.Post {
	post := models.Post{
		Caption:        req.Caption,
		Hashtags:       req.Hashtags,
		Platform:       withDefault(req.Platform, DefaultPlatform),
		PostingTime:    withDefault(req.PostingTime, DefaultPostingTime),
		DayOfWeek:      withDefault(req.DayOfWeek, DefaultDayOfWeek),
		Location:       req.Location,
		TargetAudience: withDefault(req.TargetAudience, DefaultTargetAudience),
		UserID:         userID,
	}
	if m := req.MediaInfo; !m.isEmpty() {
		post.Media = &models.MediaInfo{
			Type:        m.Type,
			Width:       m.Width,
			Height:      m.Height,
			Orientation: m.Orientation,
			AspectRatio: m.AspectRatio,
			Resolution:  m.Resolution,
			Quality:     m.Quality,
			Duration:    m.Duration,
		}
	}
	return post
}

func withDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// errBodyTooLarge is returned by decodeJSON when the body exceeds its limit.
var errBodyTooLarge = errors.New("request body too large")

// decodeJSON decodes a JSON object from r's body, limited to maxBytes.
func decodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errBodyTooLarge
		}
		return fmt.Errorf("read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("request body is empty")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}
