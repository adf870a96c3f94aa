// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package media

import (
	"errors"
	"fmt"

	"github.com/tomtom215/engagepredict/internal/models"
)

// Resolution thresholds on the longer side, inclusive.
const (
	Threshold4K    = 2160
	Threshold1080p = 1080
	Threshold720p  = 720
	Threshold480p  = 480
)

// ErrInvalidDimensions is returned by Classify for non-positive dimensions.
var ErrInvalidDimensions = errors.New("media: invalid dimensions")

// Notes attached to defaulted results.
const (
	NoteVideoDefault   = "Video analyzed with default values"
	NoteUnknownDefault = "Image decoder unavailable, default values used"
)

// Classify derives orientation, aspect ratio, resolution tier and quality
// rating from pixel dimensions. The returned MediaInfo has no Type.
func Classify(width, height int) (models.MediaInfo, error) {
	if width <= 0 || height <= 0 {
		return models.MediaInfo{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	resolution := ResolutionFor(max(width, height))
	return models.MediaInfo{
		Width:       width,
		Height:      height,
		Orientation: OrientationFor(width, height),
		AspectRatio: AspectRatio(width, height),
		Resolution:  resolution,
		Quality:     QualityFor(resolution),
	}, nil
}

// OrientationFor compares the two sides.
func OrientationFor(width, height int) models.Orientation {
	switch {
	case width > height:
		return models.OrientationLandscape
	case width < height:
		return models.OrientationPortrait
	default:
		return models.OrientationSquare
	}
}

// AspectRatio reduces width:height by their greatest common divisor.
func AspectRatio(width, height int) string {
	g := gcd(width, height)
	if g == 0 {
		return "0:0"
	}
	return fmt.Sprintf("%d:%d", width/g, height/g)
}

// ResolutionFor maps the longer side to a resolution tier.
func ResolutionFor(maxDimension int) models.Resolution {
	switch {
	case maxDimension >= Threshold4K:
		return models.Resolution4K
	case maxDimension >= Threshold1080p:
		return models.Resolution1080p
	case maxDimension >= Threshold720p:
		return models.Resolution720p
	case maxDimension >= Threshold480p:
		return models.Resolution480p
	default:
		return models.ResolutionSD
	}
}

// QualityFor rates a resolution tier.
func QualityFor(r models.Resolution) models.Quality {
	switch r {
	case models.Resolution4K, models.Resolution1080p:
		return models.QualityHigh
	case models.Resolution720p:
		return models.QualityMedium
	case models.ResolutionUnknown, models.ResolutionSD, models.Resolution480p:
		return models.QualityLow
	default:
		return models.QualityLow
	}
}

// VideoDefault is reported for video uploads, whose frames are not decoded.
func VideoDefault() models.MediaInfo {
	return models.MediaInfo{
		Type:        models.MediaTypeVideo,
		Width:       1920,
		Height:      1080,
		Orientation: models.OrientationLandscape,
		AspectRatio: "16:9",
		Resolution:  models.Resolution1080p,
		Quality:     models.QualityHigh,
		Note:        NoteVideoDefault,
	}
}

// UnknownDefault is reported when an image format has no decoder.
func UnknownDefault() models.MediaInfo {
	return models.MediaInfo{
		Type:        models.MediaTypeUnknown,
		Width:       1080,
		Height:      1920,
		Orientation: models.OrientationPortrait,
		AspectRatio: "9:16",
		Resolution:  models.Resolution1080p,
		Quality:     models.QualityHigh,
		Note:        NoteUnknownDefault,
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
