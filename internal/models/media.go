// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package models

// Orientation is the frame orientation of a media asset, or the orientation a
// platform prefers. OrientationAny is only meaningful as a platform preference.
type Orientation int

const (
	// OrientationUnknown is an absent or unrecognized orientation. It never
	// matches a platform preference other than Any.
	OrientationUnknown Orientation = iota
	OrientationPortrait
	OrientationLandscape
	OrientationSquare
	OrientationAny
)

// String returns the wire name of the orientation.
func (o Orientation) String() string {
	switch o {
	case OrientationPortrait:
		return "Portrait"
	case OrientationLandscape:
		return "Landscape"
	case OrientationSquare:
		return "Square"
	case OrientationAny:
		return "Any"
	default:
		return ""
	}
}

// ParseOrientation maps a wire name to an Orientation. Matching is exact and
// case-sensitive; anything else is OrientationUnknown.
func ParseOrientation(s string) Orientation {
	switch s {
	case "Portrait":
		return OrientationPortrait
	case "Landscape":
		return OrientationLandscape
	case "Square":
		return OrientationSquare
	case "Any":
		return OrientationAny
	default:
		return OrientationUnknown
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognized values
// decode to OrientationUnknown rather than failing.
func (o *Orientation) UnmarshalText(text []byte) error {
	*o = ParseOrientation(string(text))
	return nil
}

// Resolution is the resolution tier of a media asset.
type Resolution int

const (
	// ResolutionUnknown is an absent or unrecognized tier.
	ResolutionUnknown Resolution = iota
	ResolutionSD
	Resolution480p
	Resolution720p
	Resolution1080p
	Resolution4K
)

// String returns the wire name of the resolution tier.
func (r Resolution) String() string {
	switch r {
	case ResolutionSD:
		return "SD"
	case Resolution480p:
		return "480p"
	case Resolution720p:
		return "720p"
	case Resolution1080p:
		return "1080p"
	case Resolution4K:
		return "4K"
	default:
		return ""
	}
}

// ParseResolution maps a wire name to a Resolution tier.
func ParseResolution(s string) Resolution {
	switch s {
	case "SD":
		return ResolutionSD
	case "480p":
		return Resolution480p
	case "720p":
		return Resolution720p
	case "1080p":
		return Resolution1080p
	case "4K":
		return Resolution4K
	default:
		return ResolutionUnknown
	}
}

// IsHD reports whether the tier is 1080p or better.
func (r Resolution) IsHD() bool {
	return r == Resolution1080p || r == Resolution4K
}

// IsLow reports whether the tier is below 720p.
func (r Resolution) IsLow() bool {
	return r == ResolutionSD || r == Resolution480p
}

// MarshalText implements encoding.TextMarshaler.
func (r Resolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resolution) UnmarshalText(text []byte) error {
	*r = ParseResolution(string(text))
	return nil
}

// Quality is the coarse quality rating of a media asset.
type Quality int

const (
	QualityUnknown Quality = iota
	QualityLow
	QualityMedium
	QualityHigh
)

// String returns the wire name of the quality rating.
func (q Quality) String() string {
	switch q {
	case QualityLow:
		return "Low"
	case QualityMedium:
		return "Medium"
	case QualityHigh:
		return "High"
	default:
		return ""
	}
}

// ParseQuality maps a wire name to a Quality rating.
func ParseQuality(s string) Quality {
	switch s {
	case "Low":
		return QualityLow
	case "Medium":
		return QualityMedium
	case "High":
		return QualityHigh
	default:
		return QualityUnknown
	}
}

// MarshalText implements encoding.TextMarshaler.
func (q Quality) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (q *Quality) UnmarshalText(text []byte) error {
	*q = ParseQuality(string(text))
	return nil
}

// Media types reported by the media analyzer.
const (
	MediaTypeImage   = "image"
	MediaTypeVideo   = "video"
	MediaTypeUnknown = "unknown"
)

// MediaInfo is the structured description of an uploaded media asset.
// JSON field names follow the client wire format.
type MediaInfo struct {
	// Type is "image", "video" or "unknown".
	Type string `json:"type,omitempty"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Orientation Orientation `json:"orientation"`

	// AspectRatio is the reduced ratio formatted as "W:H".
	AspectRatio string `json:"aspectRatio,omitempty"`

	Resolution Resolution `json:"resolution"`
	Quality    Quality    `json:"qualityScore"`

	// Duration is the clip length in seconds, when known.
	Duration *int `json:"duration,omitempty"`

	// Note explains defaulted values.
	Note string `json:"note,omitempty"`
}
