// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package platform

import (
	"slices"
	"strings"

	"github.com/tomtom215/engagepredict/internal/models"
)

// Platform identifies a supported social network. The numeric value is the
// platform_encoded feature and must not be reordered.
type Platform int

const (
	Instagram Platform = iota
	TikTok
	YouTube
	Twitter
	Facebook
)

// Default is the platform used for unknown names.
const Default = Instagram

// All returns every supported platform in encoding order.
func All() []Platform {
	return []Platform{Instagram, TikTok, YouTube, Twitter, Facebook}
}

// String returns the lowercase platform identifier.
func (p Platform) String() string {
	switch p {
	case Instagram:
		return "instagram"
	case TikTok:
		return "tiktok"
	case YouTube:
		return "youtube"
	case Twitter:
		return "twitter"
	case Facebook:
		return "facebook"
	default:
		return "unknown"
	}
}

// Parse resolves a platform name, ignoring case and surrounding whitespace.
// The boolean is false when the name is not a supported platform, in which
// case Default is returned.
func Parse(name string) (Platform, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "instagram":
		return Instagram, true
	case "tiktok":
		return TikTok, true
	case "youtube":
		return YouTube, true
	case "twitter":
		return Twitter, true
	case "facebook":
		return Facebook, true
	default:
		return Default, false
	}
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether n lies within the interval, bounds included.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// Profile is the static posting guidance for one platform.
type Profile struct {
	Platform             Platform           `json:"-"`
	Name                 string             `json:"platform"`
	PreferredOrientation models.Orientation `json:"preferredOrientation"`
	CaptionLength        Range              `json:"captionLength"`
	HashtagCount         Range              `json:"hashtagCount"`
	PeakHours            []int              `json:"peakHours"`
	BestDays             []string           `json:"bestDays"`
}

// IsPeakHour reports whether hour is one of the platform's peak hours.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (p Profile) IsPeakHour(hour int) bool {
	return slices.Contains(p.PeakHours, hour)
}

// IsBestDay reports whether day exactly matches one of the platform's best
// days. The comparison is case-sensitive.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (p Profile) IsBestDay(day string) bool {
	return slices.Contains(p.BestDays, day)
}

// AcceptsAnyOrientation reports whether the platform has no orientation
// preference.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (p Profile) AcceptsAnyOrientation() bool {
	return p.PreferredOrientation == models.OrientationAny
}

// Registry is an immutable lookup of platform profiles.
type Registry struct {
	profiles [5]Profile
}

// NewRegistry returns the registry holding the built-in profiles.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, p := range All() {
		r.profiles[p] = builtin(p)
	}
	return r
}

// Get returns the profile for a supported platform.
func (r *Registry) Get(p Platform) Profile {
	if p < Instagram || p > Facebook {
		p = Default
	}
	return r.profiles[p]
}

// Lookup resolves a platform name to its profile. Unknown names resolve to
// the Default profile.
func (r *Registry) Lookup(name string) Profile {
	p, _ := Parse(name)
	return r.Get(p)
}

// Profiles returns every profile in encoding order. The slices inside each
// profile are copies.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		p.PeakHours = slices.Clone(p.PeakHours)
		p.BestDays = slices.Clone(p.BestDays)
		out = append(out, p)
	}
	return out
}

// builtin is exhaustive over Platform; adding a constant without a case here
// returns the zero profile and is caught by the registry tests.
func builtin(p Platform) Profile {
	switch p {
	case Instagram:
		return Profile{
			Platform:             Instagram,
			Name:                 Instagram.String(),
			PreferredOrientation: models.OrientationPortrait,
			CaptionLength:        Range{Min: 100, Max: 2200},
			HashtagCount:         Range{Min: 3, Max: 30},
			PeakHours:            []int{9, 10, 12, 13, 19, 20},
			BestDays:             []string{"Tuesday", "Wednesday", "Thursday"},
		}
	case TikTok:
		return Profile{
			Platform:             TikTok,
			Name:                 TikTok.String(),
			PreferredOrientation: models.OrientationPortrait,
			CaptionLength:        Range{Min: 50, Max: 300},
			HashtagCount:         Range{Min: 3, Max: 8},
			PeakHours:            []int{19, 20, 21, 22, 12, 13, 14},
			BestDays:             []string{"Tuesday", "Thursday", "Friday"},
		}
	case YouTube:
		return Profile{
			Platform:             YouTube,
			Name:                 YouTube.String(),
			PreferredOrientation: models.OrientationLandscape,
			CaptionLength:        Range{Min: 200, Max: 5000},
			HashtagCount:         Range{Min: 3, Max: 15},
			PeakHours:            []int{14, 15, 19, 20},
			BestDays:             []string{"Friday", "Saturday", "Sunday"},
		}
	case Twitter:
		return Profile{
			Platform:             Twitter,
			Name:                 Twitter.String(),
			PreferredOrientation: models.OrientationAny,
			CaptionLength:        Range{Min: 50, Max: 280},
			HashtagCount:         Range{Min: 1, Max: 3},
			PeakHours:            []int{8, 9, 12, 17},
			BestDays:             []string{"Monday", "Tuesday", "Wednesday"},
		}
	case Facebook:
		return Profile{
			Platform:             Facebook,
			Name:                 Facebook.String(),
			PreferredOrientation: models.OrientationAny,
			CaptionLength:        Range{Min: 40, Max: 500},
			HashtagCount:         Range{Min: 1, Max: 5},
			PeakHours:            []int{13, 14, 15, 19, 20},
			BestDays:             []string{"Wednesday", "Thursday", "Friday"},
		}
	default:
		return Profile{}
	}
}
