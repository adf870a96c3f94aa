// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package features

import (
	"math"
	"strings"
	"testing"

	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

var registry = platform.NewRegistry()

func TestParseHour(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"19:30", 19},
		{"07:05", 7},
		{"0:00", 0},
		{"23:59", 23},
		{"", 12},
		{"abc", 12},
		{"25", 12},
		{"ab:cd", 12},
		{":30", 12},
		{"24:00", 24},
		{"25:00", 25},
		{"-1:00", -1},
		{"-3:00", -3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseHour(tt.input); got != tt.want {
				t.Errorf("ParseHour(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountHashtags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"#one", 1},
		{"#one #two #three", 3},
		{"#one#two", 2},
		{"# lonely", 0},
		{"#café #日本", 2},
		{"no tags here", 0},
	}

	for _, tt := range tests {
		if got := CountHashtags(tt.input); got != tt.want {
			t.Errorf("CountHashtags(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestHasCallToActionAndEmoji(t *testing.T) {
	t.Parallel()

	if !HasCallToAction("Please COMMENT below") {
		t.Error("HasCallToAction should be case-insensitive")
	}
	if HasCallToAction("A quiet sunset") {
		t.Error("HasCallToAction matched a caption without CTA words")
	}
	if !ContainsEmoji("sunset \U0001F60D") {
		t.Error("ContainsEmoji missed U+1F60D")
	}
	if ContainsEmoji("sunset ☀") {
		t.Error("ContainsEmoji matched a code point outside the block")
	}
}

func TestExtract_ReferenceScenario(t *testing.T) {
	t.Parallel()

	post := models.Post{
		Caption:     strings.Repeat("a", 150),
		Hashtags:    "#a #b #c #d #e",
		Platform:    "instagram",
		PostingTime: "19:30",
		DayOfWeek:   "Wednesday",
		Media: &models.MediaInfo{
			Orientation: models.OrientationPortrait,
			Resolution:  models.Resolution1080p,
			Quality:     models.QualityHigh,
		},
	}

	v := Extract(post, registry.Lookup(post.Platform))

	want := map[int]float64{
		CaptionLength:    150,
		HashtagCount:     5,
		PostingHour:      19,
		IsPeakHour:       1,
		IsBestDay:        1,
		ResolutionScore:  3,
		OrientationMatch: 1,
		MediaQuality:     2,
		PlatformEncoded:  0,
		HasLocation:      0,
		HasCTA:           0,
		HasEmoji:         0,
		HashtagRatio:     5.0 / 30,
		CaptionRatio:     150.0 / 2200,
	}
	for idx, w := range want {
		if math.Abs(v[idx]-w) > 1e-9 {
			t.Errorf("%s = %v, want %v", names[idx], v[idx], w)
		}
	}
}

func TestExtract_MediaDefaults(t *testing.T) {
	t.Parallel()

	post := models.Post{Platform: "youtube", PostingTime: "bad"}
	v := Extract(post, registry.Lookup(post.Platform))

	if v[ResolutionScore] != 3 || v[OrientationMatch] != 1 || v[MediaQuality] != 2 {
		t.Errorf("defaults = (%v, %v, %v), want (3, 1, 2)", v[ResolutionScore], v[OrientationMatch], v[MediaQuality])
	}
	if v[PostingHour] != 12 {
		t.Errorf("PostingHour = %v, want 12", v[PostingHour])
	}
	if v[PlatformEncoded] != 2 {
		t.Errorf("PlatformEncoded = %v, want 2", v[PlatformEncoded])
	}

	t.Run("unrecognized categories use defaults", func(t *testing.T) {
		t.Parallel()
		p := models.Post{Platform: "twitter", Media: &models.MediaInfo{}}
		v := Extract(p, registry.Lookup(p.Platform))
		if v[ResolutionScore] != 3 || v[MediaQuality] != 2 {
			t.Errorf("got (%v, %v), want (3, 2)", v[ResolutionScore], v[MediaQuality])
		}
		if v[OrientationMatch] != 1 {
			t.Errorf("twitter accepts any orientation, got match %v", v[OrientationMatch])
		}
	})
}

func TestExtract_OrientationMismatch(t *testing.T) {
	t.Parallel()

	post := models.Post{
		Platform: "tiktok",
		Media:    &models.MediaInfo{Orientation: models.OrientationLandscape, Resolution: models.ResolutionSD, Quality: models.QualityLow},
	}
	v := Extract(post, registry.Lookup(post.Platform))

	if v[OrientationMatch] != 0 {
		t.Errorf("OrientationMatch = %v, want 0", v[OrientationMatch])
	}
	if v[ResolutionScore] != 0 || v[MediaQuality] != 0 {
		t.Errorf("ResolutionScore, MediaQuality = %v, %v, want 0, 0", v[ResolutionScore], v[MediaQuality])
	}
}

func TestExtract_PeakHourIsolation(t *testing.T) {
	t.Parallel()

	base := models.Post{Caption: "hello", Platform: "instagram", PostingTime: "19:00", DayOfWeek: "Monday"}
	moved := base
	moved.PostingTime = "16:00"

	profile := registry.Lookup("instagram")
	a := Extract(base, profile)
	b := Extract(moved, profile)

	if a[IsPeakHour] != 1 || b[IsPeakHour] != 0 {
		t.Fatalf("IsPeakHour = %v, %v, want 1, 0", a[IsPeakHour], b[IsPeakHour])
	}
	for i := range a {
		if i == IsPeakHour || i == PostingHour {
			continue
		}
		if a[i] != b[i] {
			t.Errorf("slot %s changed: %v -> %v", names[i], a[i], b[i])
		}
	}
}

func TestExtract_UnknownPlatformMatchesInstagram(t *testing.T) {
	t.Parallel()

	post := models.Post{Caption: "check this", Hashtags: "#x #y", Platform: "myspace", PostingTime: "12:00", DayOfWeek: "Tuesday"}
	ig := post
	ig.Platform = "instagram"

	if Extract(post, registry.Lookup(post.Platform)) != Extract(ig, registry.Lookup(ig.Platform)) {
		t.Error("unknown platform should extract identically to instagram")
	}
}
