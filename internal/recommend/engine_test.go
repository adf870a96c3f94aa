// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package recommend

import (
	"slices"
	"testing"

	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

func TestTierForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  ScoreTier
	}{
		{100, ScoreTierHigh},
		{80, ScoreTierHigh},
		{79, ScoreTierMedium},
		{60, ScoreTierMedium},
		{59, ScoreTierLow},
		{0, ScoreTierLow},
	}

	for _, tt := range tests {
		if got := TierForScore(tt.score); got != tt.want {
			t.Errorf("TierForScore(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestGenerate_TikTokHighTips(t *testing.T) {
	t.Parallel()

	got := Generate(Input{Score: 90, Platform: platform.TikTok, CaptionLength: 100, HashtagCount: 5})

	want := []string{
		"🚀 Ready for the For You Page!",
		"Respond to comments with video replies",
		"Create a follow-up video if this performs well",
		"A/B test different captions for similar content",
		"Save this as a template for future posts",
	}
	if !slices.Equal(got.Tips, want) {
		t.Errorf("Tips = %q, want %q", got.Tips, want)
	}
	if got.ScoreTier != ScoreTierHigh {
		t.Errorf("ScoreTier = %v, want high", got.ScoreTier)
	}
	if len(got.PriorityActions) != 0 {
		t.Errorf("PriorityActions = %q, want none", got.PriorityActions)
	}
}

func TestGenerate_TipsForEveryPlatformAndTier(t *testing.T) {
	t.Parallel()

	for _, p := range platform.All() {
		for _, score := range []int{95, 70, 10} {
			got := Generate(Input{Score: score, Platform: p, CaptionLength: 100, HashtagCount: 5})
			if len(got.Tips) != MaxPlatformTips+MaxGeneralTips {
				t.Errorf("%s score %d: got %d tips, want %d", p, score, len(got.Tips), MaxPlatformTips+MaxGeneralTips)
			}
		}
	}
}

func TestGenerate_PriorityActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "landscape on instagram",
			in:   Input{Platform: platform.Instagram, Media: &models.MediaInfo{Orientation: models.OrientationLandscape}, CaptionLength: 100, HashtagCount: 5},
			want: []string{"🔄 Crop to Portrait (9:16) for 40% more reach"},
		},
		{
			name: "portrait on youtube",
			in:   Input{Platform: platform.YouTube, Media: &models.MediaInfo{Orientation: models.OrientationPortrait}, CaptionLength: 100, HashtagCount: 5},
			want: []string{"🔄 Use Landscape (16:9) for better viewing experience"},
		},
		{
			name: "landscape on twitter is fine",
			in:   Input{Platform: platform.Twitter, Media: &models.MediaInfo{Orientation: models.OrientationLandscape}, CaptionLength: 100, HashtagCount: 5},
			want: []string{},
		},
		{
			name: "low resolution",
			in:   Input{Platform: platform.Facebook, Media: &models.MediaInfo{Resolution: models.Resolution480p}, CaptionLength: 100, HashtagCount: 5},
			want: []string{"📹 Upgrade to 1080p for professional quality"},
		},
		{
			name: "short caption and one hashtag",
			in:   Input{Platform: platform.Twitter, CaptionLength: 10, HashtagCount: 1},
			want: []string{"✍️ Write a longer, more engaging caption", "#️⃣ Add 2 more relevant hashtags"},
		},
		{
			name: "long caption and many hashtags",
			in:   Input{Platform: platform.Twitter, CaptionLength: 2001, HashtagCount: 16},
			want: []string{"✂️ Shorten your caption for better readability", "#️⃣ Reduce hashtags to avoid looking spammy"},
		},
		{
			name: "capped at three",
			in:   Input{Platform: platform.TikTok, Media: &models.MediaInfo{Orientation: models.OrientationLandscape, Resolution: models.ResolutionSD}, CaptionLength: 0, HashtagCount: 0},
			want: []string{
				"🔄 Crop to Portrait (9:16) for 40% more reach",
				"📹 Upgrade to 1080p for professional quality",
				"✍️ Write a longer, more engaging caption",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Generate(tt.in).PriorityActions
			if !slices.Equal(got, tt.want) {
				t.Errorf("PriorityActions = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScoreTier_String(t *testing.T) {
	t.Parallel()

	if ScoreTierMedium.String() != "medium" {
		t.Errorf("String() = %q, want medium", ScoreTierMedium.String())
	}
	if ScoreTier(9).String() != "unknown" {
		t.Errorf("String() = %q, want unknown", ScoreTier(9).String())
	}
}
