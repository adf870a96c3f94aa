// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package feedback

import (
	"strings"
	"testing"

	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/platform"
)

var registry = platform.NewRegistry()

func generate(p models.Post) []models.FeedbackItem {
	return Generate(p, registry.Lookup(p.Platform))
}

func TestGenerate_OptimalInstagramPost(t *testing.T) {
	t.Parallel()

	items := generate(models.Post{
		Caption:     strings.Repeat("x", 150),
		Hashtags:    "#a #b #c #d #e",
		Platform:    "instagram",
		PostingTime: "19:30",
		DayOfWeek:   "Wednesday",
		Media:       &models.MediaInfo{Orientation: models.OrientationPortrait, Resolution: models.Resolution1080p},
	})

	want := []models.FeedbackItem{
		{Kind: models.FeedbackSuccess, Message: "Excellent 1080p resolution for maximum clarity", Impact: "+15%"},
		{Kind: models.FeedbackSuccess, Message: "Portrait orientation is perfect for instagram", Impact: "+15%"},
		{Kind: models.FeedbackSuccess, Message: "Caption length is optimized for engagement", Impact: "+10%"},
		{Kind: models.FeedbackSuccess, Message: "5 hashtags is within the optimal range", Impact: "+10%"},
		{Kind: models.FeedbackSuccess, Message: "Great posting time for maximum engagement", Impact: "+10%"},
		{Kind: models.FeedbackSuccess, Message: "Wednesday is a high-engagement day for instagram", Impact: "+5%"},
	}

	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d: %+v", len(items), len(want), items)
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestGenerate_LandscapeOnInstagram(t *testing.T) {
	t.Parallel()

	items := generate(models.Post{
		Caption:     strings.Repeat("x", 150),
		Hashtags:    "#a #b #c #d #e",
		Platform:    "instagram",
		PostingTime: "19:30",
		DayOfWeek:   "Wednesday",
		Media:       &models.MediaInfo{Orientation: models.OrientationLandscape, Resolution: models.Resolution1080p},
	})

	want := models.FeedbackItem{Kind: models.FeedbackError, Message: "Switch to Portrait for higher reach on instagram", Impact: "-10%"}
	if items[1] != want {
		t.Errorf("orientation item = %+v, want %+v", items[1], want)
	}
}

func TestGenerate_Shortfalls(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		post models.Post
		want models.FeedbackItem
	}{
		{
			name: "caption too short names the minimum",
			post: models.Post{Caption: "hi", Platform: "tiktok"},
			want: models.FeedbackItem{Kind: models.FeedbackWarning, Message: "Add more context to your caption (aim for 50+ characters)", Impact: "-5%"},
		},
		{
			name: "caption too long",
			post: models.Post{Caption: strings.Repeat("y", 301), Platform: "tiktok"},
			want: models.FeedbackItem{Kind: models.FeedbackWarning, Message: "Consider shortening your caption for better readability (under 300 characters)", Impact: "-5%"},
		},
		{
			name: "too few hashtags",
			post: models.Post{Hashtags: "#one", Platform: "youtube"},
			want: models.FeedbackItem{Kind: models.FeedbackWarning, Message: "Add 2 more hashtags for better discoverability", Impact: "-5%"},
		},
		{
			name: "too many hashtags is an error",
			post: models.Post{Hashtags: "#a #b #c #d", Platform: "twitter"},
			want: models.FeedbackItem{Kind: models.FeedbackError, Message: "Too many hashtags may look spammy. Reduce to 3", Impact: "-10%"},
		},
		{
			name: "overnight posting",
			post: models.Post{PostingTime: "03:00", Platform: "facebook"},
			want: models.FeedbackItem{Kind: models.FeedbackError, Message: "Post during peak hours for more engagement", Impact: "-10%"},
		},
		{
			name: "720p",
			post: models.Post{Platform: "twitter", Media: &models.MediaInfo{Resolution: models.Resolution720p}},
			want: models.FeedbackItem{Kind: models.FeedbackWarning, Message: "Consider 1080p for professional quality", Impact: "+5%"},
		},
		{
			name: "480p",
			post: models.Post{Platform: "twitter", Media: &models.MediaInfo{Resolution: models.Resolution480p}},
			want: models.FeedbackItem{Kind: models.FeedbackError, Message: "Low resolution may reduce engagement", Impact: "-10%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items := generate(tt.post)
			for _, item := range items {
				if item == tt.want {
					return
				}
			}
			t.Errorf("items %+v do not contain %+v", items, tt.want)
		})
	}
}

func TestGenerate_SilentCases(t *testing.T) {
	t.Parallel()

	t.Run("off-peak daytime produces no time item", func(t *testing.T) {
		t.Parallel()
		items := generate(models.Post{PostingTime: "16:00", Platform: "instagram", DayOfWeek: "Monday"})
		// Only the caption and hashtag items remain.
		if len(items) != 2 {
			t.Errorf("got %d items, want 2: %+v", len(items), items)
		}
	})

	t.Run("no media skips media items", func(t *testing.T) {
		t.Parallel()
		items := generate(models.Post{Platform: "instagram", PostingTime: "16:00"})
		for _, item := range items {
			if strings.Contains(item.Message, "resolution") || strings.Contains(item.Message, "orientation") {
				t.Errorf("unexpected media item %+v", item)
			}
		}
	})

	t.Run("any orientation skips orientation item", func(t *testing.T) {
		t.Parallel()
		items := generate(models.Post{Platform: "facebook", PostingTime: "16:00", Media: &models.MediaInfo{Orientation: models.OrientationPortrait}})
		for _, item := range items {
			if strings.Contains(item.Message, "Portrait") {
				t.Errorf("unexpected orientation item %+v", item)
			}
		}
	})
}

func TestGenerate_UnknownPlatformUsesInstagram(t *testing.T) {
	t.Parallel()

	post := models.Post{Caption: "short", Hashtags: "#a", Platform: "vine", PostingTime: "09:00", DayOfWeek: "Tuesday"}
	ig := post
	ig.Platform = "instagram"

	got, want := generate(post), generate(ig)
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
