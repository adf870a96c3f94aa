// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package recommend

import "github.com/tomtom215/engagepredict/internal/platform"

// platformTips returns the curated tips for a platform and tier. The switch
// is exhaustive over platform.Platform; unknown values use instagram.
func platformTips(p platform.Platform, tier ScoreTier) []string {
	switch p {
	case platform.TikTok:
		return byTier(tier, tiktokTips)
	case platform.YouTube:
		return byTier(tier, youtubeTips)
	case platform.Twitter:
		return byTier(tier, twitterTips)
	case platform.Facebook:
		return byTier(tier, facebookTips)
	default:
		return byTier(tier, instagramTips)
	}
}

// generalTips returns the platform-independent tips for a tier.
func generalTips(tier ScoreTier) []string {
	return byTier(tier, general)
}

// tierTips holds one curated list per score tier.
type tierTips struct {
	high   []string
	medium []string
	low    []string
}

func byTier(tier ScoreTier, t tierTips) []string {
	switch tier {
	case ScoreTierHigh:
		return t.high
	case ScoreTierMedium:
		return t.medium
	default:
		return t.low
	}
}

var instagramTips = tierTips{
	high: []string{
		"🔥 Your content is optimized for viral potential!",
		"Use Instagram Stories to tease this post",
		"Engage with comments in the first hour for algorithm boost",
		"Consider using Reels format for 2x more reach",
		"Cross-post to your story with countdown sticker",
	},
	medium: []string{
		"Add a call-to-action in your caption",
		"Use location tags for local discoverability",
		"Post consistently at this time for 2 weeks",
		"Create a carousel post for 3x engagement",
		"Use trending audio in your Reels",
	},
	low: []string{
		"Focus on improving content quality first",
		"Study top performers in your niche",
		"Consider vertical video format",
		"Use more specific niche hashtags",
		"Try the hook-twist-punch caption format",
	},
}

var tiktokTips = tierTips{
	high: []string{
		"🚀 Ready for the For You Page!",
		"Respond to comments with video replies",
		"Create a follow-up video if this performs well",
		"Use the green screen effect for reaction content",
		"Pin this to your profile if it goes viral",
	},
	medium: []string{
		"Hook viewers in the first 0.5 seconds",
		"Use trending sounds for visibility boost",
		"Add text overlays for accessibility",
		"End with a question to boost comments",
		"Post 3-4 times daily for best results",
	},
	low: []string{
		"Keep videos between 15-60 seconds",
		"Use trending effects and filters",
		"Study viral videos in your niche",
		"Focus on entertainment value",
		"Participate in trending challenges",
	},
}

var youtubeTips = tierTips{
	high: []string{
		"🎬 Optimized for YouTube success!",
		"Create chapters for better retention",
		"Design a custom thumbnail with faces",
		"Add end screens for more watch time",
		"Pin a comment with additional context",
	},
	medium: []string{
		"Improve your thumbnail click-through rate",
		"Ask viewers to subscribe at the right moment",
		"Create playlists for related content",
		"Use YouTube Shorts to grow audience",
		"Collaborate with similar creators",
	},
	low: []string{
		"Focus on watch time over views",
		"Study your audience retention graphs",
		"Create longer, more valuable content",
		"Optimize titles for search",
		"Respond to every comment for 24 hours",
	},
}

var twitterTips = tierTips{
	high: []string{
		"🐦 Thread potential detected!",
		"Quote tweet this with additional thoughts",
		"Engage with replies quickly",
		"Schedule follow-up tweets for momentum",
		"Pin this tweet to your profile",
	},
	medium: []string{
		"Add a relevant image or video",
		"Use 1-2 strategic hashtags only",
		"Ask a question to boost engagement",
		"Join trending conversations",
		"Create a thread for complex topics",
	},
	low: []string{
		"Keep tweets concise and punchy",
		"Lead with the most valuable insight",
		"Build in public for authentic engagement",
		"Engage with your community first",
		"Use polls for easy engagement",
	},
}

var facebookTips = tierTips{
	high: []string{
		"📘 Great Facebook content!",
		"Share to relevant Groups for more reach",
		"Create a poll for additional engagement",
		"Boost post if it gains early traction",
		"Cross-post to Instagram",
	},
	medium: []string{
		"Add a video for 2x reach",
		"Ask for opinions to boost comments",
		"Use Facebook Live for real-time engagement",
		"Create an event around your content",
		"Tag relevant people or pages",
	},
	low: []string{
		"Focus on community building",
		"Share valuable information, not promotion",
		"Use native video over links",
		"Engage in Facebook Groups",
		"Post when your audience is most active",
	},
}

var general = tierTips{
	high: []string{
		"A/B test different captions for similar content",
		"Save this as a template for future posts",
		"Document what worked for future reference",
	},
	medium: []string{
		"Consistency beats perfection - keep posting",
		"Analyze your best performing posts for patterns",
		"Build relationships with other creators",
	},
	low: []string{
		"Focus on providing value over going viral",
		"Quality over quantity in your posts",
		"Take time to understand your audience",
	},
}
