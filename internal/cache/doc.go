// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package cache provides a generic, thread-safe LRU cache with TTL support.

# Overview

LRU keeps at most a fixed number of entries. Entries expire lazily after the
configured TTL: an expired entry is dropped the next time it is read, or in
bulk by CleanupExpired.

# Use Cases

  - Media analysis results keyed by the SHA-256 of the uploaded bytes, so a
    re-uploaded asset is not decoded twice

# Usage Example

	c := cache.NewLRU[string, models.MediaInfo](512, 15*time.Minute)
	c.Add(key, info)
	if info, ok := c.Get(key); ok {
	    return info
	}

# Thread Safety

All methods take an internal mutex and are safe for concurrent use.
*/
package cache
