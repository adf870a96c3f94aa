// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package media classifies uploaded media by its pixel dimensions.

# Classification

Classify is a pure function of width and height:

  - Orientation: Landscape when wider, Portrait when taller, Square otherwise
  - Aspect ratio: reduced by the greatest common divisor, "1920:1080" -> "16:9"
  - Resolution: by the longer side, inclusive thresholds 2160 (4K), 1080, 720, 480, else SD
  - Quality: High for 4K and 1080p, Medium for 720p, Low otherwise

# Analyzer

Analyzer decodes only the image header (JPEG, PNG, GIF, WebP) so large
uploads are never fully rasterized. Videos are not decoded and receive
VideoDefault. Content types are sniffed with mimetype when the client sends
none or application/octet-stream.

Failures are typed:

	info, err := analyzer.Analyze(ctx, data, header.Get("Content-Type"))
	switch {
	case errors.Is(err, media.ErrUnsupportedType):
	    // 415, list the supported types
	case errors.Is(err, media.ErrDecodeFailed):
	    // 422
	}

Results are cached by the SHA-256 of the bytes. Errors are never cached.
*/
package media
