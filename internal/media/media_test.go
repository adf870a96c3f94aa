// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package media

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/engagepredict/internal/models"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
		orientation   models.Orientation
		aspect        string
		resolution    models.Resolution
		quality       models.Quality
	}{
		{"full HD landscape", 1920, 1080, models.OrientationLandscape, "16:9", models.Resolution1080p, models.QualityHigh},
		{"full HD portrait", 1080, 1920, models.OrientationPortrait, "9:16", models.Resolution1080p, models.QualityHigh},
		{"square", 1000, 1000, models.OrientationSquare, "1:1", models.Resolution720p, models.QualityMedium},
		{"1080 boundary", 1080, 1080, models.OrientationSquare, "1:1", models.Resolution1080p, models.QualityHigh},
		{"4K boundary", 3840, 2160, models.OrientationLandscape, "16:9", models.Resolution4K, models.QualityHigh},
		{"just under 4K", 2159, 1000, models.OrientationLandscape, "2159:1000", models.Resolution1080p, models.QualityHigh},
		{"720 boundary", 720, 480, models.OrientationLandscape, "3:2", models.Resolution720p, models.QualityMedium},
		{"480 boundary", 480, 360, models.OrientationLandscape, "4:3", models.Resolution480p, models.QualityLow},
		{"SD", 320, 240, models.OrientationLandscape, "4:3", models.ResolutionSD, models.QualityLow},
		{"coprime", 1081, 1920, models.OrientationPortrait, "1081:1920", models.Resolution1080p, models.QualityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, err := Classify(tt.width, tt.height)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if info.Orientation != tt.orientation {
				t.Errorf("Orientation = %v, want %v", info.Orientation, tt.orientation)
			}
			if info.AspectRatio != tt.aspect {
				t.Errorf("AspectRatio = %q, want %q", info.AspectRatio, tt.aspect)
			}
			if info.Resolution != tt.resolution {
				t.Errorf("Resolution = %v, want %v", info.Resolution, tt.resolution)
			}
			if info.Quality != tt.quality {
				t.Errorf("Quality = %v, want %v", info.Quality, tt.quality)
			}
			if info.Width != tt.width || info.Height != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d", info.Width, info.Height, tt.width, tt.height)
			}
		})
	}
}

func TestClassify_InvalidDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-1, 10}, {0, 0}} {
		if _, err := Classify(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("Classify(%d, %d) error = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	video := VideoDefault()
	if video.Type != models.MediaTypeVideo || video.Width != 1920 || video.Height != 1080 ||
		video.AspectRatio != "16:9" || video.Orientation != models.OrientationLandscape ||
		video.Resolution != models.Resolution1080p || video.Quality != models.QualityHigh {
		t.Errorf("VideoDefault() = %+v", video)
	}

	unknown := UnknownDefault()
	if unknown.Type != models.MediaTypeUnknown || unknown.Width != 1080 || unknown.Height != 1920 ||
		unknown.AspectRatio != "9:16" || unknown.Orientation != models.OrientationPortrait ||
		unknown.Resolution != models.Resolution1080p || unknown.Quality != models.QualityHigh {
		t.Errorf("UnknownDefault() = %+v", unknown)
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil); err != nil {
		t.Fatalf("jpeg.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{color.Black, color.White})
	if err := gif.Encode(&buf, img, nil); err != nil {
		t.Fatalf("gif.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// losslessWebPHeader builds a RIFF container holding only a VP8L header,
// which is all DecodeConfig reads.
func losslessWebPHeader(w, h int) []byte {
	payload := make([]byte, 6)
	payload[0] = 0x2f
	binary.LittleEndian.PutUint32(payload[1:5], uint32(w-1)|uint32(h-1)<<14)

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(4+8+len(payload)))
	buf.WriteString("WEBP")
	buf.WriteString("VP8L")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(payload)))
	buf.Write(payload)
	return buf.Bytes()
}

func newTestAnalyzer(opts ...Option) *Analyzer {
	return NewAnalyzer(Config{CacheSize: 16}, zerolog.Nop(), opts...)
}

func TestAnalyzer_Images(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		data        func(t *testing.T) []byte
		contentType string
		width       int
		height      int
		orientation models.Orientation
	}{
		{"png", func(t *testing.T) []byte { return encodePNG(t, 1080, 1920) }, "image/png", 1080, 1920, models.OrientationPortrait},
		{"jpeg", func(t *testing.T) []byte { return encodeJPEG(t, 640, 480) }, "image/jpeg", 640, 480, models.OrientationLandscape},
		{"gif", func(t *testing.T) []byte { return encodeGIF(t, 300, 300) }, "image/gif", 300, 300, models.OrientationSquare},
		{"webp", func(*testing.T) []byte { return losslessWebPHeader(1280, 720) }, "image/webp", 1280, 720, models.OrientationLandscape},
		{"declared with parameters", func(t *testing.T) []byte { return encodePNG(t, 100, 50) }, "Image/PNG; charset=binary", 100, 50, models.OrientationLandscape},
		{"sniffed when undeclared", func(t *testing.T) []byte { return encodePNG(t, 200, 100) }, "", 200, 100, models.OrientationLandscape},
		{"sniffed from octet-stream", func(t *testing.T) []byte { return encodeJPEG(t, 64, 128) }, "application/octet-stream", 64, 128, models.OrientationPortrait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAnalyzer()
			info, err := a.Analyze(context.Background(), tt.data(t), tt.contentType)
			if err != nil {
				t.Fatalf("Analyze() error = %v", err)
			}
			if info.Type != models.MediaTypeImage {
				t.Errorf("Type = %q, want image", info.Type)
			}
			if info.Width != tt.width || info.Height != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d", info.Width, info.Height, tt.width, tt.height)
			}
			if info.Orientation != tt.orientation {
				t.Errorf("Orientation = %v, want %v", info.Orientation, tt.orientation)
			}
		})
	}
}

func TestAnalyzer_Video(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer()
	for _, ct := range []string{"video/mp4", "video/quicktime", "video/webm"} {
		info, err := a.Analyze(context.Background(), []byte("not really a video"), ct)
		if err != nil {
			t.Fatalf("Analyze(%s) error = %v", ct, err)
		}
		if *info != VideoDefault() {
			t.Errorf("Analyze(%s) = %+v, want video default", ct, info)
		}
	}
}

func TestAnalyzer_Unsupported(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer()
	_, err := a.Analyze(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("error = %v, want ErrUnsupportedType", err)
	}

	var ute *UnsupportedTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("error %T is not *UnsupportedTypeError", err)
	}
	if ute.ContentType != "application/pdf" {
		t.Errorf("ContentType = %q", ute.ContentType)
	}
	want := []string{"image/jpeg", "image/png", "image/gif", "image/webp", "video/mp4", "video/quicktime", "video/webm"}
	if len(ute.Supported) != len(want) {
		t.Fatalf("Supported = %v, want %v", ute.Supported, want)
	}
	for i := range want {
		if ute.Supported[i] != want[i] {
			t.Errorf("Supported[%d] = %q, want %q", i, ute.Supported[i], want[i])
		}
	}
}

func TestAnalyzer_DecodeFailure(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer()
	for _, data := range [][]byte{[]byte("definitely not a png"), nil} {
		_, err := a.Analyze(context.Background(), data, "image/png")
		if !errors.Is(err, ErrDecodeFailed) {
			t.Fatalf("error = %v, want ErrDecodeFailed", err)
		}
		if errors.Is(err, ErrUnsupportedType) {
			t.Error("decode failure must not match ErrUnsupportedType")
		}
		var ae *AnalysisError
		if !errors.As(err, &ae) || ae.MediaType != models.MediaTypeImage {
			t.Errorf("error = %#v, want *AnalysisError for image", err)
		}
	}
}

func TestAnalyzer_NoDecoderReturnsUnknownDefault(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer(WithImageDecoders("image/png"))
	info, err := a.Analyze(context.Background(), encodeJPEG(t, 10, 10), "image/jpeg")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if *info != UnknownDefault() {
		t.Errorf("Analyze() = %+v, want unknown default", info)
	}
}

func TestAnalyzer_CachesSuccessOnly(t *testing.T) {
	t.Parallel()

	a := newTestAnalyzer()
	data := encodePNG(t, 40, 20)

	for i := 0; i < 3; i++ {
		if _, err := a.Analyze(context.Background(), data, "image/png"); err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
	}
	hits, misses, size := a.CacheStats()
	if hits != 2 || misses != 1 || size != 1 {
		t.Errorf("CacheStats() = (%d, %d, %d), want (2, 1, 1)", hits, misses, size)
	}

	_, _ = a.Analyze(context.Background(), []byte("garbage"), "image/png")
	if _, _, size := a.CacheStats(); size != 1 {
		t.Errorf("cache size after failure = %d, want 1", size)
	}
}

func TestAnalyzer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newTestAnalyzer().Analyze(ctx, encodePNG(t, 1, 1), "image/png"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                          "",
		"image/png":                 "image/png",
		"IMAGE/JPEG":                "image/jpeg",
		" video/mp4 ; codecs=avc1 ": "video/mp4",
		"image/png;":                "image/png",
	}
	for in, want := range tests {
		if got := normalizeType(in); got != want {
			t.Errorf("normalizeType(%q) = %q, want %q", in, got, want)
		}
	}
}
