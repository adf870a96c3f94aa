// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package media

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"mime"
	"slices"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp" // register WebP decoder

	"github.com/tomtom215/engagepredict/internal/cache"
	"github.com/tomtom215/engagepredict/internal/metrics"
	"github.com/tomtom215/engagepredict/internal/models"
)

// Supported content types, images first.
var (
	supportedImageTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	supportedVideoTypes = []string{"video/mp4", "video/quicktime", "video/webm"}
)

// SupportedTypes returns the accepted content types, images then videos.
func SupportedTypes() []string {
	out := make([]string, 0, len(supportedImageTypes)+len(supportedVideoTypes))
	out = append(out, supportedImageTypes...)
	return append(out, supportedVideoTypes...)
}

// Defaults for the analysis cache.
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 15 * time.Minute
)

// Metric result labels.
const (
	resultImage        = "image"
	resultVideo        = "video"
	resultDefault      = "default"
	resultUnsupported  = "unsupported"
	resultDecodeFailed = "decode_failed"
)

// Config controls the analysis cache.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithImageDecoders limits which image content types are decoded. Supported
// image types without a decoder are reported with UnknownDefault.
func WithImageDecoders(contentTypes ...string) Option {
	return func(a *Analyzer) {
		a.decoders = make(map[string]struct{}, len(contentTypes))
		for _, ct := range contentTypes {
			a.decoders[normalizeType(ct)] = struct{}{}
		}
	}
}

// Analyzer turns uploaded bytes into MediaInfo. It is safe for concurrent use.
type Analyzer struct {
	cache    *cache.LRU[string, models.MediaInfo]
	decoders map[string]struct{}
	logger   zerolog.Logger
}

// NewAnalyzer creates an analyzer with every supported image decoder enabled.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewAnalyzer(cfg Config, logger zerolog.Logger, opts ...Option) *Analyzer {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	a := &Analyzer{
		cache:    cache.NewLRU[string, models.MediaInfo](cfg.CacheSize, cfg.CacheTTL),
		decoders: make(map[string]struct{}, len(supportedImageTypes)),
		logger:   logger.With().Str("component", "media_analyzer").Logger(),
	}
	for _, ct := range supportedImageTypes {
		a.decoders[ct] = struct{}{}
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze inspects data declared as contentType. An empty or generic
// declared type is replaced by the sniffed type.
//
// Errors are *UnsupportedTypeError (ErrUnsupportedType) or *AnalysisError
// (ErrDecodeFailed). Successful results are cached by content hash.
func (a *Analyzer) Analyze(ctx context.Context, data []byte, contentType string) (*models.MediaInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ct := normalizeType(contentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = normalizeType(mimetype.Detect(data).String())
	}

	key := cacheKey(ct, data)
	if info, ok := a.cache.Get(key); ok {
		metrics.RecordMediaCache(true)
		return &info, nil
	}
	metrics.RecordMediaCache(false)

	info, result, err := a.analyze(data, ct)
	metrics.RecordMediaAnalysis(result)
	if err != nil {
		a.logger.Debug().Err(err).Str("content_type", ct).Int("bytes", len(data)).Msg("Media analysis failed")
		return nil, err
	}

	a.cache.Add(key, info)
	return &info, nil
}

func (a *Analyzer) analyze(data []byte, ct string) (models.MediaInfo, string, error) {
	switch {
	case slices.Contains(supportedImageTypes, ct):
		if _, ok := a.decoders[ct]; !ok {
			return UnknownDefault(), resultDefault, nil
		}
		info, err := decodeImage(data)
		if err != nil {
			return models.MediaInfo{}, resultDecodeFailed, &AnalysisError{MediaType: models.MediaTypeImage, Err: err}
		}
		return info, resultImage, nil
	case slices.Contains(supportedVideoTypes, ct):
		return VideoDefault(), resultVideo, nil
	default:
		return models.MediaInfo{}, resultUnsupported, &UnsupportedTypeError{ContentType: ct, Supported: SupportedTypes()}
	}
}

// decodeImage reads only the image header.
func decodeImage(data []byte) (models.MediaInfo, error) {
	if len(data) == 0 {
		return models.MediaInfo{}, errors.New("empty file")
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return models.MediaInfo{}, err
	}
	info, err := Classify(cfg.Width, cfg.Height)
	if err != nil {
		return models.MediaInfo{}, err
	}
	info.Type = models.MediaTypeImage
	return info, nil
}

// CacheStats returns cache hit and miss counts and the current size.
func (a *Analyzer) CacheStats() (hits, misses int64, size int) {
	return a.cache.Stats()
}

// CleanupExpired drops expired cache entries and returns how many were removed.
func (a *Analyzer) CleanupExpired() int {
	return a.cache.CleanupExpired()
}

// normalizeType lowercases a content type and strips its parameters.
func normalizeType(ct string) string {
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return ""
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		return strings.ToLower(mediaType)
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func cacheKey(ct string, data []byte) string {
	sum := sha256.Sum256(data)
	return ct + ":" + hex.EncodeToString(sum[:])
}
