// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (config.yaml or CONFIG_PATH)
//  3. Environment Variables: Explicitly mapped variables override both
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Models   ModelsConfig   `koanf:"models"`
	Engine   EngineConfig   `koanf:"engine"`
	Media    MediaConfig    `koanf:"media"`
	History  HistoryConfig  `koanf:"history"`
	Auth     AuthConfig     `koanf:"auth"`
	Security SecurityConfig `koanf:"security"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Timeout           time.Duration `koanf:"timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level.
	// Default: info
	Level string `koanf:"level"`

	// Format is json or console. Console is for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ModelsConfig locates the trained model artifacts.
type ModelsConfig struct {
	// Dir holds manifest.json and the per-model artifacts.
	Dir string `koanf:"dir"`

	// Required makes startup fail when the artifacts cannot be loaded
	// instead of serving from the fallback scorer.
	Required bool `koanf:"required"`
}

// EngineConfig holds prediction engine settings.
type EngineConfig struct {
	// Seed seeds the random source used for the predicted counts.
	Seed    int64         `koanf:"seed"`
	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker around ensemble inference.
type BreakerConfig struct {
	FailureThreshold uint32        `koanf:"failure_threshold"`
	Timeout          time.Duration `koanf:"timeout"`
}

// MediaConfig holds upload and media analysis settings.
type MediaConfig struct {
	MaxUploadBytes int64         `koanf:"max_upload_bytes"`
	CacheSize      int           `koanf:"cache_size"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
}

// HistoryConfig holds prediction history storage settings.
//
// Environment Variables:
//   - HISTORY_ENABLED: Record predictions for identified users (default: true)
//   - HISTORY_PATH: Badger directory (default: /data/history)
//   - HISTORY_IN_MEMORY: Keep history in memory only (default: false)
//   - HISTORY_DEFAULT_LIMIT: Records returned without ?limit (default: 50)
//   - HISTORY_MAX_LIMIT: Upper bound for ?limit (default: 200)
type HistoryConfig struct {
	Enabled      bool   `koanf:"enabled"`
	Path         string `koanf:"path"`
	InMemory     bool   `koanf:"in_memory"`
	DefaultLimit int    `koanf:"default_limit"`
	MaxLimit     int    `koanf:"max_limit"`
}

// AuthConfig holds bearer token settings. An empty JWTSecret disables
// token verification and history routes fall back to the X-User-ID header.
type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

// Enabled reports whether bearer tokens are verified.
func (a AuthConfig) Enabled() bool {
	return a.JWTSecret != ""
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// Load reads configuration from defaults, an optional config file and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
