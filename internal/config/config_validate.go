// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/engagepredict/internal/logging"
)

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateModels(); err != nil {
		return err
	}

	if err := c.validateEngine(); err != nil {
		return err
	}

	if err := c.validateMedia(); err != nil {
		return err
	}

	if err := c.validateHistory(); err != nil {
		return err
	}

	if err := c.validateAuth(); err != nil {
		return err
	}

	return c.validateRateLimits()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_HEADER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateModels() error {
	if c.Models.Required && strings.TrimSpace(c.Models.Dir) == "" {
		return fmt.Errorf("MODELS_DIR is required when MODELS_REQUIRED=true")
	}
	return nil
}

// validateEngine validates the circuit breaker settings
func (c *Config) validateEngine() error {
	if c.Engine.Breaker.FailureThreshold < 1 {
		return fmt.Errorf("ENGINE_BREAKER_FAILURE_THRESHOLD must be at least 1")
	}
	if c.Engine.Breaker.Timeout <= 0 {
		return fmt.Errorf("ENGINE_BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateMedia validates upload and cache bounds
func (c *Config) validateMedia() error {
	if c.Media.MaxUploadBytes < 1 {
		return fmt.Errorf("MEDIA_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Media.CacheSize < 1 {
		return fmt.Errorf("MEDIA_CACHE_SIZE must be at least 1")
	}
	if c.Media.CacheTTL <= 0 {
		return fmt.Errorf("MEDIA_CACHE_TTL must be positive")
	}
	return nil
}

// validateHistory validates history storage (only if enabled)
func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if !c.History.InMemory && strings.TrimSpace(c.History.Path) == "" {
		return fmt.Errorf("HISTORY_PATH is required when HISTORY_ENABLED=true and HISTORY_IN_MEMORY=false")
	}
	if c.History.DefaultLimit < 1 {
		return fmt.Errorf("HISTORY_DEFAULT_LIMIT must be at least 1")
	}
	if c.History.MaxLimit < c.History.DefaultLimit {
		return fmt.Errorf("HISTORY_MAX_LIMIT (%d) must not be below HISTORY_DEFAULT_LIMIT (%d)",
			c.History.MaxLimit, c.History.DefaultLimit)
	}
	return nil
}

const minJWTSecretLength = 32

// validateAuth validates the JWT secret when token verification is enabled
func (c *Config) validateAuth() error {
	if !c.Auth.Enabled() {
		return nil
	}
	if len(c.Auth.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters for security", minJWTSecretLength)
	}
	if containsPlaceholder(c.Auth.JWTSecret) {
		return fmt.Errorf("JWT_SECRET contains a placeholder value - generate a secure secret with: openssl rand -base64 32")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.Auth.Enabled() && c.HasWildcardCORS()
}

// placeholderPatterns are values that indicate the user forgot to set a
// real secret.
var placeholderPatterns = []string{
	"REPLACE",
	"CHANGEME",
	"CHANGE_ME",
	"YOUR_SECRET",
	"PLACEHOLDER",
	"EXAMPLE",
}

func containsPlaceholder(value string) bool {
	upper := strings.ToUpper(value)
	for _, pattern := range placeholderPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
