// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package config provides centralized configuration management for EngagePredict.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - Optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/engagepredict/config.yaml
  - Environment variables (explicitly mapped, see below)

Unknown environment variables are ignored. Comma-separated values are
split for list settings (CORS_ORIGINS).

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - SERVER_READ_HEADER_TIMEOUT: Header read timeout (default: 10s)
  - SERVER_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 15s)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Models and Engine:
  - MODELS_DIR: Directory holding manifest.json and model artifacts (default: models)
  - MODELS_REQUIRED: Refuse to start without loaded models (default: false)
  - ENGINE_SEED: Seed for predicted-count noise (default: 42)
  - ENGINE_BREAKER_FAILURE_THRESHOLD: Consecutive ensemble failures before fallback (default: 5)
  - ENGINE_BREAKER_TIMEOUT: Time the breaker stays open (default: 30s)

Media:
  - MEDIA_MAX_UPLOAD_BYTES: Upload limit (default: 50 MiB)
  - MEDIA_CACHE_SIZE, MEDIA_CACHE_TTL: Analysis cache (default: 512, 15m)

History:
  - HISTORY_ENABLED, HISTORY_PATH, HISTORY_IN_MEMORY
  - HISTORY_DEFAULT_LIMIT, HISTORY_MAX_LIMIT (default: 50, 200)

Security:
  - JWT_SECRET: Enables HS256 bearer tokens (min 32 chars)
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load config")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
