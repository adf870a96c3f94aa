// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	line := strings.TrimSpace(buf.String())
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line %q is not JSON: %v", line, err)
	}
	return m
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{" warning ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if ValidLevel("verbose") || !ValidLevel("Warn") {
		t.Error("ValidLevel() misclassified a level")
	}
}

func TestCtx_AddsIdentifiers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-1")
	ctx = ContextWithCorrelationID(ctx, "corr-1")

	Ctx(ctx).Info().Msg("Prediction served")

	m := decodeLine(t, &buf)
	if m["request_id"] != "req-1" || m["correlation_id"] != "corr-1" {
		t.Errorf("log entry = %v, want request and correlation IDs", m)
	}
	if m["message"] != "Prediction served" {
		t.Errorf("message = %v", m["message"])
	}
}

func TestContextAccessors_Empty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if RequestIDFromContext(ctx) != "" || CorrelationIDFromContext(ctx) != "" {
		t.Error("empty context returned identifiers")
	}
	if len(GenerateCorrelationID()) != 8 {
		t.Error("correlation IDs are 8 characters")
	}
	if GenerateRequestID() == GenerateRequestID() {
		t.Error("request IDs must be unique")
	}
}

func TestSlogHandler_FieldsAndGroups(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slogger := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("service", "history-recorder").
		WithGroup("msg")

	slogger.Warn("handler failed",
		"attempt", 3,
		"ok", false,
		"err", errors.New("disk full"),
		slog.Group("meta", "topic", "prediction.recorded"))

	m := decodeLine(t, &buf)
	checks := map[string]any{
		"level":          "warn",
		"message":        "handler failed",
		"service":        "history-recorder",
		"msg.attempt":    float64(3),
		"msg.ok":         false,
		"msg.err":        "disk full",
		"msg.meta.topic": "prediction.recorded",
	}
	for key, want := range checks {
		if m[key] != want {
			t.Errorf("%s = %v, want %v (entry %v)", key, m[key], want, m)
		}
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
