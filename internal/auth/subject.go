// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Standard authentication errors
var (
	// ErrNoCredentials indicates no credentials were provided.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidCredentials indicates credentials were invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrExpiredCredentials indicates credentials have expired.
	// It wraps ErrInvalidCredentials.
	ErrExpiredCredentials = fmt.Errorf("%w: credentials expired", ErrInvalidCredentials)
)

// Mode names the identification strategy in use.
type Mode string

const (
	// ModeJWT identifies users by HS256 bearer tokens.
	ModeJWT Mode = "jwt"

	// ModeHeader trusts the X-User-ID header. Development only.
	ModeHeader Mode = "header"
)

// Identifier resolves the user making a request.
type Identifier interface {
	// Identify returns the user ID, ErrNoCredentials when the request
	// carries none, or ErrInvalidCredentials when they are rejected.
	Identify(r *http.Request) (string, error)

	// Mode returns the strategy name.
	Mode() Mode
}

type contextKey int

const userIDKey contextKey = iota

// ContextWithUserID returns a context carrying the authenticated user ID.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID, or "".
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
