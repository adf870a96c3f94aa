// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package auth

import (
	"net/http"
	"strings"
	"unicode"
)

// HeaderUserID is the development-mode identity header.
const HeaderUserID = "X-User-ID"

// MaxUserIDLength bounds header-supplied user IDs.
const MaxUserIDLength = 128

// HeaderAuthenticator trusts the X-User-ID header. It is used when no JWT
// secret is configured and must not be exposed publicly.
type HeaderAuthenticator struct{}

// NewHeaderAuthenticator creates a header identifier.
func NewHeaderAuthenticator() *HeaderAuthenticator {
	return &HeaderAuthenticator{}
}

// Identify returns the trimmed X-User-ID header value.
func (HeaderAuthenticator) Identify(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if id == "" {
		return "", ErrNoCredentials
	}
	if !ValidUserID(id) {
		return "", ErrInvalidCredentials
	}
	return id, nil
}

// Mode returns ModeHeader.
func (HeaderAuthenticator) Mode() Mode {
	return ModeHeader
}

// ValidUserID reports whether id is non-empty, at most MaxUserIDLength bytes
// and free of control characters.
func ValidUserID(id string) bool {
	if id == "" || len(id) > MaxUserIDLength {
		return false
	}
	return strings.IndexFunc(id, unicode.IsControl) < 0
}
