// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package auth

import (
	"errors"
	"net/http"

	"github.com/tomtom215/engagepredict/internal/logging"
)

// ErrorWriter writes the response for a rejected request. The API package
// supplies one that renders its JSON envelope.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// Middleware resolves the caller with an Identifier and stores the user ID
// in the request context.
type Middleware struct {
	identifier Identifier
	onError    ErrorWriter
}

// NewMiddleware creates authentication middleware.
func NewMiddleware(identifier Identifier, onError ErrorWriter) *Middleware {
	if onError == nil {
		onError = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}
	return &Middleware{identifier: identifier, onError: onError}
}

// Mode returns the underlying identifier's mode.
func (m *Middleware) Mode() Mode {
	return m.identifier.Mode()
}

// Optional lets anonymous requests through. Credentials that are present but
// invalid are still rejected.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return m.handler(next, false)
}

// Required rejects requests without valid credentials.
func (m *Middleware) Required(next http.Handler) http.Handler {
	return m.handler(next, true)
}

func (m *Middleware) handler(next http.Handler, required bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.identifier.Identify(r)
		switch {
		case err == nil:
			next.ServeHTTP(w, r.WithContext(ContextWithUserID(r.Context(), userID)))
		case errors.Is(err, ErrNoCredentials) && !required:
			next.ServeHTTP(w, r)
		default:
			logging.Ctx(r.Context()).Debug().
				Err(err).
				Str("mode", string(m.identifier.Mode())).
				Str("path", r.URL.Path).
				Msg("Authentication failed")
			m.onError(w, r, err)
		}
	})
}
