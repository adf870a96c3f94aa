// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package auth identifies the user behind a request so prediction history can
be scoped to its owner.

Two identifiers are available:

  - JWTAuthenticator: HS256 bearer tokens signed with auth.jwt_secret. The
    registered "sub" claim is the user ID. Any other algorithm is rejected.
  - HeaderAuthenticator: trusts the X-User-ID header. Selected when no
    secret is configured, for local development only.

Middleware.Required guards the history routes and answers 401 through the
supplied ErrorWriter. Middleware.Optional is used on /api/v1/predict, where
anonymous requests are scored but not recorded.

Usage:

	manager, err := auth.NewJWTManager(cfg.Auth.JWTSecret, 0)
	if err != nil {
	    return err
	}
	mw := auth.NewMiddleware(auth.NewJWTAuthenticator(manager), writeAuthError)
	r.With(mw.Required).Get("/history", h.ListHistory)

Handlers read the caller with UserIDFromContext.

There are no roles: the only authorization rule is that a user may read and
delete their own records.
*/
package auth
