// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/engagepredict/internal/auth"
	"github.com/tomtom215/engagepredict/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	auth          *auth.Middleware
}

// NewRouter creates a router. identifier selects JWT or header identity.
func NewRouter(handler *Handler, mw *ChiMiddleware, identifier auth.Identifier) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	if identifier == nil {
		identifier = auth.NewHeaderAuthenticator()
	}
	return &Router{
		handler:       handler,
		chiMiddleware: mw,
		auth:          auth.NewMiddleware(identifier, writeAuthError),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, outermost first
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	r.Get("/", router.handler.Root)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Get("/", router.handler.Health)
			r.Get("/live", router.handler.HealthLive)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())
			r.Use(chimiddleware.Compress(5, "application/json"))

			r.Get("/platforms", router.handler.Platforms)
			r.With(router.auth.Optional).Post("/predict", router.handler.Predict)
			r.Post("/analyze-media", router.handler.AnalyzeMedia)

			r.Route("/history", func(r chi.Router) {
				r.Use(router.auth.Required)
				r.Get("/", router.handler.ListHistory)
				r.Get("/{id}", router.handler.GetHistory)
				r.Delete("/{id}", router.handler.DeleteHistory)
			})
		})
	})

	return r
}
