// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"math"
	"net/http"
	"time"

	"github.com/tomtom215/engagepredict/internal/models"
)

// ServiceInfo is returned by GET /.
type ServiceInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status         string               `json:"status"`
	ModelLoaded    bool                 `json:"model_loaded"`
	Source         models.ScoringSource `json:"source"`
	HistoryEnabled bool                 `json:"history_enabled"`
	UptimeSeconds  float64              `json:"uptime_seconds"`
	Version        string               `json:"version"`
}

// Root handles service info requests
//
// @Summary Service information
// @Description Returns the service name, version and status
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=ServiceInfo}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, ServiceInfo{
		Service: ServiceName,
		Version: Version,
		Status:  "running",
	})
}

// Health handles health check requests. The fallback scorer is a healthy
// mode, so this always answers 200.
//
// @Summary Get service health
// @Description Reports whether the trained ensemble is loaded and which scoring variant is active
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, HealthStatus{
		Status:         "healthy",
		ModelLoaded:    h.engine.IsReady(),
		Source:         h.engine.Source(),
		HistoryEnabled: h.history != nil,
		UptimeSeconds:  math.Round(time.Since(h.startTime).Seconds()*10) / 10,
		Version:        Version,
	})
}

// HealthLive handles liveness probe requests
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, map[string]interface{}{
		"alive": true,
	})
}

// Platforms lists the platform profiles
//
// @Summary List platform profiles
// @Description Returns the posting guidance for every supported platform
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=[]platform.Profile}
// @Router /platforms [get]
func (h *Handler) Platforms(w http.ResponseWriter, r *http.Request) {
	profiles := h.engine.Profiles().Profiles()
	NewResponseWriter(w, r).SuccessList(profiles, len(profiles))
}
