// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/engagepredict/internal/auth"
	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/logging"
)

// maxRecordIDLength bounds the {id} path parameter.
const maxRecordIDLength = 64

// ListHistory returns the caller's predictions, newest first
//
// @Summary List prediction history
// @Tags History
// @Produce json
// @Param limit query int false "Maximum records (default 50, max 200)"
// @Success 200 {object} APIResponse{data=[]history.Record}
// @Failure 400 {object} APIResponse "Invalid limit"
// @Failure 401 {object} APIResponse "Missing or invalid credentials"
// @Failure 503 {object} APIResponse "History disabled"
// @Security BearerAuth
// @Router /history [get]
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.history == nil {
		rw.ServiceUnavailable("Prediction history is disabled")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			rw.BadRequest("limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.history.ListByUser(r.Context(), auth.UserIDFromContext(r.Context()), h.history.ClampLimit(limit))
	if err != nil {
		rw.InternalError(err)
		return
	}
	if records == nil {
		records = []*history.Record{}
	}
	rw.SuccessList(records, len(records))
}

// GetHistory returns one of the caller's predictions
//
// @Summary Get a prediction record
// @Tags History
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse{data=history.Record}
// @Failure 401 {object} APIResponse "Missing or invalid credentials"
// @Failure 403 {object} APIResponse "Record belongs to another user"
// @Failure 404 {object} APIResponse "Record not found"
// @Security BearerAuth
// @Router /history/{id} [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.history == nil {
		rw.ServiceUnavailable("Prediction history is disabled")
		return
	}

	id, ok := recordIDParam(r)
	if !ok {
		rw.NotFound("Prediction not found")
		return
	}

	rec, err := h.history.Get(r.Context(), id)
	if err != nil {
		h.writeHistoryError(rw, r, err)
		return
	}
	if rec.UserID != auth.UserIDFromContext(r.Context()) {
		h.writeHistoryError(rw, r, history.ErrForbidden)
		return
	}
	rw.Success(rec)
}

// DeleteHistory deletes one of the caller's predictions
//
// @Summary Delete a prediction record
// @Tags History
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} APIResponse
// @Failure 401 {object} APIResponse "Missing or invalid credentials"
// @Failure 403 {object} APIResponse "Record belongs to another user"
// @Failure 404 {object} APIResponse "Record not found"
// @Security BearerAuth
// @Router /history/{id} [delete]
func (h *Handler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.history == nil {
		rw.ServiceUnavailable("Prediction history is disabled")
		return
	}

	id, ok := recordIDParam(r)
	if !ok {
		rw.NotFound("Prediction not found")
		return
	}

	userID := auth.UserIDFromContext(r.Context())
	if err := h.history.Delete(r.Context(), id, userID); err != nil {
		h.writeHistoryError(rw, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("prediction_id", id).Str("user_id", userID).Msg("Prediction deleted")
	rw.Success(map[string]interface{}{
		"deleted": true,
		"id":      id,
	})
}

func recordIDParam(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" || len(id) > maxRecordIDLength {
		return "", false
	}
	return id, true
}

// writeHistoryError maps store errors to status codes.
func (h *Handler) writeHistoryError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, history.ErrNotFound):
		rw.NotFound("Prediction not found")
	case errors.Is(err, history.ErrForbidden):
		logging.Ctx(r.Context()).Warn().
			Str("user_id", auth.UserIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("History access denied")
		rw.Forbidden("Prediction belongs to another user")
	default:
		rw.InternalError(err)
	}
}
