// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/engagepredict/internal/auth"
	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/logging"
	"github.com/tomtom215/engagepredict/internal/media"
	"github.com/tomtom215/engagepredict/internal/models"
	"github.com/tomtom215/engagepredict/internal/recommend"
	"github.com/tomtom215/engagepredict/internal/validation"
)

// Multipart field names accepted by /analyze-media, in lookup order.
var uploadFields = []string{"file", "media"}

// multipartOverhead allows for boundaries and part headers on top of the
// file itself.
const multipartOverhead = 64 << 10

// PredictResponse is the data of a successful prediction.
type PredictResponse struct {
	*models.EngagementResult
	recommend.Recommendations

	// ID is the history record ID. Only set when the prediction is recorded.
	ID string `json:"id,omitempty"`
}

// Predict scores a proposed post
//
// @Summary Predict engagement
// @Description Scores a post 0-100, classifies it Low/Medium/High and returns feedback, tips and estimated counts.
// @Description Absent fields default to platform "instagram", postingTime "12:00", dayOfWeek "Wednesday" and targetAudience "General".
// @Tags Prediction
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Post to score"
// @Success 200 {object} APIResponse{data=PredictResponse}
// @Failure 400 {object} APIResponse "Malformed JSON or a field over its size limit"
// @Failure 401 {object} APIResponse "Invalid bearer token"
// @Security BearerAuth
// @Router /predict [post]
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx := r.Context()

	var req PredictRequest
	if err := decodeJSON(w, r, maxPredictBodyBytes, &req); err != nil {
		if errors.Is(err, errBodyTooLarge) {
			rw.PayloadTooLarge(maxPredictBodyBytes)
			return
		}
		rw.BadRequest(err.Error())
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	userID := h.resolveUser(r, &req)
	post := req.toPost(userID)

	result, err := h.engine.Predict(ctx, post)
	if err != nil {
		rw.InternalError(err)
		return
	}
	recs := h.engine.Recommend(result.Score, post)

	resp := PredictResponse{
		EngagementResult: result,
		Recommendations:  recs,
	}
	if id := h.recordPrediction(r, userID, post, result, recs.Tips); id != "" {
		resp.ID = id
	}

	logging.Ctx(ctx).Debug().
		Int("score", result.Score).
		Str("tier", result.Tier.String()).
		Str("source", string(result.Source)).
		Bool("recorded", resp.ID != "").
		Msg("Prediction served")

	rw.Success(resp)
}

// resolveUser returns the authenticated user, or in header-identity mode the
// userId body field when it is a valid ID.
func (h *Handler) resolveUser(r *http.Request, req *PredictRequest) string {
	if id := auth.UserIDFromContext(r.Context()); id != "" {
		return id
	}
	if h.config.HeaderIdentity && auth.ValidUserID(req.UserID) {
		return req.UserID
	}
	return ""
}

// recordPrediction publishes the prediction for the history recorder and
// returns the record ID. Anonymous predictions and publish failures return
// "" and never fail the request.
//
//nolint:gocritic // hugeParam: post passed by value for immutability
func (h *Handler) recordPrediction(r *http.Request, userID string, post models.Post, result *models.EngagementResult, tips []string) string {
	if userID == "" || h.publisher == nil {
		return ""
	}

	rec := history.NewRecord(userID, post, result, tips)
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()

	if err := h.publisher.PublishPrediction(r.Context(), rec); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("user_id", userID).Msg("Failed to publish prediction event")
		return ""
	}
	return rec.ID
}

// AnalyzeMedia describes an uploaded image or video
//
// @Summary Analyze media
// @Description Returns dimensions, orientation, resolution and quality of an uploaded file. Images are decoded header-only; videos receive default values.
// @Tags Prediction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Media file (field name file or media)"
// @Success 200 {object} APIResponse{data=models.MediaInfo}
// @Failure 400 {object} APIResponse "Missing or empty file"
// @Failure 413 {object} APIResponse "File exceeds the upload limit"
// @Failure 415 {object} APIResponse "Unsupported media type; details.supported_types lists accepted types"
// @Failure 422 {object} APIResponse "File could not be decoded"
// @Router /analyze-media [post]
func (h *Handler) AnalyzeMedia(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	data, contentType, err := h.readUpload(w, r)
	if err != nil {
		switch {
		case errors.Is(err, errBodyTooLarge):
			rw.PayloadTooLarge(h.config.MaxUploadBytes)
		default:
			rw.BadRequest(err.Error())
		}
		return
	}

	info, err := h.engine.AnalyzeMedia(r.Context(), data, contentType)
	if err != nil {
		var unsupported *media.UnsupportedTypeError
		switch {
		case errors.As(err, &unsupported):
			rw.UnsupportedMediaType(unsupported.ContentType, unsupported.Supported)
		case errors.Is(err, media.ErrUnsupportedType):
			rw.UnsupportedMediaType(contentType, supportedMediaTypes())
		case errors.Is(err, media.ErrDecodeFailed):
			rw.Unprocessable(err.Error())
		default:
			rw.InternalError(err)
		}
		return
	}

	rw.Success(info)
}

// readUpload streams the multipart body and returns the first part named
// "file" or "media" with its declared content type.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, string, error) {
	maxBytes := h.config.MaxUploadBytes
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	if mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type")); err != nil || mediaType != "multipart/form-data" {
		return nil, "", errors.New("request must be multipart/form-data")
	}
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, "", errors.New("invalid multipart body")
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, "", errors.New("missing file field (expected \"file\" or \"media\")")
		}
		if err != nil {
			if isMaxBytes(err) {
				return nil, "", errBodyTooLarge
			}
			return nil, "", errors.New("invalid multipart body")
		}

		if !slices.Contains(uploadFields, part.FormName()) {
			_ = part.Close()
			continue
		}

		data, err := io.ReadAll(io.LimitReader(part, maxBytes+1))
		_ = part.Close()
		if err != nil {
			if isMaxBytes(err) {
				return nil, "", errBodyTooLarge
			}
			return nil, "", errors.New("failed to read uploaded file")
		}
		if int64(len(data)) > maxBytes {
			return nil, "", errBodyTooLarge
		}
		if len(data) == 0 {
			return nil, "", errors.New("uploaded file is empty")
		}
		return data, part.Header.Get("Content-Type"), nil
	}
}

func isMaxBytes(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
