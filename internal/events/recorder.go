// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/goccy/go-json"

	"github.com/tomtom215/engagepredict/internal/history"
	"github.com/tomtom215/engagepredict/internal/logging"
	"github.com/tomtom215/engagepredict/internal/metrics"
)

// Handler names
const (
	HandlerHistoryRecorder = "history-recorder"
	HandlerPoisonLogger    = "poison-logger"
)

// RecordSaver persists prediction records.
//
// Satisfied by *history.BadgerStore.
type RecordSaver interface {
	Save(ctx context.Context, rec *history.Record) error
}

// RegisterHistoryRecorder subscribes the history-recorder handler to
// prediction.recorded. Undecodable payloads and records without a user are
// acknowledged and dropped; store errors are retried and then poisoned.
func (b *Bus) RegisterHistoryRecorder(store RecordSaver) {
	b.router.AddConsumerHandler(
		HandlerHistoryRecorder,
		TopicPredictionRecorded,
		b.pubsub,
		func(msg *message.Message) error {
			ctx := contextFromMessage(msg)
			log := logging.Ctx(ctx)

			var rec history.Record
			if err := json.Unmarshal(msg.Payload, &rec); err != nil {
				log.Error().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping undecodable prediction event")
				metrics.RecordHistoryWrite(err)
				return nil
			}

			err := store.Save(ctx, &rec)
			if errors.Is(err, history.ErrMissingUser) {
				log.Warn().Str("message_uuid", msg.UUID).Msg("Dropping anonymous prediction event")
				return nil
			}
			metrics.RecordHistoryWrite(err)
			if err != nil {
				return fmt.Errorf("save prediction %s: %w", rec.ID, err)
			}

			log.Debug().
				Str("prediction_id", rec.ID).
				Str("user_id", rec.UserID).
				Int("score", rec.Score).
				Msg("Prediction recorded")
			return nil
		},
	)
}

// RegisterPoisonLogger logs every message that exhausted its retries.
func (b *Bus) RegisterPoisonLogger() {
	b.router.AddConsumerHandler(
		HandlerPoisonLogger,
		TopicPoisoned,
		b.pubsub,
		func(msg *message.Message) error {
			logging.Ctx(contextFromMessage(msg)).Error().
				Str("message_uuid", msg.UUID).
				Str("reason", msg.Metadata.Get(middleware.ReasonForPoisonedKey)).
				Str("handler", msg.Metadata.Get(middleware.PoisonedHandlerKey)).
				Msg("Prediction event poisoned")
			return nil
		},
	)
}
