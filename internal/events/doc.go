// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package events provides the in-process event bus that moves prediction
history writes off the request path.

# Architecture

	POST /api/v1/predict
	        |
	        v
	Bus.PublishPrediction --> gochannel "prediction.recorded"
	                                  |
	                                  v
	                    Router (PoisonQueue > Recoverer > Retry)
	                                  |
	                                  v
	                    history-recorder --> history.BadgerStore
	                                  |
	                         (retries exhausted)
	                                  v
	                    "prediction.poison" --> poison-logger

Payloads are JSON encoded history.Record values. The correlation_id and
request_id of the originating HTTP request travel as message metadata and
are restored into the handler context, so logging.Ctx lines from the
recorder can be joined with the request log.

The gochannel pub/sub is not persistent: events published while no handler
is subscribed are dropped. The server waits for Running before accepting
traffic.
*/
package events
