// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

/*
Package validation provides request validation using go-playground/validator v10.

A single validator instance is shared by every handler; it caches struct
metadata after the first use. Field names in errors come from the json tag,
and nested fields are reported with a dotted path (mediaInfo.width).

# Usage

	type PredictRequest struct {
	    Caption string `json:"caption" validate:"max=10000"`
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
	    apiErr := verr.ToAPIError() // Code: VALIDATION_FAILED
	    ...
	}

String length limits count Unicode code points, matching how captions are
measured by the feature extractor.
*/
package validation
