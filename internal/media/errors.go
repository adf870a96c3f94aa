// EngagePredict - Social Media Engagement Prediction Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/engagepredict

package media

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is matching.
var (
	ErrUnsupportedType = errors.New("unsupported media type")
	ErrDecodeFailed    = errors.New("media decode failed")
)

// UnsupportedTypeError reports a content type outside the supported set.
type UnsupportedTypeError struct {
	ContentType string
	Supported   []string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported media type %q (supported: %s)",
		e.ContentType, strings.Join(e.Supported, ", "))
}

// Is reports whether target is ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// AnalysisError reports media bytes that could not be parsed.
type AnalysisError struct {
	MediaType string
	Err       error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("failed to analyze %s: %v", e.MediaType, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecodeFailed.
func (e *AnalysisError) Is(target error) bool {
	return target == ErrDecodeFailed
}
