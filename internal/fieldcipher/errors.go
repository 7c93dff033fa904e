// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package fieldcipher

import "errors"

// Errors raised by the field-encryption codec. Callers match them with
// [errors.Is]. None of them is retryable: each indicates a structural problem
// with the input that a retry cannot fix.
var (
	// ErrInvalidInput is returned when field encryption is invoked on a
	// top-level value that is not a record (e.g. an array or a primitive).
	ErrInvalidInput = errors.New("field encryption requires an object payload")

	// ErrMalformedEnvelope is returned on decode when the body lacks the
	// "encrypted" marker or the "_mapping" token.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrMaxDepthExceeded is returned when a record nests deeper than the
	// codec's configured limit, guarding against stack exhaustion on
	// adversarial payloads.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)
