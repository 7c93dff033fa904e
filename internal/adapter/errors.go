// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package adapter

import "errors"

// Sentinel errors the secure client maps HTTP failure statuses onto.
// Callers match them with [errors.Is].
var (
	// ErrBadRequest covers 400 responses, including the server refusing a
	// payload it could not decrypt.
	ErrBadRequest = errors.New("bad request")

	// ErrServerFailure covers 5xx responses.
	ErrServerFailure = errors.New("server failure")

	// ErrUnexpectedStatus covers every other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)
