// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package models

// Reserved envelope keys. Every other top-level key of a field-mode envelope
// is either a real alias registered in the (encrypted) mapping or a decoy.
const (
	// EnvelopeKeyEncrypted marks a field-mode envelope (boolean true) or, in
	// whole-payload mode, carries the opaque token itself (string).
	EnvelopeKeyEncrypted = "encrypted"

	// EnvelopeKeyTimestamp holds the RFC 3339 time at which the envelope was
	// produced.
	EnvelopeKeyTimestamp = "timestamp"

	// EnvelopeKeyMapping holds the encrypted alias mapping of a field-mode
	// envelope.
	EnvelopeKeyMapping = "_mapping"
)

// EnvelopeKind classifies a decoded JSON body for the transport layer.
type EnvelopeKind int

const (
	// EnvelopePlain: not an envelope at all; pass the body through untouched.
	EnvelopePlain EnvelopeKind = iota

	// EnvelopeField: field-mode envelope ("encrypted": true plus "_mapping").
	EnvelopeField

	// EnvelopeWhole: whole-payload envelope ("encrypted": "<token>").
	EnvelopeWhole
)

// DetectEnvelope inspects a decoded JSON object and reports which envelope
// shape it carries, if any. It is used on the receive side to choose the
// matching decode entry point.
func DetectEnvelope(body Record) EnvelopeKind {
	if body == nil {
		return EnvelopePlain
	}

	switch marker := body[EnvelopeKeyEncrypted].(type) {
	case bool:
		if _, ok := body[EnvelopeKeyMapping].(string); marker && ok {
			return EnvelopeField
		}
	case string:
		if marker != "" {
			return EnvelopeWhole
		}
	}

	return EnvelopePlain
}
