package service

import "github.com/AiyushKumar07/secure-capsule/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/payload_protector_mock.go -package=mock

// PayloadProtector is the single façade the transport layer talks to. It
// offers the two payload styles side by side: field mode, which obfuscates
// structure as well as values, and whole-payload mode, which seals the body
// as one opaque token.
type PayloadProtector interface {
	// EncodeFields field-encrypts payload, which must be a string-keyed
	// object, into a field-mode envelope (including any configured decoys).
	EncodeFields(payload any) (models.Record, error)

	// DecodeFields reverses EncodeFields.
	DecodeFields(envelope models.Record) (models.Record, error)

	// EncodePayload seals payload whole: {"encrypted": "<token>"}. Unlike
	// field mode it accepts any JSON-serializable value.
	EncodePayload(payload any) (models.Record, error)

	// DecodePayload reverses EncodePayload.
	DecodePayload(envelope models.Record) (any, error)

	// Kind classifies a decoded JSON body so the caller can pick the
	// matching decode entry point.
	Kind(body models.Record) models.EnvelopeKind
}
