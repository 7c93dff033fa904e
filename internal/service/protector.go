// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package service

import (
	"fmt"

	"github.com/AiyushKumar07/secure-capsule/internal/crypto"
	"github.com/AiyushKumar07/secure-capsule/internal/fieldcipher"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// ProtectorOptions tunes the payload protector. The zero value is usable:
// no decoys and the codec's default depth limit.
type ProtectorOptions struct {
	// DecoyCount is how many decoy fields every field-mode envelope carries.
	DecoyCount int

	// MaxDepth bounds record nesting; zero selects the codec default.
	MaxDepth int
}

type payloadProtector struct {
	cipher crypto.ValueCipher
	codec  *fieldcipher.Codec
	decoys int
}

// NewPayloadProtector builds a [PayloadProtector] over the given cipher
// adapter. The protector is stateless across calls and safe for concurrent
// use.
func NewPayloadProtector(cipher crypto.ValueCipher, opts ProtectorOptions) PayloadProtector {
	var codecOpts []fieldcipher.Option
	if opts.MaxDepth > 0 {
		codecOpts = append(codecOpts, fieldcipher.WithMaxDepth(opts.MaxDepth))
	}

	return &payloadProtector{
		cipher: cipher,
		codec:  fieldcipher.NewCodec(cipher, codecOpts...),
		decoys: opts.DecoyCount,
	}
}

func (p *payloadProtector) EncodeFields(payload any) (models.Record, error) {
	return p.codec.EncodeWithDecoys(payload, p.decoys)
}

func (p *payloadProtector) DecodeFields(envelope models.Record) (models.Record, error) {
	return p.codec.Decode(envelope)
}

func (p *payloadProtector) EncodePayload(payload any) (models.Record, error) {
	token, err := p.cipher.Encrypt(payload)
	if err != nil {
		return nil, fmt.Errorf("encrypt payload: %w", err)
	}
	return models.Record{models.EnvelopeKeyEncrypted: token}, nil
}

func (p *payloadProtector) DecodePayload(envelope models.Record) (any, error) {
	token, ok := envelope[models.EnvelopeKeyEncrypted].(string)
	if !ok || token == "" {
		return nil, fieldcipher.ErrMalformedEnvelope
	}

	var payload any
	if err := p.cipher.Decrypt(token, &payload); err != nil {
		return nil, fmt.Errorf("decrypt payload: %w", err)
	}
	return payload, nil
}

func (p *payloadProtector) Kind(body models.Record) models.EnvelopeKind {
	return models.DetectEnvelope(body)
}
