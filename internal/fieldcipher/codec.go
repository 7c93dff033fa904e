// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

// Package fieldcipher implements field-level payload encryption: every field
// name of a record is replaced by a random alias, every leaf value is
// encrypted independently, and the alias↔name correspondence travels inside
// the envelope as an encrypted side-channel (the mapping). Decoding walks the
// decrypted mapping, never the envelope body, so decoy fields injected to
// obscure the true field count are inert by construction.
package fieldcipher

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/AiyushKumar07/secure-capsule/internal/crypto"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// DefaultMaxDepth bounds record nesting on both encode and decode.
const DefaultMaxDepth = 32

// Codec is the field-level encryption engine. It is purely computational and
// stateless across calls; a Codec whose NameGenerator uses the shared
// randomness source is safe for concurrent use.
type Codec struct {
	cipher   crypto.ValueCipher
	names    *NameGenerator
	maxDepth int
}

// Option configures a [Codec].
type Option func(*Codec)

// WithNameSource makes alias generation deterministic by drawing from src.
// Intended for tests; a seeded codec must not be shared across goroutines.
func WithNameSource(src rand.Source) Option {
	return func(c *Codec) {
		c.names = NewNameGenerator(src)
	}
}

// WithMaxDepth overrides the nesting-depth limit.
func WithMaxDepth(depth int) Option {
	return func(c *Codec) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// NewCodec constructs a Codec over the given cipher adapter. The codec never
// touches key material; all cryptography goes through cipher.
func NewCodec(cipher crypto.ValueCipher, opts ...Option) *Codec {
	c := &Codec{
		cipher:   cipher,
		names:    NewNameGenerator(nil),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encode obfuscates payload into a transmissible envelope. payload must be a
// record (string-keyed object); anything else fails with [ErrInvalidInput].
func (c *Codec) Encode(payload any) (models.Record, error) {
	return c.EncodeWithDecoys(payload, 0)
}

// EncodeWithDecoys is [Codec.Encode] plus decoys additional top-level fields
// whose aliases appear nowhere in the mapping. Decoys are indistinguishable
// in shape from real fields and are silently ignored on decode.
func (c *Codec) EncodeWithDecoys(payload any, decoys int) (models.Record, error) {
	record, ok := payload.(map[string]any)
	if !ok || record == nil {
		return nil, ErrInvalidInput
	}

	envelope, mapping, err := c.build(record, 1)
	if err != nil {
		return nil, err
	}

	mappingToken, err := c.cipher.Encrypt(mapping)
	if err != nil {
		return nil, fmt.Errorf("encrypt mapping: %w", err)
	}

	envelope[models.EnvelopeKeyEncrypted] = true
	envelope[models.EnvelopeKeyTimestamp] = time.Now().UTC().Format(time.RFC3339)
	envelope[models.EnvelopeKeyMapping] = mappingToken

	// Decoys go straight into the envelope, never into the mapping.
	for i := 0; i < decoys; i++ {
		junk, err := c.cipher.Encrypt(c.names.Generate())
		if err != nil {
			return nil, fmt.Errorf("encrypt decoy: %w", err)
		}
		envelope[c.names.Generate()] = junk
	}

	return envelope, nil
}

// build is the recursive encode pass. Keys are visited in sorted order so the
// output is reproducible under a seeded name source.
func (c *Codec) build(record models.Record, depth int) (models.Record, models.Mapping, error) {
	if depth > c.maxDepth {
		return nil, nil, ErrMaxDepthExceeded
	}

	obfuscated := make(models.Record, len(record))
	mapping := make(models.Mapping, len(record))

	for _, name := range slices.Sorted(maps.Keys(record)) {
		value := record[name]

		// Explicitly-absent fields are dropped and do not round-trip.
		if models.IsAbsent(value) {
			continue
		}

		alias := c.names.Generate()

		if isNestedRecord(value) {
			subObfuscated, subMapping, err := c.build(value.(map[string]any), depth+1)
			if err != nil {
				return nil, nil, err
			}
			obfuscated[alias] = subObfuscated
			mapping[name] = models.MappingEntry{Alias: alias, Nested: subMapping}
			continue
		}

		token, err := c.cipher.Encrypt(value)
		if err != nil {
			return nil, nil, fmt.Errorf("encrypt field: %w", err)
		}
		obfuscated[alias] = token
		mapping[name] = models.MappingEntry{Alias: alias}
	}

	return obfuscated, mapping, nil
}

// Decode reverses [Codec.Encode]. The envelope must carry the boolean
// "encrypted" marker and the "_mapping" token, else [ErrMalformedEnvelope];
// a mapping token that cannot be opened surfaces the cipher's decryption
// error unchanged.
func (c *Codec) Decode(envelope models.Record) (models.Record, error) {
	if envelope == nil {
		return nil, ErrMalformedEnvelope
	}
	if encrypted, ok := envelope[models.EnvelopeKeyEncrypted].(bool); !ok || !encrypted {
		return nil, ErrMalformedEnvelope
	}
	mappingToken, ok := envelope[models.EnvelopeKeyMapping].(string)
	if !ok || mappingToken == "" {
		return nil, ErrMalformedEnvelope
	}

	var mapping models.Mapping
	if err := c.cipher.Decrypt(mappingToken, &mapping); err != nil {
		return nil, fmt.Errorf("decrypt mapping: %w", err)
	}

	body := make(models.Record, len(envelope))
	for key, value := range envelope {
		switch key {
		case models.EnvelopeKeyEncrypted, models.EnvelopeKeyTimestamp, models.EnvelopeKeyMapping:
		default:
			body[key] = value
		}
	}

	return c.resolve(body, mapping, 1)
}

// resolve is the recursive decode pass. It iterates the mapping, not the
// body: decoys and any stray keys are never even looked at. A missing or
// mis-shaped alias lookup skips that one field rather than failing the whole
// decode; this lossy tolerance is a deliberate policy, documented in
// DESIGN.md, not a bug.
func (c *Codec) resolve(body models.Record, mapping models.Mapping, depth int) (models.Record, error) {
	if depth > c.maxDepth {
		return nil, ErrMaxDepthExceeded
	}

	record := make(models.Record, len(mapping))

	for name, entry := range mapping {
		if entry.IsNested() {
			fragment, ok := body[entry.Alias].(map[string]any)
			if !ok {
				continue
			}
			resolved, err := c.resolve(fragment, entry.Nested, depth+1)
			if err != nil {
				return nil, err
			}
			record[name] = resolved
			continue
		}

		token, ok := body[entry.Alias].(string)
		if !ok {
			continue
		}
		var value any
		if err := c.cipher.Decrypt(token, &value); err != nil {
			return nil, fmt.Errorf("decrypt field: %w", err)
		}
		record[name] = value
	}

	return record, nil
}
