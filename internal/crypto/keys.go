// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/box"
)

const (
	// SecretKeySize is the shared-secret key length (AES-256).
	SecretKeySize = 32

	// PublicKeySize is the length of each half of a Curve25519 key pair.
	PublicKeySize = 32
)

// GenerateSecretKey reads a fresh 32-byte shared key from the OS CSPRNG.
func GenerateSecretKey() ([]byte, error) {
	key := make([]byte, SecretKeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate secret key: %w", err)
	}
	return key, nil
}

// GenerateKeyPair produces a fresh Curve25519 key pair for the public mode.
func GenerateKeyPair() (publicKey, privateKey []byte, err error) {
	pub, priv, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate key pair: %w", err)
	}
	return pub[:], priv[:], nil
}

// EncodeKey renders raw key bytes as base64 for configuration values.
func EncodeKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// DecodeKey parses a base64 configuration value back into raw key bytes.
// An empty string decodes to nil without error, so optional keys (e.g. the
// private half on a sender-only deployment) can stay unset.
func DecodeKey(encoded string) ([]byte, error) {
	if encoded == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode key: %w", err)
	}
	return key, nil
}

// NewCipherForMode builds the [ValueCipher] selected by mode from raw key
// material. It is the single construction point used by both binaries.
func NewCipherForMode(mode Mode, secretKey, publicKey, privateKey []byte) (ValueCipher, error) {
	switch mode {
	case ModeSecret:
		return NewSecretCipher(secretKey)
	case ModePublic:
		return NewPublicCipher(publicKey, privateKey)
	default:
		return nil, fmt.Errorf("unknown protection mode %q", mode)
	}
}
