// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/nacl/box"
)

// publicCipher is the public-key [ValueCipher]: NaCl anonymous box
// (X25519 + XSalsa20-Poly1305 with an ephemeral sender key). Encryption needs
// only the recipient's public key; decryption needs the full key pair.
type publicCipher struct {
	pub  *[PublicKeySize]byte
	priv *[PublicKeySize]byte // nil on an encrypt-only instance
}

// NewPublicCipher constructs the public-key cipher. publicKey is required and
// must be 32 bytes. privateKey may be nil, producing an encrypt-only cipher
// (the sender side); when present it must also be 32 bytes.
func NewPublicCipher(publicKey, privateKey []byte) (ValueCipher, error) {
	if len(publicKey) != PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d: %w", PublicKeySize, len(publicKey), ErrInvalidKey)
	}

	c := &publicCipher{pub: new([PublicKeySize]byte)}
	copy(c.pub[:], publicKey)

	if privateKey != nil {
		if len(privateKey) != PublicKeySize {
			return nil, fmt.Errorf("private key must be %d bytes, got %d: %w", PublicKeySize, len(privateKey), ErrInvalidKey)
		}
		c.priv = new([PublicKeySize]byte)
		copy(c.priv[:], privateKey)
	}

	return c, nil
}

// Encrypt implements [ValueCipher].
func (c *publicCipher) Encrypt(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	blob, err := box.SealAnonymous(nil, plaintext, c.pub, rand.Reader)
	if err != nil {
		return "", fmt.Errorf("seal value: %w", ErrEncryptionFailure)
	}

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ValueCipher].
func (c *publicCipher) Decrypt(token string, target any) error {
	if c.priv == nil {
		return ErrNoPrivateKey
	}

	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", ErrDecryptionFailure)
	}

	plaintext, ok := box.OpenAnonymous(nil, blob, c.pub, c.priv)
	if !ok {
		return ErrDecryptionFailure
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	return nil
}

// Mode implements [ValueCipher].
func (c *publicCipher) Mode() Mode { return ModePublic }
