// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// secretCipher is the shared-secret [ValueCipher]: AES-256-GCM with a random
// 12-byte nonce prepended to the ciphertext (blob = nonce ‖ ciphertext), the
// whole blob base64-encoded with the standard alphabet.
type secretCipher struct {
	gcm cipher.AEAD
}

// NewSecretCipher constructs the shared-secret cipher from a 32-byte key.
// Both peers must hold the same key.
func NewSecretCipher(key []byte) (ValueCipher, error) {
	if len(key) != SecretKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d: %w", SecretKeySize, len(key), ErrInvalidKey)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &secretCipher{gcm: gcm}, nil
}

// Encrypt implements [ValueCipher].
func (c *secretCipher) Encrypt(value any) (string, error) {
	plaintext, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}

	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", ErrEncryptionFailure)
	}

	// Prepend the nonce so Decrypt can split it out again.
	blob := c.gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [ValueCipher].
func (c *secretCipher) Decrypt(token string, target any) error {
	blob, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", ErrDecryptionFailure)
	}

	nonceSize := c.gcm.NonceSize()
	if len(blob) < nonceSize {
		return fmt.Errorf("token too short: %w", ErrDecryptionFailure)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		// Wrong key or corrupted ciphertext; the distinction is not
		// observable and must not be reported.
		return ErrDecryptionFailure
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	return nil
}

// Mode implements [ValueCipher].
func (c *secretCipher) Mode() Mode { return ModeSecret }
