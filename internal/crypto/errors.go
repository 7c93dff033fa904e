// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package crypto

import "errors"

// Sentinel errors returned by [ValueCipher] implementations and the key
// helpers. Callers match them with [errors.Is]. Messages deliberately carry
// no key material and no plaintext fragments.
var (
	// ErrEncryptionFailure indicates the underlying primitive failed while
	// sealing a value (for example, the randomness source returned an error).
	ErrEncryptionFailure = errors.New("encryption failure")

	// ErrDecryptionFailure indicates a token could not be opened: malformed
	// encoding, authentication-tag mismatch, or wrong key. Retrying with the
	// same inputs cannot succeed.
	ErrDecryptionFailure = errors.New("decryption failure")

	// ErrInvalidKey indicates key material of the wrong length was supplied
	// to a cipher constructor.
	ErrInvalidKey = errors.New("invalid key length")

	// ErrNoPrivateKey indicates a decrypt was attempted on a public-mode
	// cipher constructed without the private half of the key pair.
	ErrNoPrivateKey = errors.New("private key not available")
)
