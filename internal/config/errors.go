package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrUnknownMode indicates a protection mode other than "secret" or
	// "public".
	ErrUnknownMode = errors.New("unknown protection mode")
	// ErrMissingKeyMaterial indicates the selected mode's key is not
	// configured (secret key for secret mode, public key for public mode).
	ErrMissingKeyMaterial = errors.New("missing key material for selected mode")
	// ErrInvalidCryptoConfigs indicates negative decoy or depth settings.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidServerConfigs indicates missing address or non-positive
	// timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
