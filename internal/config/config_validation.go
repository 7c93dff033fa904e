// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup: a known protection mode, the key
// material that mode requires, and sane engine parameters.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Crypto.Mode {
	case ModeSecret:
		if cfg.Crypto.SecretKey == "" {
			return ErrMissingKeyMaterial
		}
	case ModePublic:
		if cfg.Crypto.PublicKey == "" {
			return ErrMissingKeyMaterial
		}
	default:
		return ErrUnknownMode
	}

	if cfg.Crypto.DecoyCount < 0 || cfg.Crypto.MaxDepth < 0 {
		return ErrInvalidCryptoConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
