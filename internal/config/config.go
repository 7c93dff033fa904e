// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package config

import "time"

// StructuredConfig is the top-level configuration container for
// secure-capsule. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file, and built-in defaults, in that order of precedence.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the protection-mode selection and key material settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Client holds settings for the outbound secure client.
	Client Client `envPrefix:"CLIENT_"`

	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file. When
	// non-empty, the file is parsed and merged underneath the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto selects the protection mode and carries the key material for it.
// Keys are base64-encoded in configuration and decoded at startup.
type Crypto struct {
	// Mode is the protection mode: "secret" (shared-key AES-256-GCM) or
	// "public" (NaCl anonymous box).
	// Env: CRYPTO_MODE
	Mode string `env:"MODE"`

	// SecretKey is the base64 shared key, required in secret mode.
	// Env: CRYPTO_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// PublicKey is the base64 recipient public key, required in public mode.
	// Env: CRYPTO_PUBLIC_KEY
	PublicKey string `env:"PUBLIC_KEY"`

	// PrivateKey is the base64 private key. Required in public mode on the
	// receiving side; senders may leave it empty.
	// Env: CRYPTO_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// DecoyCount is how many decoy fields each field-mode envelope carries.
	// Env: CRYPTO_DECOY_COUNT
	DecoyCount int `env:"DECOY_COUNT"`

	// MaxDepth bounds record nesting on encode and decode. Zero selects the
	// engine default (32).
	// Env: CRYPTO_MAX_DEPTH
	MaxDepth int `env:"MAX_DEPTH"`

	// EncryptionHeader is the boolean marker header set on encrypted
	// exchanges. Defaults to "X-Encrypted".
	// Env: CRYPTO_ENCRYPTION_HEADER
	EncryptionHeader string `env:"ENCRYPTION_HEADER"`
}

// Server holds the HTTP server settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request read/write timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds the outbound secure-client settings.
type Client struct {
	// BaseURL is the server base URL the client talks to.
	// Env: CLIENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout is the overall request timeout.
	// Env: CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string exposed by the version
	// endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Protection-mode values accepted by [Crypto.Mode].
const (
	ModeSecret = "secret"
	ModePublic = "public"
)
