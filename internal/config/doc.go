// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

// Package config loads and merges secure-capsule configuration from
// environment variables, command-line flags, an optional JSON file, and
// built-in defaults, in that order of precedence. The merged result is
// validated before use; key material stays base64-encoded here and is only
// decoded by the binaries at startup.
package config
