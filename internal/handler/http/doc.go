// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

// Package http is the transport-layer collaborator of the encryption engine:
// chi middleware that decrypts marked request bodies before handlers see
// them and encrypts response bodies after handlers return, plus the demo
// endpoints used to exercise a full round trip. Handlers behind the
// middleware pair deal exclusively in plaintext JSON.
package http
