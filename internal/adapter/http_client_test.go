// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package adapter_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AiyushKumar07/secure-capsule/internal/adapter"
	"github.com/AiyushKumar07/secure-capsule/internal/crypto"
	handler "github.com/AiyushKumar07/secure-capsule/internal/handler/http"
	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/internal/service"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// newSecurePair spins up the real server stack and a secure client sharing
// the same key, mirroring the deployment topology.
func newSecurePair(t *testing.T) adapter.SecureTransport {
	t.Helper()

	key, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	cipher, err := crypto.NewSecretCipher(key)
	require.NoError(t, err)
	protector := service.NewPayloadProtector(cipher, service.ProtectorOptions{DecoyCount: 1})

	h := handler.NewHandler(protector, "", "test", logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return adapter.NewSecureClient(
		adapter.SecureClientConfig{BaseURL: srv.URL},
		protector,
	)
}

type profile struct {
	Name   string   `json:"name"`
	Age    int      `json:"age"`
	Active bool     `json:"active"`
	Tags   []string `json:"tags"`
}

func TestSecureClient_PostRoundTrip(t *testing.T) {
	client := newSecurePair(t)

	in := profile{Name: "Ann", Age: 34, Active: true, Tags: []string{"a", "b"}}
	var out profile
	require.NoError(t, client.Post(context.Background(), "/api/echo", in, &out))

	assert.Equal(t, in, out)
}

func TestSecureClient_PostNonObjectBody(t *testing.T) {
	client := newSecurePair(t)

	in := []string{"one", "two"}
	var out []string
	require.NoError(t, client.Post(context.Background(), "/api/echo", in, &out))

	assert.Equal(t, in, out)
}

func TestSecureClient_NilOutDiscardsResponse(t *testing.T) {
	client := newSecurePair(t)

	require.NoError(t, client.Post(context.Background(), "/api/echo", profile{Name: "Ann"}, nil))
}

func TestSecureClient_GetPlaintextEndpoint(t *testing.T) {
	client := newSecurePair(t)

	var version models.VersionResponse
	require.NoError(t, client.Get(context.Background(), "/api/version", &version))
	assert.Equal(t, "test", version.Version)
}

func TestSecureClient_KeyMismatchSurfacesBadRequest(t *testing.T) {
	// Server and client protectors hold different keys; the server cannot
	// open what the client seals.
	serverKey, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	serverCipher, err := crypto.NewSecretCipher(serverKey)
	require.NoError(t, err)
	serverProtector := service.NewPayloadProtector(serverCipher, service.ProtectorOptions{})

	h := handler.NewHandler(serverProtector, "", "test", logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	clientKey, err := crypto.GenerateSecretKey()
	require.NoError(t, err)
	clientCipher, err := crypto.NewSecretCipher(clientKey)
	require.NoError(t, err)
	clientProtector := service.NewPayloadProtector(clientCipher, service.ProtectorOptions{})

	client := adapter.NewSecureClient(adapter.SecureClientConfig{BaseURL: srv.URL}, clientProtector)

	err = client.Post(context.Background(), "/api/echo", profile{Name: "Ann"}, nil)
	assert.ErrorIs(t, err, adapter.ErrBadRequest)
}
