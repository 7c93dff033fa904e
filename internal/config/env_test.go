package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedGroups(t *testing.T) {
	t.Setenv("CRYPTO_MODE", "public")
	t.Setenv("CRYPTO_PUBLIC_KEY", "cHVibGlj")
	t.Setenv("CRYPTO_DECOY_COUNT", "4")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("CLIENT_BASE_URL", "https://capsule.example.com")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "public", cfg.Crypto.Mode)
	assert.Equal(t, "cHVibGlj", cfg.Crypto.PublicKey)
	assert.Equal(t, 4, cfg.Crypto.DecoyCount)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://capsule.example.com", cfg.Client.BaseURL)
}

func TestParseEnv_InvalidValueFails(t *testing.T) {
	t.Setenv("CRYPTO_DECOY_COUNT", "many")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
