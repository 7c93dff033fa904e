package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsFillUnsetFields(t *testing.T) {
	t.Setenv("CRYPTO_SECRET_KEY", "c2VjcmV0")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, ModeSecret, cfg.Crypto.Mode)
	assert.Equal(t, "c2VjcmV0", cfg.Crypto.SecretKey)
	assert.Equal(t, "X-Encrypted", cfg.Crypto.EncryptionHeader)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	t.Setenv("CRYPTO_SECRET_KEY", "c2VjcmV0")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9999")

	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9999", cfg.Server.HTTPAddress)
}

func TestBuild_ValidationFailures(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv("CRYPTO_MODE", "pigeon")

		_, err := newConfigBuilder().withEnv().withDefaults().build()
		assert.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("secret mode without key", func(t *testing.T) {
		_, err := newConfigBuilder().withDefaults().build()
		assert.ErrorIs(t, err, ErrMissingKeyMaterial)
	})

	t.Run("public mode without public key", func(t *testing.T) {
		t.Setenv("CRYPTO_MODE", "public")

		_, err := newConfigBuilder().withEnv().withDefaults().build()
		assert.ErrorIs(t, err, ErrMissingKeyMaterial)
	})
}

func TestBuild_JSONMergedUnderEnv(t *testing.T) {
	path := writeConfigFile(t, `{
		"crypto": {"secret_key": "ZnJvbS1qc29u", "decoy_count": 5},
		"server": {"http_address": "json:1111"}
	}`)
	t.Setenv("CONFIG", path)
	t.Setenv("SERVER_ADDRESS", "env:2222")

	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	// Env wins over JSON; JSON wins over defaults.
	assert.Equal(t, "env:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "ZnJvbS1qc29u", cfg.Crypto.SecretKey)
	assert.Equal(t, 5, cfg.Crypto.DecoyCount)
}
