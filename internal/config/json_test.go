package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJSON_FullFile(t *testing.T) {
	path := writeConfigFile(t, `{
		"crypto": {
			"mode": "secret",
			"secret_key": "c2VjcmV0",
			"decoy_count": 2,
			"encryption_header": "X-Capsule"
		},
		"server": {
			"http_address": "localhost:7070",
			"request_timeout": "45s"
		},
		"client": {
			"base_url": "http://localhost:7070",
			"timeout": "10s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Crypto.Mode)
	assert.Equal(t, "c2VjcmV0", cfg.Crypto.SecretKey)
	assert.Equal(t, 2, cfg.Crypto.DecoyCount)
	assert.Equal(t, "X-Capsule", cfg.Crypto.EncryptionHeader)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeConfigFile(t, `{"server": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{"crypto": `)

	_, err := parseJSON(path)
	assert.Error(t, err)
}
