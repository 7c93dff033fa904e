package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func newSecret(t *testing.T) ValueCipher {
	t.Helper()

	key, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey error: %v", err)
	}
	c, err := NewSecretCipher(key)
	if err != nil {
		t.Fatalf("NewSecretCipher error: %v", err)
	}
	return c
}

func TestGenerateSecretKey_LengthAndRandomness(t *testing.T) {
	k1, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey error: %v", err)
	}
	k2, err := GenerateSecretKey()
	if err != nil {
		t.Fatalf("GenerateSecretKey error: %v", err)
	}

	if len(k1) != SecretKeySize {
		t.Fatalf("key length = %d, want %d", len(k1), SecretKeySize)
	}
	if bytes.Equal(k1, k2) {
		t.Fatalf("expected keys to differ, but they are equal")
	}
}

func TestNewSecretCipher_RejectsShortKey(t *testing.T) {
	_, err := NewSecretCipher([]byte("too short"))
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("error = %v, want ErrInvalidKey", err)
	}
}

func TestSecretCipher_RoundTrip(t *testing.T) {
	c := newSecret(t)

	in := map[string]any{"name": "Ann", "tags": []any{float64(1), float64(2)}}
	token, err := c.Encrypt(in)
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	var out map[string]any
	if err := c.Decrypt(token, &out); err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if out["name"] != "Ann" {
		t.Fatalf("name = %v, want Ann", out["name"])
	}
	if tags, ok := out["tags"].([]any); !ok || len(tags) != 2 {
		t.Fatalf("tags = %v, want two elements", out["tags"])
	}
}

func TestSecretCipher_FreshRandomnessPerCall(t *testing.T) {
	c := newSecret(t)

	t1, err := c.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	t2, err := c.Encrypt("same value")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	if t1 == t2 {
		t.Fatalf("expected distinct tokens for repeated encryption")
	}
}

func TestSecretCipher_WrongKeyFails(t *testing.T) {
	c1 := newSecret(t)
	c2 := newSecret(t)

	token, err := c1.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	var out any
	if err := c2.Decrypt(token, &out); !errors.Is(err, ErrDecryptionFailure) {
		t.Fatalf("error = %v, want ErrDecryptionFailure", err)
	}
}

func TestSecretCipher_TruncatedTokenFails(t *testing.T) {
	c := newSecret(t)

	token, err := c.Encrypt("secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	var out any
	if err := c.Decrypt(token[:len(token)-1], &out); !errors.Is(err, ErrDecryptionFailure) {
		t.Fatalf("error = %v, want ErrDecryptionFailure", err)
	}
}

func TestSecretCipher_GarbageTokenFails(t *testing.T) {
	c := newSecret(t)

	var out any
	if err := c.Decrypt("not base64 at all!!!", &out); !errors.Is(err, ErrDecryptionFailure) {
		t.Fatalf("error = %v, want ErrDecryptionFailure", err)
	}
}
