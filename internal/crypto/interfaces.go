package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/value_cipher_mock.go -package=mock

// Mode identifies which protection mode a [ValueCipher] implements.
type Mode string

const (
	// ModeSecret is shared-secret authenticated encryption (AES-256-GCM).
	ModeSecret Mode = "secret"

	// ModePublic is public/private-key encryption (NaCl anonymous box).
	ModePublic Mode = "public"
)

// ValueCipher encrypts and decrypts one JSON-serializable value at a time.
// Implementations are constructed already keyed; callers never touch key
// material. The two protection modes are interchangeable behind this
// interface, so the field-encryption engine is oblivious to which one is in
// use.
//
// Implementations must be safe for concurrent independent calls.
type ValueCipher interface {
	// Encrypt serializes value to JSON, seals the plaintext, and returns an
	// opaque base64 token. Fresh randomness is drawn on every call: sealing
	// the same value twice yields different tokens.
	Encrypt(value any) (string, error)

	// Decrypt opens token and unmarshals the recovered JSON into target,
	// which must be a non-nil pointer (same contract as encoding/json).
	// Malformed tokens, authentication failures, and key mismatches return
	// an error wrapping [ErrDecryptionFailure].
	Decrypt(token string, target any) error

	// Mode reports the protection mode of this cipher.
	Mode() Mode
}
