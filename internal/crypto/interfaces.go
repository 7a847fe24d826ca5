package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer protects values written to the local session store. It knows
// nothing about the store itself: it derives a key from the configured
// secret and seals or opens individual values with it.
//
// Scheme:
//
//	Salt = GenerateSalt()               (once per store, kept in clear)
//	Key  = DeriveKey(secret, salt)      (Argon2id)
//	Blob = Seal(value, key)             (XChaCha20-Poly1305, base64)
//	Value = Open(blob, key)
type Sealer interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches secret and salt into a 256-bit key with Argon2id.
	DeriveKey(secret string, salt []byte) []byte

	// Seal encrypts plaintext with key and returns base64(nonce || ciphertext).
	Seal(plaintext string, key []byte) (string, error)

	// Open reverses Seal. It fails with [ErrMalformedBlob] when the blob
	// cannot be decoded and [ErrAuthenticationFailed] when the key is wrong
	// or the ciphertext was tampered with.
	Open(blob string, key []byte) (string, error)
}
