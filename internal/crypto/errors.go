package crypto

import "errors"

var (
	// ErrMalformedBlob is returned when a sealed value is not valid base64 or
	// is shorter than the nonce.
	ErrMalformedBlob = errors.New("malformed sealed value")

	// ErrAuthenticationFailed is returned when the AEAD tag does not verify.
	ErrAuthenticationFailed = errors.New("sealed value authentication failed")
)
