package codec

import (
	"errors"
)

var (
	// ErrInvalidKeySize is returned by NewCodec when the key is not exactly
	// KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrMalformedInput is returned by Decrypt when the input does not split
	// into exactly two hex fields with a correctly sized IV.
	ErrMalformedInput = errors.New("malformed encoded ciphertext")

	// ErrAuthenticationFailed is returned by Decrypt when the ciphertext was
	// tampered with, truncated, or sealed under a different key.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
