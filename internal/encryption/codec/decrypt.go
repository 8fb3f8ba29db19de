package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"sealbox/internal/pkg/crypto/aes"
)

// Decrypt reverses Encrypt. The input must split into exactly two hex fields
// (either case); anything else is rejected as malformed before any
// cryptography runs. A failed tag check is reported as ErrAuthenticationFailed,
// never as silently corrupted plaintext.
func (c *Codec) Decrypt(encoded string) (string, error) {
	iv, ciphertext, err := parseEncoded(encoded)
	if err != nil {
		return "", err
	}

	plaintext, err := c.sealer.Open(ciphertext, c.key, iv)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

func parseEncoded(encoded string) (iv []byte, ciphertext []byte, err error) {
	fields := strings.Split(encoded, fieldSep)
	if len(fields) != 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 fields, got %d", ErrMalformedInput, len(fields))
	}

	iv, err = hex.DecodeString(fields[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid IV field: %v", ErrMalformedInput, err)
	}

	ciphertext, err = hex.DecodeString(fields[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid ciphertext field: %v", ErrMalformedInput, err)
	}

	if len(iv) != aes.IVSize {
		return nil, nil, fmt.Errorf("%w: invalid IV size: expected %d, got %d", ErrMalformedInput, aes.IVSize, len(iv))
	}

	return iv, ciphertext, nil
}
