package codec

import (
	"encoding/hex"
	"fmt"
)

// Encrypt seals plaintext under the codec key with a fresh random IV and
// returns hex(iv):hex(ciphertext). The GCM tag is carried inside the
// ciphertext field, so two calls with the same plaintext never produce the
// same output.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	iv, err := c.sealer.GenerateIV()
	if err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	sealed, err := c.sealer.Seal([]byte(plaintext), c.key, iv)
	if err != nil {
		return "", fmt.Errorf("failed to seal plaintext: %w", err)
	}

	return hex.EncodeToString(iv) + fieldSep + hex.EncodeToString(sealed), nil
}
