// sealbox/internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"sealbox/internal/encryption/codec"
)

// EnvEncryptionKey supplies the process key. Its raw bytes are used verbatim
// as the AES-256 key, so the value must be exactly 32 bytes long.
const EnvEncryptionKey = "ENCRYPTION_KEY"

var (
	ErrKeyMissing = errors.New("encryption key not configured")
	ErrKeyLength  = errors.New("encryption key has wrong length")
)

type Config struct {
	Key []byte
}

// Load reads the process key from the environment. There is no fallback key:
// a missing or wrong-length value fails startup.
func Load() (Config, error) {
	raw := os.Getenv(EnvEncryptionKey)
	if raw == "" {
		return Config{}, fmt.Errorf("%w: set %s", ErrKeyMissing, EnvEncryptionKey)
	}

	key := []byte(raw)
	if len(key) != codec.KeySize {
		return Config{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrKeyLength, codec.KeySize, len(key))
	}

	return Config{Key: key}, nil
}
