// sealbox/internal/pkg/crypto/aes/aes.go
package aes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
)

const (
	// IVSize spans a full AES block so the encoded IV field is 32 hex chars.
	IVSize = 16
)

type Sealer struct {
	keySize int
}

func NewSealer(keySize int) *Sealer {
	return &Sealer{
		keySize: keySize,
	}
}

func (s *Sealer) GenerateKey() ([]byte, error) {
	key := make([]byte, s.keySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return key, nil
}

func (s *Sealer) GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := rand.Read(iv); err != nil {
		return nil, fmt.Errorf("failed to generate IV: %w", err)
	}
	return iv, nil
}

func (s *Sealer) Seal(plaintext []byte, key []byte, iv []byte) ([]byte, error) {
	gcm, err := s.aead(key, iv)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, iv, plaintext, nil), nil
}

func (s *Sealer) Open(ciphertext []byte, key []byte, iv []byte) ([]byte, error) {
	gcm, err := s.aead(key, iv)
	if err != nil {
		return nil, err
	}

	return gcm.Open(nil, iv, ciphertext, nil)
}

func (s *Sealer) aead(key []byte, iv []byte) (cipher.AEAD, error) {
	// Validate inputs
	if len(key) != s.keySize {
		return nil, fmt.Errorf("invalid key size: expected %d, got %d", s.keySize, len(key))
	}

	if len(iv) != IVSize {
		return nil, fmt.Errorf("invalid IV size: expected %d, got %d", IVSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return gcm, nil
}
