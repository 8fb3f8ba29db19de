package mocks

import (
	"bytes"
)

type MockSealer struct {
	GenerateKeyFunc func() ([]byte, error)
	GenerateIVFunc  func() ([]byte, error)
	SealFunc        func(plaintext []byte, key []byte, iv []byte) ([]byte, error)
	OpenFunc        func(ciphertext []byte, key []byte, iv []byte) ([]byte, error)
}

func NewMockSealer() *MockSealer {
	return &MockSealer{
		GenerateKeyFunc: func() ([]byte, error) {
			return bytes.Repeat([]byte{1}, 32), nil
		},
		GenerateIVFunc: func() ([]byte, error) {
			return bytes.Repeat([]byte{2}, 16), nil
		},
		SealFunc: func(plaintext []byte, key []byte, iv []byte) ([]byte, error) {
			return plaintext, nil
		},
		OpenFunc: func(ciphertext []byte, key []byte, iv []byte) ([]byte, error) {
			return ciphertext, nil
		},
	}
}

func (m *MockSealer) GenerateKey() ([]byte, error) {
	return m.GenerateKeyFunc()
}

func (m *MockSealer) GenerateIV() ([]byte, error) {
	return m.GenerateIVFunc()
}

func (m *MockSealer) Seal(plaintext []byte, key []byte, iv []byte) ([]byte, error) {
	return m.SealFunc(plaintext, key, iv)
}

func (m *MockSealer) Open(ciphertext []byte, key []byte, iv []byte) ([]byte, error) {
	return m.OpenFunc(ciphertext, key, iv)
}
