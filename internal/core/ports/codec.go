// sealbox/internal/core/ports/codec.go
package ports

// Codec seals plaintext into the self-describing hex(iv):hex(ciphertext)
// representation and opens it again under the same process key.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// Sealer is the AEAD primitive the codec is built on.
type Sealer interface {
	GenerateKey() ([]byte, error)
	GenerateIV() ([]byte, error)
	Seal(plaintext []byte, key []byte, iv []byte) ([]byte, error)
	Open(ciphertext []byte, key []byte, iv []byte) ([]byte, error)
}
