// sealbox/internal/core/domain/types.go
package domain

import (
	"time"
)

type Secret struct {
	Name      string
	Value     string // plaintext, never persisted
	Tags      []string
	CreatedAt time.Time
}

type SealedSecret struct {
	Name    string
	Encoded string // hex(iv):hex(ciphertext)
}
