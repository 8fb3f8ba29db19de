package codec

import (
	"fmt"

	"sealbox/internal/core/ports"
)

const (
	// KeySize is the only accepted key length (AES-256).
	KeySize = 32

	// fieldSep joins the two hex fields. Hex alphabets cannot produce it,
	// so splitting on it is unambiguous.
	fieldSep = ":"
)

type Codec struct {
	key    []byte
	sealer ports.Sealer
}

func NewCodec(key []byte, sealer ports.Sealer) (*Codec, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, KeySize, len(key))
	}

	return &Codec{
		key:    key,
		sealer: sealer,
	}, nil
}
