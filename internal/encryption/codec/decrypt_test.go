package codec

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"sealbox/internal/pkg/crypto/aes"
)

func newTestCodec(t *testing.T, key []byte) *Codec {
	t.Helper()
	cdc, err := NewCodec(key, aes.NewSealer(KeySize))
	if err != nil {
		t.Fatalf("Failed to create codec: %v", err)
	}
	return cdc
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{
			name:      "Basic text",
			plaintext: "Hello, World!",
		},
		{
			name:      "Empty string",
			plaintext: "",
		},
		{
			name:      "Multibyte text",
			plaintext: "héllo wörld 暗号化 🔐",
		},
		{
			name:      "Text containing the delimiter",
			plaintext: "user:password@host:5432",
		},
		{
			name:      "Large text",
			plaintext: strings.Repeat("Large data test ", 1000),
		},
	}

	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := cdc.Encrypt(tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt failed: %v", err)
			}

			if encoded == tt.plaintext && tt.plaintext != "" {
				t.Error("Encoded value is identical to plaintext")
			}

			decoded, err := cdc.Decrypt(encoded)
			if err != nil {
				t.Fatalf("Decrypt failed: %v", err)
			}

			if decoded != tt.plaintext {
				t.Errorf("Round-trip failed: got %q, want %q", decoded, tt.plaintext)
			}
		})
	}
}

func TestCodec_Decrypt_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{
			name:    "No delimiter",
			encoded: "not-a-valid-format",
		},
		{
			name:    "Non-hex fields",
			encoded: "zz:zz",
		},
		{
			name:    "Too many fields",
			encoded: "aabb:ccdd:eeff",
		},
		{
			name:    "Empty input",
			encoded: "",
		},
		{
			name:    "Empty fields",
			encoded: ":",
		},
		{
			name:    "IV too short",
			encoded: "aabbccdd:" + strings.Repeat("ab", 32),
		},
		{
			name:    "Odd-length hex in ciphertext",
			encoded: strings.Repeat("ab", 16) + ":abc",
		},
	}

	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cdc.Decrypt(tt.encoded)
			if err == nil {
				t.Fatal("Expected error for malformed input, got none")
			}
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput, got %v", err)
			}
		})
	}
}

func TestCodec_Decrypt_Tampered(t *testing.T) {
	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	encoded, err := cdc.Encrypt("sensitive-data")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Change one hex digit of the ciphertext field
	tampered := []byte(encoded)
	pos := len(tampered) - 1
	if tampered[pos] == 'a' {
		tampered[pos] = 'b'
	} else {
		tampered[pos] = 'a'
	}

	_, err = cdc.Decrypt(string(tampered))
	if err == nil {
		t.Fatal("Decrypt succeeded with tampered ciphertext")
	}
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestCodec_Decrypt_Truncated(t *testing.T) {
	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	encoded, err := cdc.Encrypt("sensitive-data")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	// Drop the last ciphertext byte (two hex digits)
	_, err = cdc.Decrypt(encoded[:len(encoded)-2])
	if err == nil {
		t.Fatal("Decrypt succeeded with truncated ciphertext")
	}
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestCodec_Decrypt_KeyMismatch(t *testing.T) {
	sealed := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))
	opened := newTestCodec(t, bytes.Repeat([]byte{8}, KeySize))

	encoded, err := sealed.Encrypt("sealed under another key")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	_, err = opened.Decrypt(encoded)
	if err == nil {
		t.Fatal("Decrypt succeeded under a different key")
	}
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got %v", err)
	}
}

func TestCodec_Decrypt_UppercaseHex(t *testing.T) {
	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	encoded, err := cdc.Encrypt("case insensitive")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	decoded, err := cdc.Decrypt(strings.ToUpper(encoded))
	if err != nil {
		t.Fatalf("Decrypt of uppercase encoding failed: %v", err)
	}
	if decoded != "case insensitive" {
		t.Errorf("Round-trip failed: got %q", decoded)
	}
}

func TestCodec_ConcurrentUse(t *testing.T) {
	cdc := newTestCodec(t, bytes.Repeat([]byte{7}, KeySize))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				encoded, err := cdc.Encrypt("shared-codec")
				if err != nil {
					t.Errorf("Encrypt failed: %v", err)
					return
				}
				decoded, err := cdc.Decrypt(encoded)
				if err != nil {
					t.Errorf("Decrypt failed: %v", err)
					return
				}
				if decoded != "shared-codec" {
					t.Errorf("Round-trip failed: got %q", decoded)
					return
				}
			}
		}()
	}
	wg.Wait()
}
