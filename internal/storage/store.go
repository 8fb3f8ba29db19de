package storage

import (
	"context"
	"time"
)

// Origin records which machine sealed a secret
type Origin struct {
	MachineID    string            // Unique device identifier
	HardwareHash string            // Hardware-specific hash
	Platform     string            // OS/Platform info
	Details      map[string]string // Additional fingerprinting data
}

// SecretMetadata contains information about a stored sealed secret
type SecretMetadata struct {
	ID          string
	Name        string
	EncodedSize int64 // length of the hex(iv):hex(ciphertext) value
	Tags        []string
	Origin      Origin
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Store defines the interface for vault operations. Values passed through it
// are already sealed; the vault never sees plaintext or key material.
type Store interface {
	StoreSecret(ctx context.Context, encoded string, metadata SecretMetadata) (string, error)
	GetSecret(ctx context.Context, id string) (string, SecretMetadata, error)
	DeleteSecret(ctx context.Context, id string) error
	ListSecrets(ctx context.Context) ([]SecretMetadata, error)

	UpdateMetadata(ctx context.Context, id string, metadata SecretMetadata) error
	GetMetadata(ctx context.Context, id string) (SecretMetadata, error)
}

// Config holds configuration for vault storage
type Config struct {
	BucketName     string
	Region         string
	SecretPrefix   string
	MetadataPrefix string
	RecordOrigin   bool // Whether to record the sealing machine in metadata
}
