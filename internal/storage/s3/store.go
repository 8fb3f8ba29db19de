package s3

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"sealbox/internal/storage"
)

type Store struct {
	client *s3.Client
	config storage.Config
}

func New(client *s3.Client, config storage.Config) *Store {
	return &Store{
		client: client,
		config: config,
	}
}

func (s *Store) StoreSecret(ctx context.Context, encoded string, metadata storage.SecretMetadata) (string, error) {
	if metadata.ID == "" {
		metadata.ID = uuid.NewString()
	}
	if metadata.CreatedAt.IsZero() {
		metadata.CreatedAt = time.Now()
	}
	metadata.UpdatedAt = time.Now()
	metadata.EncodedSize = int64(len(encoded))

	if !s.config.RecordOrigin {
		metadata.Origin = storage.Origin{}
	}

	// Store sealed value
	secretKey := path.Join(s.config.SecretPrefix, metadata.ID)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(secretKey),
		Body:        strings.NewReader(encoded),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store secret: %w", err)
	}

	if err := s.putMetadata(ctx, metadata); err != nil {
		return "", err
	}

	return metadata.ID, nil
}

func (s *Store) GetSecret(ctx context.Context, id string) (string, storage.SecretMetadata, error) {
	metadata, err := s.GetMetadata(ctx, id)
	if err != nil {
		return "", storage.SecretMetadata{}, err
	}

	secretKey := path.Join(s.config.SecretPrefix, id)
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(secretKey),
	})
	if err != nil {
		return "", metadata, fmt.Errorf("failed to get secret: %w", err)
	}
	defer result.Body.Close()

	encoded, err := io.ReadAll(result.Body)
	if err != nil {
		return "", metadata, fmt.Errorf("failed to read secret data: %w", err)
	}

	return string(encoded), metadata, nil
}

func (s *Store) DeleteSecret(ctx context.Context, id string) error {
	secretKey := path.Join(s.config.SecretPrefix, id)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(secretKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete secret: %w", err)
	}

	metadataKey := path.Join(s.config.MetadataPrefix, id+".json")
	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(metadataKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete metadata: %w", err)
	}

	return nil
}

func (s *Store) ListSecrets(ctx context.Context) ([]storage.SecretMetadata, error) {
	result, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.config.BucketName),
		Prefix: aws.String(s.config.MetadataPrefix),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}

	var secrets []storage.SecretMetadata
	for _, object := range result.Contents {
		key := aws.ToString(object.Key)
		if !strings.HasSuffix(key, ".json") {
			continue
		}

		id := strings.TrimSuffix(path.Base(key), ".json")
		metadata, err := s.GetMetadata(ctx, id)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, metadata)
	}

	return secrets, nil
}

func (s *Store) UpdateMetadata(ctx context.Context, id string, metadata storage.SecretMetadata) error {
	existing, err := s.GetMetadata(ctx, id)
	if err != nil {
		return err
	}

	metadata.ID = existing.ID
	metadata.CreatedAt = existing.CreatedAt
	metadata.EncodedSize = existing.EncodedSize
	metadata.UpdatedAt = time.Now()

	return s.putMetadata(ctx, metadata)
}

func (s *Store) GetMetadata(ctx context.Context, id string) (storage.SecretMetadata, error) {
	metadataKey := path.Join(s.config.MetadataPrefix, id+".json")
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(metadataKey),
	})
	if err != nil {
		return storage.SecretMetadata{}, fmt.Errorf("failed to get metadata: %w", err)
	}
	defer result.Body.Close()

	metadataBytes, err := io.ReadAll(result.Body)
	if err != nil {
		return storage.SecretMetadata{}, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata storage.SecretMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return storage.SecretMetadata{}, fmt.Errorf("failed to parse metadata: %w", err)
	}

	return metadata, nil
}

func (s *Store) putMetadata(ctx context.Context, metadata storage.SecretMetadata) error {
	metadataBytes, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	metadataKey := path.Join(s.config.MetadataPrefix, metadata.ID+".json")
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.BucketName),
		Key:    aws.String(metadataKey),
		Body:   bytes.NewReader(metadataBytes),
	})
	if err != nil {
		return fmt.Errorf("failed to store metadata: %w", err)
	}

	return nil
}

// GetConfig returns the store configuration
func (s *Store) GetConfig() storage.Config {
	return s.config
}
