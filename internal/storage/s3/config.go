package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"sealbox/internal/storage"
)

// DefaultConfig provides default configuration values
var DefaultConfig = storage.Config{
	BucketName:     "sealbox-secret-vault",
	Region:         "us-east-1",
	SecretPrefix:   "secrets/",
	MetadataPrefix: "metadata/",
	RecordOrigin:   true,
}

// NewClient creates a new S3 client with the given configuration
func NewClient(ctx context.Context, cfg aws.Config, bucket string) (*Store, error) {
	client := s3.NewFromConfig(cfg)

	// Verify bucket exists and is accessible
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access bucket %s: %w", bucket, err)
	}

	config := DefaultConfig
	config.BucketName = bucket
	config.Region = cfg.Region

	return New(client, config), nil
}

// WithRecordOrigin sets whether to record the sealing machine in metadata
func WithRecordOrigin(record bool) func(*storage.Config) {
	return func(c *storage.Config) {
		c.RecordOrigin = record
	}
}

// WithPrefixes sets custom prefixes for different types of objects
func WithPrefixes(secret, metadata string) func(*storage.Config) {
	return func(c *storage.Config) {
		if secret != "" {
			c.SecretPrefix = secret
		}
		if metadata != "" {
			c.MetadataPrefix = metadata
		}
	}
}
