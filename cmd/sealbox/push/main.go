package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/joho/godotenv"

	appconfig "sealbox/internal/config"
	"sealbox/internal/core/domain"
	"sealbox/internal/device"
	"sealbox/internal/encryption/codec"
	"sealbox/internal/pkg/crypto/aes"
	"sealbox/internal/storage"
	s3store "sealbox/internal/storage/s3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	if len(os.Args) < 3 {
		log.Fatal("Usage: push <name> <value> [tag,tag,...]")
	}
	secret := domain.Secret{
		Name:      os.Args[1],
		Value:     os.Args[2],
		CreatedAt: time.Now(),
	}
	if len(os.Args) > 3 {
		secret.Tags = strings.Split(os.Args[3], ",")
	}

	appCfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	// Initialize AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatalf("Unable to load SDK config: %v", err)
	}

	fmt.Printf("Using AWS Region: %s\n", cfg.Region)

	// Print caller identity for debugging
	stsClient := sts.NewFromConfig(cfg)
	identity, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		log.Printf("Warning: Unable to get caller identity: %v", err)
	} else {
		fmt.Printf("AWS Account: %s\n", *identity.Account)
		fmt.Printf("AWS User ARN: %s\n", *identity.Arn)
	}

	// Create storage client
	store, err := s3store.NewClient(ctx, cfg, os.Getenv("AWS_BUCKET_NAME"))
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	// Seal the value
	sealer := aes.NewSealer(codec.KeySize)
	cdc, err := codec.NewCodec(appCfg.Key, sealer)
	if err != nil {
		log.Fatalf("Failed to create codec: %v", err)
	}

	encoded, err := cdc.Encrypt(secret.Value)
	if err != nil {
		log.Fatalf("Failed to seal value: %v", err)
	}
	sealed := domain.SealedSecret{
		Name:    secret.Name,
		Encoded: encoded,
	}

	// Record where this secret was sealed
	origin, err := device.New().Origin()
	if err != nil {
		log.Fatalf("Failed to fingerprint machine: %v", err)
	}

	metadata := storage.SecretMetadata{
		Name:      sealed.Name,
		Tags:      secret.Tags,
		Origin:    origin,
		CreatedAt: secret.CreatedAt,
	}

	start := time.Now()
	id, err := store.StoreSecret(ctx, sealed.Encoded, metadata)
	if err != nil {
		log.Fatalf("Failed to store secret: %v", err)
	}

	fmt.Printf("\nStored secret %q in %v\n", sealed.Name, time.Since(start))
	fmt.Printf("Secret ID: %s\n", id)
	fmt.Printf("Sealed on: %s (%s)\n", origin.Details["hostname"], origin.Platform)
}
