package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/joho/godotenv"

	appconfig "sealbox/internal/config"
	"sealbox/internal/device"
	"sealbox/internal/encryption/codec"
	"sealbox/internal/pkg/crypto/aes"
	"sealbox/internal/storage/s3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: pull <secret-id>")
	}
	secretID := os.Args[1]

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

	// Create storage client
	store, err := s3.NewClient(ctx, cfg, os.Getenv("AWS_BUCKET_NAME"))
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}

	// Get sealed value and metadata
	fmt.Printf("Fetching secret %s...\n", secretID)
	encoded, metadata, err := store.GetSecret(ctx, secretID)
	if err != nil {
		log.Fatalf("Failed to get secret: %v", err)
	}

	// Warn when opening on a different machine than the one that sealed it
	if metadata.Origin.MachineID != "" {
		same, err := device.New().Matches(metadata.Origin)
		if err != nil {
			log.Printf("Warning: Unable to verify origin: %v", err)
		} else if !same {
			log.Printf("Warning: Secret was sealed on %s (%s), not this machine",
				metadata.Origin.Details["hostname"], metadata.Origin.Platform)
		}
	}

	// Open the sealed value
	sealer := aes.NewSealer(codec.KeySize)
	cdc, err := codec.NewCodec(appCfg.Key, sealer)
	if err != nil {
		log.Fatalf("Failed to create codec: %v", err)
	}

	plaintext, err := cdc.Decrypt(encoded)
	if err != nil {
		log.Fatalf("Failed to open secret: %v", err)
	}

	fmt.Printf("Name: %s\n", metadata.Name)
	fmt.Println(plaintext)
}
