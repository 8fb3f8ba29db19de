package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"sealbox/internal/config"
	"sealbox/internal/encryption/codec"
	"sealbox/internal/pkg/crypto/aes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	if len(os.Args) < 2 {
		log.Fatal("Usage: sealbox seal|open [value]")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	sealer := aes.NewSealer(codec.KeySize)
	cdc, err := codec.NewCodec(cfg.Key, sealer)
	if err != nil {
		log.Fatalf("Failed to create codec: %v", err)
	}

	value, err := readValue()
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	switch os.Args[1] {
	case "seal":
		encoded, err := cdc.Encrypt(value)
		if err != nil {
			log.Fatalf("Failed to seal value: %v", err)
		}
		fmt.Println(encoded)
	case "open":
		// Piped input usually carries a trailing newline
		plaintext, err := cdc.Decrypt(strings.TrimSpace(value))
		if err != nil {
			log.Fatalf("Failed to open value: %v", err)
		}
		fmt.Println(plaintext)
	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}

// readValue takes the value from the command line when given, stdin otherwise
func readValue() (string, error) {
	if len(os.Args) > 2 {
		return os.Args[2], nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
