package main

import (
	"context"
	"fmt"

	"github.com/AiyushKumar07/secure-capsule/internal/adapter"
	"github.com/AiyushKumar07/secure-capsule/internal/config"
	"github.com/AiyushKumar07/secure-capsule/internal/crypto"
	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/internal/service"
	"github.com/AiyushKumar07/secure-capsule/models"
)

func main() {
	log := logger.NewLogger("capsule-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cipher, err := buildCipher(cfg.Crypto)
	if err != nil {
		log.Fatal().Err(err).Msg("error building cipher")
	}

	protector := service.NewPayloadProtector(cipher, service.ProtectorOptions{
		DecoyCount: cfg.Crypto.DecoyCount,
		MaxDepth:   cfg.Crypto.MaxDepth,
	})

	client := adapter.NewSecureClient(adapter.SecureClientConfig{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
		Header:  cfg.Crypto.EncryptionHeader,
	}, protector)

	// One encrypted round trip against the echo endpoint.
	payload := models.Record{
		"user":   models.Record{"name": "Ann", "tags": []any{1, 2}},
		"active": true,
	}

	var echoed models.Record
	if err := client.Post(context.Background(), "/api/echo", payload, &echoed); err != nil {
		log.Fatal().Err(err).Msg("echo request failed")
	}

	fmt.Printf("echoed payload: %v\n", echoed)
}

func buildCipher(cfg config.Crypto) (crypto.ValueCipher, error) {
	secretKey, err := crypto.DecodeKey(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("secret key: %w", err)
	}
	publicKey, err := crypto.DecodeKey(cfg.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	privateKey, err := crypto.DecodeKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}

	return crypto.NewCipherForMode(crypto.Mode(cfg.Mode), secretKey, publicKey, privateKey)
}
