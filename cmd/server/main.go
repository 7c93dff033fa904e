package main

import (
	"fmt"

	"github.com/AiyushKumar07/secure-capsule/internal/config"
	"github.com/AiyushKumar07/secure-capsule/internal/crypto"
	handler "github.com/AiyushKumar07/secure-capsule/internal/handler/http"
	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/internal/server"
	"github.com/AiyushKumar07/secure-capsule/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("capsule-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("mode", cfg.Crypto.Mode).
		Int("decoys", cfg.Crypto.DecoyCount).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	cipher, err := buildCipher(cfg.Crypto)
	if err != nil {
		log.Fatal().Err(err).Msg("error building cipher")
	}

	protector := service.NewPayloadProtector(cipher, service.ProtectorOptions{
		DecoyCount: cfg.Crypto.DecoyCount,
		MaxDepth:   cfg.Crypto.MaxDepth,
	})

	h := handler.NewHandler(protector, cfg.Crypto.EncryptionHeader, cfg.App.Version, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
