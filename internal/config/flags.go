package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-mode protection mode ("secret" or "public")
//	-secret-key base64 shared key
//	-public-key base64 recipient public key
//	-private-key base64 private key
//	-decoys decoy field count per envelope
//	-max-depth maximum record nesting depth
//	-header encryption marker header name
//	-base-url client base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var mode string
	var secretKey string
	var publicKey string
	var privateKey string
	var decoyCount int
	var maxDepth int
	var header string
	var baseURL string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&mode, "mode", "", "Protection mode: secret or public")
	flag.StringVar(&secretKey, "secret-key", "", "Base64 shared key")
	flag.StringVar(&publicKey, "public-key", "", "Base64 recipient public key")
	flag.StringVar(&privateKey, "private-key", "", "Base64 private key")
	flag.IntVar(&decoyCount, "decoys", 0, "Decoy field count per envelope")
	flag.IntVar(&maxDepth, "max-depth", 0, "Maximum record nesting depth")
	flag.StringVar(&header, "header", "", "Encryption marker header name")
	flag.StringVar(&baseURL, "base-url", "", "Client base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Crypto: Crypto{
			Mode:             mode,
			SecretKey:        secretKey,
			PublicKey:        publicKey,
			PrivateKey:       privateKey,
			DecoyCount:       decoyCount,
			MaxDepth:         maxDepth,
			EncryptionHeader: header,
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			BaseURL: baseURL,
		},
		JSONFilePath: jsonConfigPath,
	}
}
