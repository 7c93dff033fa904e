package http

import (
	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/internal/service"
)

// DefaultEncryptionHeader is the marker header set on encrypted exchanges
// when no other name is configured.
const DefaultEncryptionHeader = "X-Encrypted"

// Handler owns the HTTP surface: the encryption middleware pair and the demo
// endpoints behind it.
type Handler struct {
	protector service.PayloadProtector
	header    string
	version   string

	logger *logger.Logger
}

func NewHandler(protector service.PayloadProtector, header, version string, logger *logger.Logger) *Handler {
	if header == "" {
		header = DefaultEncryptionHeader
	}

	logger.Info().Str("header", header).Msg("http handler created")
	return &Handler{
		protector: protector,
		header:    header,
		version:   version,
		logger:    logger,
	}
}
