// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Aiyush Kumar

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/AiyushKumar07/secure-capsule/internal/fieldcipher"
	"github.com/AiyushKumar07/secure-capsule/internal/service"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// SecureClientConfig configures [NewSecureClient].
type SecureClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// Header is the encryption marker header; empty selects "X-Encrypted".
	Header string
}

type secureClient struct {
	client    *resty.Client
	protector service.PayloadProtector
	header    string
}

// NewSecureClient builds a [SecureTransport] over resty. Outgoing bodies are
// encrypted with protector (field mode for objects, whole-payload mode for
// everything else) and marked with the configured header; enveloped
// responses are decrypted before unmarshalling.
func NewSecureClient(cfg SecureClientConfig, protector service.PayloadProtector) SecureTransport {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Header == "" {
		cfg.Header = "X-Encrypted"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &secureClient{client: cli, protector: protector, header: cfg.Header}
}

func (s *secureClient) Post(ctx context.Context, path string, body, out any) error {
	envelope, err := s.seal(body)
	if err != nil {
		return fmt.Errorf("seal request body: %w", err)
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(s.header, "true").
		SetBody(envelope).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	return s.open(resp, out)
}

func (s *secureClient) Get(ctx context.Context, path string, out any) error {
	resp, err := s.client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	if err := mapHTTPError(resp); err != nil {
		return err
	}

	return s.open(resp, out)
}

// seal normalizes body through one JSON round trip, then encrypts it in the
// mode matching its shape.
func (s *secureClient) seal(body any) (models.Record, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("normalize body: %w", err)
	}

	if record, ok := normalized.(map[string]any); ok {
		return s.protector.EncodeFields(record)
	}
	return s.protector.EncodePayload(normalized)
}

// open decrypts an enveloped response body, if marked, and unmarshals the
// plaintext into out.
func (s *secureClient) open(resp *resty.Response, out any) error {
	if out == nil {
		return nil
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return nil
	}

	if !strings.EqualFold(resp.Header().Get(s.header), "true") {
		return json.Unmarshal(raw, out)
	}

	var envelope models.Record
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	var plain any
	var err error
	switch s.protector.Kind(envelope) {
	case models.EnvelopeField:
		plain, err = s.protector.DecodeFields(envelope)
	case models.EnvelopeWhole:
		plain, err = s.protector.DecodePayload(envelope)
	default:
		return fieldcipher.ErrMalformedEnvelope
	}
	if err != nil {
		return fmt.Errorf("decrypt response: %w", err)
	}

	restored, err := json.Marshal(plain)
	if err != nil {
		return fmt.Errorf("marshal decrypted response: %w", err)
	}
	return json.Unmarshal(restored, out)
}
