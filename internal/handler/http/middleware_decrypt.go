package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// withDecryption transparently decrypts incoming request bodies. A request is
// processed only when it carries the marker header; the body is then expected
// to be one of the two envelope shapes. The downstream handler always sees
// plaintext JSON and stays oblivious to the encryption layer. Any failure to
// decrypt halts the request with a client error rather than forwarding
// corrupted data.
func (h *Handler) withDecryption(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if !strings.EqualFold(r.Header.Get(h.header), "true") {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withDecryption").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var envelope models.Record
		if err := json.Unmarshal(body, &envelope); err != nil {
			log.Err(err).Str("func", "*Handler.withDecryption").Msg("failed to decode JSON")
			writeError(w, http.StatusBadRequest, "Invalid JSON")
			return
		}

		var plain any
		switch h.protector.Kind(envelope) {
		case models.EnvelopeField:
			plain, err = h.protector.DecodeFields(envelope)
		case models.EnvelopeWhole:
			plain, err = h.protector.DecodePayload(envelope)
		default:
			log.Error().Str("func", "*Handler.withDecryption").Msg("marker header present but body is not an envelope")
			writeError(w, http.StatusBadRequest, "Malformed envelope")
			return
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withDecryption").Msg("failed to decrypt payload")
			writeError(w, http.StatusBadRequest, "Unable to decrypt payload")
			return
		}

		restored, err := json.Marshal(plain)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withDecryption").Msg("failed to marshal decrypted payload")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Hand the plaintext body to the downstream handler.
		r.Body = io.NopCloser(bytes.NewReader(restored))
		r.ContentLength = int64(len(restored))
		r.Header.Del(h.header)

		next.ServeHTTP(w, r)
	})
}
