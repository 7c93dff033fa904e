package http

import (
	"encoding/json"
	"net/http"

	"github.com/AiyushKumar07/secure-capsule/internal/logger"
)

// withEncryption transparently encrypts outgoing response bodies. The
// downstream handler writes plaintext JSON into a capturing writer; after it
// returns, the captured body is encoded (field mode for objects, whole-payload
// mode for everything else), the marker header is set, and the envelope is
// written in its place. Error responses and empty bodies pass through
// untouched.
func (h *Handler) withEncryption(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cw := &captureWriter{ResponseWriter: w}
		next.ServeHTTP(cw, r)

		status := cw.Status()
		body := cw.body.Bytes()

		if len(body) == 0 || status >= http.StatusMultipleChoices {
			w.WriteHeader(status)
			w.Write(body) //nolint:errcheck // nothing left to do for the client
			return
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			log.Err(err).Str("func", "*Handler.withEncryption").Msg("response body is not JSON; sending as-is")
			w.WriteHeader(status)
			w.Write(body) //nolint:errcheck
			return
		}

		var envelope map[string]any
		var err error
		if record, ok := payload.(map[string]any); ok {
			envelope, err = h.protector.EncodeFields(record)
		} else {
			envelope, err = h.protector.EncodePayload(payload)
		}
		if err != nil {
			log.Err(err).Str("func", "*Handler.withEncryption").Msg("failed to encrypt response")
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		sealed, err := json.Marshal(envelope)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withEncryption").Msg("failed to marshal envelope")
			writeError(w, http.StatusInternalServerError, "Internal error")
			return
		}

		w.Header().Del("Content-Length")
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(h.header, "true")
		w.WriteHeader(status)
		w.Write(sealed) //nolint:errcheck
	})
}
