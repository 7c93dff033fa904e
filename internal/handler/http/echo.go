package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/AiyushKumar07/secure-capsule/internal/logger"
	"github.com/AiyushKumar07/secure-capsule/models"
)

// echo returns the request payload unchanged. With the encryption middleware
// in front of it, a full round trip exercises decrypt-on-receive and
// encrypt-on-send without the handler knowing either happened.
func (h *Handler) echo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.echo").Msg("failed to read request body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Err(err).Str("func", "*Handler.echo").Msg("failed to decode JSON")
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.VersionResponse{Version: h.version})
}
