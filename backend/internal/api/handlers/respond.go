package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ps-vitor/editais-sys/backend/pkg/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, log *logger.Logger, payload any, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	// the status line is already out, so the failure can only be logged
	if err := enc.Encode(payload); err != nil {
		log.ErrorContext(r.Context(), "erro ao codificar resposta", "path", r.URL.Path, "err", err)
	}
}
