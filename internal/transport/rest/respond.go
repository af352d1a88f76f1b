package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/edustream-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeOK writes {"success": true} merged with the given payload keys.
func writeOK(w http.ResponseWriter, status int, payload map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "error": message})
}

// handleError maps a service error to a status code. fallback is the
// message shown for unexpected failures.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, fallback string) {
	// Upload and persist failures may wrap store errors that map to
	// validation or not-found, so they are matched first.
	switch {
	case errors.Is(err, domain.ErrUploadFailed):
		log.ErrorContext(r.Context(), "blob upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "video upload failed")
	case errors.Is(err, domain.ErrPersistFailed):
		log.ErrorContext(r.Context(), "video record not saved", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "video uploaded but could not be saved")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.ErrorContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, fallback)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
