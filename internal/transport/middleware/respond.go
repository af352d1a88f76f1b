package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's failure envelope. It mirrors rest.writeError,
// which this package cannot import.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": msg}) //nolint:errcheck
}
