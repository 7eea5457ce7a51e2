package httpx

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// writeRetriable marks collaborator failures the client may retry.
func writeRetriable(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadGateway, map[string]any{
		"error":     msg,
		"retriable": true,
	})
}
