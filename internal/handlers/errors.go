package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/pass-vault/internal/logger"
)

// ErrorResponse is the uniform error body for all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Internal server error
	Error string `json:"error"`
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeInternalError logs the underlying error and returns a generic
// message; backend details never reach the client.
func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
