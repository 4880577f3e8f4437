// Package handler contains the thin HTTP handlers that translate JSON
// requests into service calls and service errors into HTTP status codes.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/splitsphere/backend/internal/util"
)

// respondWithJSON writes payload as a JSON response with the given status.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps application errors to HTTP status codes.
func respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrInvalidAmount),
		util.IsError(err, util.ErrSelfSettlement):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case util.IsError(err, util.ErrNotMember), util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = err.Error()
	case util.IsError(err, util.ErrGroupClosed), util.IsError(err, util.ErrDuplicate):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = "Invalid credentials"
	default:
		slog.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, statusCode, map[string]string{"error": message})
}
