// Package handlers implements the HTTP API: public reads and the contact
// form, session-guarded admin writes, and authentication. Every handler
// performs at most one storage or session call; error mapping is
// centralized in writeError.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"portfolio/internal/apperror"
	"portfolio/internal/validate"
)

// errorResponse is the JSON shape of every error body. Errors is present
// only for validation failures, listing each failing field.
type errorResponse struct {
	Message string          `json:"message"`
	Errors  validate.Errors `json:"errors,omitempty"`
}

// writeJSON sends a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encode response failed", "error", err)
		}
	}
}

// writeRawJSON sends an already-encoded JSON payload, used for cached
// responses.
func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// writeError maps an application error to its HTTP status. Anything not
// carrying a known sentinel is logged and becomes a generic 500; no
// query text or internal detail ever reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, apperror.ErrUnavailable):
			slog.Error("storage unavailable", "error", appErr.Err)
		}
		writeJSON(w, status, errorResponse{Message: appErr.Message, Errors: appErr.Fields})
		return
	}

	slog.Error("unhandled error", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "An unexpected error occurred"})
}

// decodeJSON parses a request body into dst, rejecting unknown payloads
// with a 400. Returns false when the body could not be decoded (the
// error response has already been written).
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return false
	}
	return true
}
