package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"snack-depot/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// AdminSecretHeader carries the admin secret on catalog PUT/DELETE
// requests. Create carries it in the body as "password" instead,
// matching the admin client.
const AdminSecretHeader = "X-Admin-Secret"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already gone; nothing useful left to do.
		return
	}
}

// writeError writes an error response with the given status, code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error onto an HTTP response. Domain
// errors carry their own code; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "Internal server error", logger)
		return
	}

	status := http.StatusInternalServerError
	switch domainErr.Code {
	case model.ErrCodeNotFound:
		status = http.StatusNotFound
	case model.ErrCodeValidation:
		status = http.StatusBadRequest
	case model.ErrCodeUnauthorised:
		status = http.StatusUnauthorized
	case model.ErrCodeStorageUnavailable:
		status = http.StatusServiceUnavailable
	}

	writeError(w, status, domainErr.Code, domainErr.Message, logger)
}
