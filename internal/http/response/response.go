// Package response writes the backend wire format: entity JSON on success,
// a bare `{"message": ...}` body on failure.
package response

import (
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/Liban-hassan-noor/eastlify-client/internal/errors"
)

// errorBody is the failure wire shape. Clients render Message verbatim.
type errorBody struct {
	Message string `json:"message"`
}

func write(w http.ResponseWriter, status int, body any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.MarshalWrite(w, body); err != nil && logger != nil {
		logger.Error("Failed to encode response body", "error", err)
	}
}

// Success writes the entity as a 200 response.
func Success(w http.ResponseWriter, data any, logger *slog.Logger) {
	write(w, http.StatusOK, data, logger)
}

// Created writes the entity as a 201 response.
func Created(w http.ResponseWriter, data any, logger *slog.Logger) {
	write(w, http.StatusCreated, data, logger)
}

// Error writes a `{message}` body with the given status.
func Error(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	write(w, status, errorBody{Message: message}, logger)
}

// BadRequest writes a 400 `{message}` body.
func BadRequest(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusBadRequest, message, logger)
}

// Unauthorized writes a 401 `{message}` body.
func Unauthorized(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusUnauthorized, message, logger)
}

// Forbidden writes a 403 `{message}` body.
func Forbidden(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusForbidden, message, logger)
}

// NotFound writes a 404 `{message}` body.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusNotFound, message, logger)
}

// InternalError writes a 500 `{message}` body.
func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, http.StatusInternalServerError, message, logger)
}

// HandleError maps a domain error to its HTTP status and message; anything
// else is logged and reported as a generic 500.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		Error(w, derr.HTTPStatus(), derr.Message, logger)
		return
	}

	if logger != nil {
		logger.Error("Unhandled error", "error", err)
	}
	InternalError(w, "internal server error", logger)
}
