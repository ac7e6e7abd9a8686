// Package rest serves the HTTP JSON API. Every endpoint answers with the
// same envelope: {"success": bool, "message"?: string, "data"?: ...}.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// envelope is the uniform response shape of the API.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeData responds with a success envelope carrying data.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

// writeMessage responds with a success envelope carrying a message and
// optional data.
func writeMessage(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, envelope{Success: true, Message: message, Data: data})
}

// writeFail responds with a failure envelope.
func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondError maps service errors to the failure envelope. notFoundMsg
// names the missing resource; everything unexpected is logged and hidden
// behind a generic message.
func respondError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeFail(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrValidation):
		writeFail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeFail(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, domain.ErrNotFound):
		writeFail(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeFail(w, http.StatusConflict, "Already exists")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeFail(w, http.StatusInternalServerError, "Internal server error")
	}
}
