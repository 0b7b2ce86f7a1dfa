package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/oharris/listd/internal/store"
)

// WriteJSON marshals v as JSON and writes it to w with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// WriteStoreError maps a store failure onto the error envelope: NotFound to
// 404, validation to 400, storage unavailability to 503 (retryable), and
// anything else to 500.
func WriteStoreError(w http.ResponseWriter, err error, correlationID string) {
	if errors.Is(err, store.ErrNotFound) {
		WriteError(w, http.StatusNotFound, NewNotFoundError("Record not found", correlationID))
		return
	}
	var validationErr *store.ValidationError
	if errors.As(err, &validationErr) {
		WriteError(w, http.StatusBadRequest, NewValidationError(validationErr.Message, correlationID))
		return
	}
	var unavailableErr *store.UnavailableError
	if errors.As(err, &unavailableErr) {
		slog.Error("storage unavailable", "error", err)
		WriteError(w, http.StatusServiceUnavailable, NewUnavailableError("Storage unavailable, retry later", correlationID))
		return
	}
	slog.Error("unhandled store error", "error", err)
	WriteError(w, http.StatusInternalServerError, NewInternalError(err.Error(), correlationID))
}
