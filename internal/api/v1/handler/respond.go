package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"app/internal/apperror"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response to the HTTP response writer
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError translates an application error into the client-visible
// response. Validation errors carry their ordered message list; everything
// else gets a generic body for its status. Unexpected failures are logged
// with full detail and surface only as 500.
func respondError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		appErr = apperror.NewInternal("unexpected error", err)
	}

	if appErr.StatusCode() == http.StatusInternalServerError {
		logger.Error().Err(appErr).Msg("request failed")
	}

	if appErr.Kind == apperror.Validation {
		writeJSON(w, appErr.StatusCode(), map[string][]string{"errors": appErr.Messages})
		return
	}
	writeJSON(w, appErr.StatusCode(), map[string]string{"message": appErr.PublicMessage()})
}
