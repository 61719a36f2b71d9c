package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/konekte/resourcehub/backend/internal/infrastructure/observability"
	apperrors "github.com/konekte/resourcehub/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		observability.GetLogger().Error().Err(err).Msg("failed to encode response")
	}
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

func respondWithMessage(w http.ResponseWriter, message string) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": message,
	})
}

// respondWithWriteError answers a failed write. Validation errors carry their
// own message, missing records get notFound, and anything else is logged and
// answered with the fixed failure message.
func respondWithWriteError(w http.ResponseWriter, r *http.Request, err error, notFound, failure string) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
			return
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, notFound)
			return
		}
	}

	observability.LoggerFromContext(r.Context()).Error().
		Err(err).
		Str("error_type", string(apperrors.TypeOf(err))).
		Str("path", r.URL.Path).
		Msg(failure)
	respondWithError(w, http.StatusBadRequest, failure)
}

// respondWithReadError answers a failed read: 404 for missing records, 500 otherwise.
func respondWithReadError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	if apperrors.IsNotFound(err) {
		respondWithError(w, http.StatusNotFound, notFound)
		return
	}

	observability.LoggerFromContext(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("read failed")
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
