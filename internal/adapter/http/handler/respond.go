// Package handler exposes the read-only HTTP surface: health, metrics, rates and receipts.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

func respondJSON(w http.ResponseWriter, logger zerolog.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

func respondError(w http.ResponseWriter, logger zerolog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
