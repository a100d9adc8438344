package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/pricing"
	"github.com/narekn7/yerevan-pricing/internal/repository"
	"github.com/narekn7/yerevan-pricing/internal/service"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log error but can't do much else at this point
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeDetail writes an error response as {"detail": "<message>"}
func writeDetail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"detail": message,
	})
}

// respondError maps a service or repository error to the HTTP taxonomy:
// validation and broken references -> 422, missing rows -> 404 (using
// notFoundMsg), unloaded model -> 503, everything else -> 500.
func respondError(w http.ResponseWriter, logger *slog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrInvalidReference):
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrRestaurantNotFound),
		errors.Is(err, repository.ErrMenuItemNotFound),
		errors.Is(err, repository.ErrCustomerNotFound):
		writeDetail(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, pricing.ErrModelUnavailable):
		writeDetail(w, http.StatusServiceUnavailable, "ML model not available")
	default:
		logger.Error("request failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
