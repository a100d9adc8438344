package handlers

import (
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/service"
)

// AnalyticsHandler serves the historical snapshot, the forecast stub and
// the reference enumerations.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	logger  *slog.Logger
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(service *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  logger,
	}
}

// Historical handles GET /analytics/historical?menu_item=&location=.
func (h *AnalyticsHandler) Historical(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Historical(r.Context(),
		r.URL.Query().Get("menu_item"),
		r.URL.Query().Get("location"))
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Forecast handles GET /analytics/forecast?menu_item=&horizon_days=.
// horizon_days defaults to 30 and must stay within 1-365.
func (h *AnalyticsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	horizon, err := queryInt(r, "horizon_days")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	horizonDays := 30
	if horizon != nil {
		horizonDays = *horizon
	}

	result, err := h.service.Forecast(r.Context(), r.URL.Query().Get("menu_item"), horizonDays)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Locations handles GET /reference/locations.
func (h *AnalyticsHandler) Locations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, service.Locations)
}

// VenueTypes handles GET /reference/venue-types.
func (h *AnalyticsHandler) VenueTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.service.VenueTypes(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// MenuItemNames handles GET /reference/menu-item-names.
func (h *AnalyticsHandler) MenuItemNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.MenuItemNames(r.Context())
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}
	writeJSON(w, http.StatusOK, names)
}
