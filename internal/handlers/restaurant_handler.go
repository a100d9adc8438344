package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/service"
)

// RestaurantHandler handles restaurant CRUD requests.
type RestaurantHandler struct {
	service *service.RestaurantService
	logger  *slog.Logger
}

// NewRestaurantHandler creates a new restaurant handler.
func NewRestaurantHandler(service *service.RestaurantService, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /restaurants with optional location, venue_type and
// min_rating filters. Filters are conjunctive.
func (h *RestaurantHandler) List(w http.ResponseWriter, r *http.Request) {
	minRating, err := queryFloat(r, "min_rating")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if minRating != nil && (*minRating < 0 || *minRating > 5) {
		writeDetail(w, http.StatusUnprocessableEntity, "min_rating must be between 0 and 5")
		return
	}

	filter := models.RestaurantFilter{
		Location:  r.URL.Query().Get("location"),
		VenueType: r.URL.Query().Get("venue_type"),
		MinRating: minRating,
	}

	restaurants, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, restaurants)
}

// Get handles GET /restaurants/{restaurantId}.
func (h *RestaurantHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	restaurant, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, notFoundRestaurant(id))
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}

// Create handles POST /restaurants.
func (h *RestaurantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.RestaurantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	restaurant, err := h.service.Create(r.Context(), payload)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	h.logger.Info("restaurant created", "restaurant_id", restaurant.RestaurantID)
	writeJSON(w, http.StatusCreated, restaurant)
}

// Update handles PUT /restaurants/{restaurantId} with full-replace
// semantics.
func (h *RestaurantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.RestaurantPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	restaurant, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		respondError(w, h.logger, err, notFoundRestaurant(id))
		return
	}

	writeJSON(w, http.StatusOK, restaurant)
}

// Delete handles DELETE /restaurants/{restaurantId}.
func (h *RestaurantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "restaurantId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, notFoundRestaurant(id))
		return
	}

	h.logger.Info("restaurant deleted", "restaurant_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func notFoundRestaurant(id int) string {
	return fmt.Sprintf("restaurant_id=%d not found", id)
}
