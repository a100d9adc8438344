package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/service"
)

// MenuItemHandler handles menu item CRUD requests.
type MenuItemHandler struct {
	service *service.MenuItemService
	logger  *slog.Logger
}

// NewMenuItemHandler creates a new menu item handler.
func NewMenuItemHandler(service *service.MenuItemService, logger *slog.Logger) *MenuItemHandler {
	return &MenuItemHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /menu-items with optional restaurant_id, category_id,
// available, min_price and max_price filters.
func (h *MenuItemHandler) List(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryInt(r, "restaurant_id")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	categoryID, err := queryInt(r, "category_id")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	available, err := queryBool(r, "available")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	minPrice, err := queryFloat(r, "min_price")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	maxPrice, err := queryFloat(r, "max_price")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if minPrice != nil && *minPrice < 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "min_price must be >= 0")
		return
	}
	if maxPrice != nil && *maxPrice < 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "max_price must be >= 0")
		return
	}

	filter := models.MenuItemFilter{
		RestaurantID: restaurantID,
		CategoryID:   categoryID,
		Available:    available,
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /menu-items/{productId}.
func (h *MenuItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, notFoundMenuItem(id))
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Create handles POST /menu-items.
func (h *MenuItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.MenuItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Create(r.Context(), payload)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	h.logger.Info("menu item created",
		"product_id", item.ProductID,
		"restaurant_id", item.RestaurantID,
	)
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /menu-items/{productId} with full-replace semantics.
func (h *MenuItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload models.MenuItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		respondError(w, h.logger, err, notFoundMenuItem(id))
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /menu-items/{productId}.
func (h *MenuItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "productId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, notFoundMenuItem(id))
		return
	}

	h.logger.Info("menu item deleted", "product_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func notFoundMenuItem(id int) string {
	return fmt.Sprintf("product_id=%d not found", id)
}
