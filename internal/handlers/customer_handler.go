package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/service"
)

// CustomerHandler serves the read-only customer dimension.
type CustomerHandler struct {
	service *service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /customers with optional age_group, gender and
// min_spending filters.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	minSpending, err := queryFloat(r, "min_spending")
	if err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if minSpending != nil && *minSpending < 0 {
		writeDetail(w, http.StatusUnprocessableEntity, "min_spending must be >= 0")
		return
	}

	filter := models.CustomerFilter{
		AgeGroup:    r.URL.Query().Get("age_group"),
		Gender:      r.URL.Query().Get("gender"),
		MinSpending: minSpending,
	}

	customers, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

// Get handles GET /customers/{customerId}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customerId")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, fmt.Sprintf("customer_id=%d not found", id))
		return
	}

	writeJSON(w, http.StatusOK, customer)
}
