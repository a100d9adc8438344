package handlers

import (
	"log/slog"
	"net/http"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/pricing"
)

// PredictionHandler serves price predictions from the loaded model.
type PredictionHandler struct {
	service *pricing.Service
	logger  *slog.Logger
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(service *pricing.Service, logger *slog.Logger) *PredictionHandler {
	return &PredictionHandler{
		service: service,
		logger:  logger,
	}
}

// Predict handles POST /predict-price. Inputs arrive as query parameters:
// product_name, location and venue_type are required; portion_size and
// age_group have defaults. Location and venue type are deliberately not
// checked against the reference enumerations.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := models.PricePredictionRequest{
		ProductName: q.Get("product_name"),
		Location:    q.Get("location"),
		VenueType:   q.Get("venue_type"),
		PortionSize: q.Get("portion_size"),
		AgeGroup:    q.Get("age_group"),
	}

	for name, value := range map[string]string{
		"product_name": req.ProductName,
		"location":     req.Location,
		"venue_type":   req.VenueType,
	} {
		if value == "" {
			writeDetail(w, http.StatusUnprocessableEntity, name+" is required")
			return
		}
	}

	resp, err := h.service.Predict(r.Context(), req)
	if err != nil {
		respondError(w, h.logger, err, "")
		return
	}

	h.logger.Info("price predicted",
		"product_name", req.ProductName,
		"location", req.Location,
		"predicted_price", resp.PredictedPrice,
	)
	writeJSON(w, http.StatusOK, resp)
}
