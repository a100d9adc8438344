package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
)

// Defaults applied when the request omits optional features or the product
// is not in the menu dimension. They match the training pipeline's fallback
// metadata.
const (
	DefaultPortionSize = "medium"
	DefaultAgeGroup    = "25-34"

	defaultCategoryID     = "1"
	defaultBasePrice      = 2000.0
	defaultCost           = 1000.0
	defaultPortionNumeric = 250.0
)

var portionNumericRe = regexp.MustCompile(`(\d+\.?\d*)`)

// ProductLookup resolves product metadata used as model features.
type ProductLookup interface {
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
}

// Service runs price predictions against the loaded model. A nil model
// means the artifact failed to load at startup; every prediction then
// reports ErrModelUnavailable while the rest of the API stays up.
type Service struct {
	model    *Model
	products ProductLookup
	logger   *slog.Logger
}

// NewService creates a prediction service. model may be nil.
func NewService(model *Model, products ProductLookup, logger *slog.Logger) *Service {
	return &Service{
		model:    model,
		products: products,
		logger:   logger,
	}
}

// Available reports whether the model artifact was loaded.
func (s *Service) Available() bool {
	return s.model != nil
}

// Predict encodes the request into the model's feature vector and returns
// the scored price. Inputs are not validated against the reference
// enumerations: unknown locations or venue types are scored with zero
// categorical contribution.
func (s *Service) Predict(ctx context.Context, req models.PricePredictionRequest) (*models.PricePredictionResponse, error) {
	if s.model == nil {
		return nil, ErrModelUnavailable
	}

	if req.PortionSize == "" {
		req.PortionSize = DefaultPortionSize
	}
	if req.AgeGroup == "" {
		req.AgeGroup = DefaultAgeGroup
	}

	features := Features{
		Location:      req.Location,
		VenueType:     req.VenueType,
		AgeGroup:      req.AgeGroup,
		PortionBucket: strings.ToLower(req.PortionSize),
	}

	item, err := s.products.GetByName(ctx, req.ProductName)
	switch {
	case err == nil:
		features.CategoryID = strconv.Itoa(item.CategoryID)
		features.BasePrice = item.BasePrice
		features.Cost = item.Cost
		features.PortionNumeric = parsePortionNumeric(item.PortionSize)
	case errors.Is(err, repository.ErrMenuItemNotFound):
		// Unknown products are scored with the training-time defaults.
		s.logger.Debug("product not in menu dimension, using default features",
			"product_name", req.ProductName)
		features.CategoryID = defaultCategoryID
		features.BasePrice = defaultBasePrice
		features.Cost = defaultCost
		features.PortionNumeric = defaultPortionNumeric
	default:
		return nil, fmt.Errorf("lookup product features: %w", err)
	}

	predicted := s.model.Predict(features)

	return &models.PricePredictionResponse{
		PredictedPrice: predicted,
		ProductName:    req.ProductName,
		Location:       req.Location,
		VenueType:      req.VenueType,
		PortionSize:    req.PortionSize,
		AgeGroup:       req.AgeGroup,
		ConfidenceNote: s.model.ConfidenceNote(),
	}, nil
}

// parsePortionNumeric pulls the leading quantity out of a portion size
// string, e.g. "250ml" -> 250. Unparseable sizes fall back to the default.
func parsePortionNumeric(portion string) float64 {
	match := portionNumericRe.FindString(portion)
	if match == "" {
		return defaultPortionNumeric
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return defaultPortionNumeric
	}
	return v
}
