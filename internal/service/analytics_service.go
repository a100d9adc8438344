package service

import (
	"context"
	"fmt"
	"math"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
)

// Defaults used when a query names a menu item with no stored history, so
// the endpoints stay useful against a sparsely loaded database.
const (
	DefaultMenuItem = "Cappuccino"
	DefaultLocation = "Kentron"

	fallbackAvgPrice  = 1800.0
	fallbackMinPrice  = 1500.0
	fallbackMaxPrice  = 2200.0
	fallbackUnitsSold = 1200
	fallbackSeason    = "Winter"

	fallbackForecastPrice = 1900.0

	// Forecast horizon bounds in days.
	MinHorizonDays = 1
	MaxHorizonDays = 365

	trendPerDay     = 0.0005
	confidenceBase  = 0.95
	confidenceDecay = 0.001
	confidenceFloor = 0.5
)

// Locations is the static list of districts covered by the pricing data.
var Locations = []string{"Ajapnyak", "Arabkir", "Kentron", "Malatia-Sebastia", "Nor Nork"}

// AnalyticsService produces the historical aggregates, the forecast stub,
// and the reference enumerations.
type AnalyticsService struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(repo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{repo: repo}
}

// Historical aggregates observed prices and sales for a menu item. Items
// without stored rows get the fallback snapshot rather than an error.
func (s *AnalyticsService) Historical(ctx context.Context, menuItem, location string) (*models.HistoricalAnalytics, error) {
	if menuItem == "" {
		menuItem = DefaultMenuItem
	}
	if location == "" {
		location = DefaultLocation
	}

	stats, err := s.repo.PriceStats(ctx, menuItem)
	if err != nil {
		return nil, err
	}

	result := &models.HistoricalAnalytics{
		MenuItem:  menuItem,
		Location:  location,
		Market:    location,
		AvgPrice:  fallbackAvgPrice,
		MinPrice:  fallbackMinPrice,
		MaxPrice:  fallbackMaxPrice,
		UnitsSold: fallbackUnitsSold,
		Season:    fallbackSeason,
	}

	if stats.Count > 0 {
		result.AvgPrice = round2(stats.Avg)
		result.MinPrice = round2(stats.Min)
		result.MaxPrice = round2(stats.Max)

		units, err := s.repo.UnitsSold(ctx, menuItem)
		if err != nil {
			return nil, err
		}
		if units > 0 {
			result.UnitsSold = units
		}

		season, err := s.repo.LatestSeason(ctx, menuItem)
		if err != nil {
			return nil, err
		}
		if season != "" {
			result.Season = season
		}
	}

	return result, nil
}

// Forecast recommends a price over the horizon by drifting the observed
// average upward. This is a deliberate stub, not time-series modelling.
func (s *AnalyticsService) Forecast(ctx context.Context, menuItem string, horizonDays int) (*models.Forecast, error) {
	if menuItem == "" {
		menuItem = DefaultMenuItem
	}
	if horizonDays < MinHorizonDays || horizonDays > MaxHorizonDays {
		return nil, fmt.Errorf("%w: horizon_days must be between %d and %d",
			ErrValidation, MinHorizonDays, MaxHorizonDays)
	}

	stats, err := s.repo.PriceStats(ctx, menuItem)
	if err != nil {
		return nil, err
	}

	recommended := fallbackForecastPrice
	if stats.Count > 0 {
		recommended = stats.Avg * (1 + float64(horizonDays)*trendPerDay)
	}

	confidence := confidenceBase - float64(horizonDays)*confidenceDecay
	if confidence < confidenceFloor {
		confidence = confidenceFloor
	}

	return &models.Forecast{
		MenuItem:         menuItem,
		RecommendedPrice: round2(recommended),
		Confidence:       confidence,
		HorizonDays:      horizonDays,
		Trend:            trendLabel(horizonDays),
	}, nil
}

// VenueTypes returns the distinct venue types in the restaurant dimension.
func (s *AnalyticsService) VenueTypes(ctx context.Context) ([]string, error) {
	return s.repo.VenueTypes(ctx)
}

// MenuItemNames returns every distinct product name, sorted.
func (s *AnalyticsService) MenuItemNames(ctx context.Context) ([]string, error) {
	return s.repo.MenuItemNames(ctx)
}

func trendLabel(horizonDays int) string {
	switch {
	case horizonDays <= 7:
		return "stable"
	case horizonDays <= 30:
		return "slight_increase"
	default:
		return "moderate_increase"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
