package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
	"github.com/narekn7/yerevan-pricing/internal/service"
	"github.com/narekn7/yerevan-pricing/pkg/logger"
)

func newAnalyticsRouter() *chi.Mux {
	repo := &fakeAnalyticsRepo{
		stats: map[string]repository.PriceStats{
			"espresso": {Avg: 1000, Min: 800, Max: 1300, Count: 12},
		},
		units:     map[string]int{"espresso": 340},
		seasons:   map[string]string{"espresso": "Summer"},
		venues:    []string{"cafe", "coffee_house"},
		itemNames: []string{"Cappuccino", "Espresso"},
	}
	handler := NewAnalyticsHandler(service.NewAnalyticsService(repo), logger.New("error"))

	r := chi.NewRouter()
	r.Get("/analytics/historical", handler.Historical)
	r.Get("/analytics/forecast", handler.Forecast)
	r.Get("/reference/locations", handler.Locations)
	r.Get("/reference/venue-types", handler.VenueTypes)
	r.Get("/reference/menu-item-names", handler.MenuItemNames)
	return r
}

func TestHistorical_WithStoredRows(t *testing.T) {
	r := newAnalyticsRouter()

	w := doJSON(t, r, http.MethodGet, "/analytics/historical?menu_item=Espresso&location=Arabkir", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.HistoricalAnalytics
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.MenuItem != "Espresso" || resp.Location != "Arabkir" {
		t.Errorf("unexpected echo fields: %+v", resp)
	}
	if resp.AvgPrice != 1000 || resp.MinPrice != 800 || resp.MaxPrice != 1300 {
		t.Errorf("expected stored aggregates, got %+v", resp)
	}
	if resp.UnitsSold != 340 {
		t.Errorf("expected units sold 340, got %d", resp.UnitsSold)
	}
	if resp.Season != "Summer" {
		t.Errorf("expected season Summer, got %s", resp.Season)
	}
}

func TestHistorical_FallbackSnapshot(t *testing.T) {
	r := newAnalyticsRouter()

	// No stored rows for this item and no query params at all: the endpoint
	// answers with the default item and the fallback snapshot.
	w := doJSON(t, r, http.MethodGet, "/analytics/historical", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp models.HistoricalAnalytics
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.MenuItem != "Cappuccino" || resp.Location != "Kentron" {
		t.Errorf("expected default item and location, got %+v", resp)
	}
	if resp.AvgPrice != 1800 || resp.MinPrice != 1500 || resp.MaxPrice != 2200 {
		t.Errorf("expected fallback prices, got %+v", resp)
	}
	if resp.UnitsSold != 1200 || resp.Season != "Winter" {
		t.Errorf("expected fallback units and season, got %+v", resp)
	}
}

func TestForecast_DefaultHorizon(t *testing.T) {
	r := newAnalyticsRouter()

	w := doJSON(t, r, http.MethodGet, "/analytics/forecast?menu_item=Espresso", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d (%s)", w.Code, w.Body.String())
	}

	var resp models.Forecast
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.HorizonDays != 30 {
		t.Errorf("expected default horizon 30, got %d", resp.HorizonDays)
	}
	// 1000 * (1 + 30*0.0005)
	if resp.RecommendedPrice != 1015 {
		t.Errorf("expected recommended price 1015, got %f", resp.RecommendedPrice)
	}
	if math.Abs(resp.Confidence-0.92) > 1e-9 {
		t.Errorf("expected confidence 0.92, got %f", resp.Confidence)
	}
	if resp.Trend != "slight_increase" {
		t.Errorf("expected trend slight_increase, got %s", resp.Trend)
	}
}

func TestForecast_TrendLabels(t *testing.T) {
	r := newAnalyticsRouter()

	tests := []struct {
		horizon string
		trend   string
	}{
		{"1", "stable"},
		{"7", "stable"},
		{"8", "slight_increase"},
		{"30", "slight_increase"},
		{"31", "moderate_increase"},
		{"365", "moderate_increase"},
	}

	for _, tc := range tests {
		t.Run("horizon_"+tc.horizon, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/analytics/forecast?horizon_days="+tc.horizon, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var resp models.Forecast
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Trend != tc.trend {
				t.Errorf("expected trend %s, got %s", tc.trend, resp.Trend)
			}
		})
	}
}

func TestForecast_HorizonOutOfRange(t *testing.T) {
	r := newAnalyticsRouter()

	for _, horizon := range []string{"0", "366", "-5"} {
		w := doJSON(t, r, http.MethodGet, "/analytics/forecast?horizon_days="+horizon, nil)
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("horizon %s: expected status 422, got %d", horizon, w.Code)
		}
	}
}

func TestForecast_HorizonNotAnInteger(t *testing.T) {
	r := newAnalyticsRouter()

	w := doJSON(t, r, http.MethodGet, "/analytics/forecast?horizon_days=soon", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", w.Code)
	}
}

func TestReferenceEndpoints(t *testing.T) {
	r := newAnalyticsRouter()

	tests := []struct {
		path string
		want []string
	}{
		{"/reference/locations", []string{"Ajapnyak", "Arabkir", "Kentron", "Malatia-Sebastia", "Nor Nork"}},
		{"/reference/venue-types", []string{"cafe", "coffee_house"}},
		{"/reference/menu-item-names", []string{"Cappuccino", "Espresso"}},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tc.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var got []string
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d entries, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("entry %d: expected %s, got %s", i, tc.want[i], got[i])
				}
			}
		})
	}
}
