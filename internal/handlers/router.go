package handlers

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/narekn7/yerevan-pricing/internal/middleware"
)

// Set bundles every handler the router mounts.
type Set struct {
	Health      *HealthHandler
	Restaurants *RestaurantHandler
	MenuItems   *MenuItemHandler
	Customers   *CustomerHandler
	Categories  *CategoryHandler
	Prediction  *PredictionHandler
	Analytics   *AnalyticsHandler
}

// NewRouter builds the chi router with the standard middleware chain and
// every API route mounted at the root.
func NewRouter(h Set, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health.ServeHTTP)

	r.Route("/restaurants", func(r chi.Router) {
		r.Get("/", h.Restaurants.List)
		r.Post("/", h.Restaurants.Create)
		r.Get("/{restaurantId}", h.Restaurants.Get)
		r.Put("/{restaurantId}", h.Restaurants.Update)
		r.Delete("/{restaurantId}", h.Restaurants.Delete)
	})

	r.Route("/menu-items", func(r chi.Router) {
		r.Get("/", h.MenuItems.List)
		r.Post("/", h.MenuItems.Create)
		r.Get("/{productId}", h.MenuItems.Get)
		r.Put("/{productId}", h.MenuItems.Update)
		r.Delete("/{productId}", h.MenuItems.Delete)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.Customers.List)
		r.Get("/{customerId}", h.Customers.Get)
	})

	r.Get("/categories", h.Categories.List)

	r.Post("/predict-price", h.Prediction.Predict)

	r.Route("/analytics", func(r chi.Router) {
		r.Get("/historical", h.Analytics.Historical)
		r.Get("/forecast", h.Analytics.Forecast)
	})

	r.Route("/reference", func(r chi.Router) {
		r.Get("/locations", h.Analytics.Locations)
		r.Get("/venue-types", h.Analytics.VenueTypes)
		r.Get("/menu-item-names", h.Analytics.MenuItemNames)
	})

	return r
}
