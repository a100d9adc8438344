package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/narekn7/yerevan-pricing/internal/config"
	"github.com/narekn7/yerevan-pricing/internal/database"
	"github.com/narekn7/yerevan-pricing/internal/handlers"
	"github.com/narekn7/yerevan-pricing/internal/pricing"
	"github.com/narekn7/yerevan-pricing/internal/repository"
	"github.com/narekn7/yerevan-pricing/internal/service"
	"github.com/narekn7/yerevan-pricing/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting pricing api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	ctx := context.Background()

	pool, err := database.Connect(ctx, cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	if err := database.ApplySchema(ctx, pool); err != nil {
		return err
	}
	log.Info("database ready", "database", cfg.Database.Name)

	// The model is optional at startup: a missing artifact degrades
	// /predict-price to 503 and leaves the rest of the API up.
	model, err := pricing.LoadModel(cfg.Model.Path)
	if err != nil {
		log.Warn("pricing model not loaded, predictions disabled",
			"path", cfg.Model.Path,
			"error", err,
		)
	} else {
		log.Info("pricing model loaded",
			"algorithm", model.Algorithm,
			"model_version", model.Version,
			"rmse", model.RMSE,
		)
	}

	// Repositories
	restaurantRepo := repository.NewPostgresRestaurantRepository(pool)
	menuItemRepo := repository.NewPostgresMenuItemRepository(pool)
	customerRepo := repository.NewPostgresCustomerRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	analyticsRepo := repository.NewPostgresAnalyticsRepository(pool)

	// Services
	restaurantService := service.NewRestaurantService(restaurantRepo)
	menuItemService := service.NewMenuItemService(menuItemRepo)
	customerService := service.NewCustomerService(customerRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	predictionService := pricing.NewService(model, menuItemRepo, log)

	r := handlers.NewRouter(handlers.Set{
		Health:      handlers.NewHealthHandler(pool, version, log),
		Restaurants: handlers.NewRestaurantHandler(restaurantService, log),
		MenuItems:   handlers.NewMenuItemHandler(menuItemService, log),
		Customers:   handlers.NewCustomerHandler(customerService, log),
		Categories:  handlers.NewCategoryHandler(categoryRepo, log),
		Prediction:  handlers.NewPredictionHandler(predictionService, log),
		Analytics:   handlers.NewAnalyticsHandler(analyticsService, log),
	}, log)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server stopped gracefully")
	return nil
}
