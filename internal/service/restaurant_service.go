package service

import (
	"context"
	"fmt"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
	"github.com/narekn7/yerevan-pricing/internal/validation"
)

// RestaurantService handles business logic for restaurants.
type RestaurantService struct {
	repo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(repo repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

// List returns restaurants matching the filter.
func (s *RestaurantService) List(ctx context.Context, filter models.RestaurantFilter) ([]models.Restaurant, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a restaurant by id.
func (s *RestaurantService) Get(ctx context.Context, id int) (*models.Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload and inserts a new restaurant.
func (s *RestaurantService) Create(ctx context.Context, payload models.RestaurantPayload) (*models.Restaurant, error) {
	if err := validation.Check(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return s.repo.Create(ctx, payload)
}

// Update validates the payload and fully replaces the restaurant.
func (s *RestaurantService) Update(ctx context.Context, id int, payload models.RestaurantPayload) (*models.Restaurant, error) {
	if err := validation.Check(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return s.repo.Update(ctx, id, payload)
}

// Delete removes a restaurant. A repeated delete of the same id reports
// not-found rather than succeeding silently.
func (s *RestaurantService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
