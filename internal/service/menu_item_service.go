package service

import (
	"context"
	"fmt"

	"github.com/narekn7/yerevan-pricing/internal/models"
	"github.com/narekn7/yerevan-pricing/internal/repository"
	"github.com/narekn7/yerevan-pricing/internal/validation"
)

// MenuItemService handles business logic for menu items.
type MenuItemService struct {
	repo repository.MenuItemRepository
}

// NewMenuItemService creates a new menu item service.
func NewMenuItemService(repo repository.MenuItemRepository) *MenuItemService {
	return &MenuItemService{repo: repo}
}

// List returns menu items matching the filter.
func (s *MenuItemService) List(ctx context.Context, filter models.MenuItemFilter) ([]models.MenuItem, error) {
	return s.repo.List(ctx, filter)
}

// Get returns a menu item by id.
func (s *MenuItemService) Get(ctx context.Context, id int) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload and inserts a new menu item. A payload
// referencing a missing restaurant or category fails validation: the
// storage layer surfaces the foreign key violation rather than the API
// pre-checking it.
func (s *MenuItemService) Create(ctx context.Context, payload models.MenuItemPayload) (*models.MenuItem, error) {
	if err := validation.Check(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return s.repo.Create(ctx, payload)
}

// Update validates the payload and fully replaces the menu item.
func (s *MenuItemService) Update(ctx context.Context, id int, payload models.MenuItemPayload) (*models.MenuItem, error) {
	if err := validation.Check(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return s.repo.Update(ctx, id, payload)
}

// Delete removes a menu item.
func (s *MenuItemService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
